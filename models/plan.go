package models

import "time"

const (
	PlanTypeCake        = "cake"
	PlanTypeAnniversary = "anniversary"
	PlanTypeCorporate   = "corporate"
)

type Plan struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Type        string        `gorm:"type:varchar(50);not null;index" json:"type"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	ImageUrl    string        `gorm:"type:varchar(255)" json:"image_url"`
	Price       float64       `gorm:"type:decimal(10,2);not null" json:"price"`
	Label       string        `gorm:"type:varchar(100)" json:"label"`
	Badge       string        `gorm:"type:varchar(100)" json:"badge"`
	Features    []PlanFeature `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"plan_features"`
	CreatedAt   time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"not null" json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}

// Feature rows have no stable identity across saves: every plan update
// replaces the whole set, so ids change after each edit.
type PlanFeature struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PlanID  uint   `gorm:"not null;index" json:"plan_id"`
	Feature string `gorm:"type:varchar(255);not null" json:"feature"`
}

func (PlanFeature) TableName() string {
	return "plan_features"
}

// IsValidPlanType checks the declared plan type enumeration. The original
// forms and filter bars each carried their own string literals; one list
// lives here now.
func IsValidPlanType(t string) bool {
	switch t {
	case PlanTypeCake, PlanTypeAnniversary, PlanTypeCorporate:
		return true
	}
	return false
}
