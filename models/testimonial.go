package models

import "time"

type Testimonial struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Role        string    `gorm:"type:varchar(100)" json:"role"`
	Quote       string    `gorm:"type:text;not null" json:"quote"`
	Rating      int       `gorm:"not null;default:5" json:"rating"`
	AvatarUrl   *string   `gorm:"type:varchar(255)" json:"avatar_url,omitempty"`
	IsPublished bool      `gorm:"not null;default:true;index" json:"is_published"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
