package models

import "time"

type MenuItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	TimeEstimate string    `gorm:"type:varchar(50)" json:"time_estimate"`
	Category     string    `gorm:"type:varchar(100);not null;index" json:"category"`
	ImageUrl     string    `gorm:"type:varchar(255)" json:"image_url"`
	IsVeg        bool      `gorm:"not null;default:false" json:"is_veg"`
	IsSpicy      bool      `gorm:"not null;default:false" json:"is_spicy"`
	IsBestseller bool      `gorm:"not null;default:false" json:"is_bestseller"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
