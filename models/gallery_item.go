package models

import "time"

type GalleryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Label     string    `gorm:"type:varchar(100);not null;index" json:"label"`
	ImageUrl  string    `gorm:"type:varchar(255);not null" json:"image_url"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (GalleryItem) TableName() string {
	return "gallery_items"
}
