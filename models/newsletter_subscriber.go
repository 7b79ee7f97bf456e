package models

import "time"

type NewsletterSubscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
