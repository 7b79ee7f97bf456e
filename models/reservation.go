package models

import "time"

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

type Reservation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PassengerName string    `gorm:"type:varchar(255);not null" json:"passenger_name"`
	ContactNumber string    `gorm:"type:varchar(50);not null" json:"contact_number"`
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`
	PaxCount      int       `gorm:"not null" json:"pax_count"`
	DepartureDate string    `gorm:"type:varchar(20);not null" json:"departure_date"`
	DepartureTime string    `gorm:"type:varchar(20);not null" json:"departure_time"`
	TripType      string    `gorm:"type:varchar(50);not null;default:'Casual'" json:"trip_type"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// CanTransitionTo reports whether a status change is allowed. Once a
// reservation leaves pending it is final.
func (r *Reservation) CanTransitionTo(status string) bool {
	if r.Status != ReservationPending {
		return false
	}
	return status == ReservationConfirmed || status == ReservationCancelled
}
