package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/travel-cafe-app/models"
	"github.com/yeremiapane/travel-cafe-app/services"
	"github.com/yeremiapane/travel-cafe-app/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// CreateReservation takes the public booking form. Every reservation starts
// life as pending regardless of what the request says.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	type reqBody struct {
		PassengerName string `json:"passenger_name" binding:"required"`
		ContactNumber string `json:"contact_number" binding:"required"`
		Email         string `json:"email" binding:"required"`
		PaxCount      int    `json:"pax_count" binding:"required,min=1"`
		DepartureDate string `json:"departure_date" binding:"required"`
		DepartureTime string `json:"departure_time" binding:"required"`
		TripType      string `json:"trip_type"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !utils.IsValidEmail(body.Email) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid email address"))
		return
	}

	reservation := models.Reservation{
		PassengerName: body.PassengerName,
		ContactNumber: body.ContactNumber,
		Email:         body.Email,
		PaxCount:      body.PaxCount,
		DepartureDate: body.DepartureDate,
		DepartureTime: body.DepartureTime,
		TripType:      body.TripType,
		Status:        models.ReservationPending,
	}
	if reservation.TripType == "" {
		reservation.TripType = "Casual"
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.Enqueue(rc.DB, services.ActionNewBooking, map[string]string{
		"name":     reservation.PassengerName,
		"phone":    reservation.ContactNumber,
		"email":    reservation.Email,
		"pax":      strconv.Itoa(reservation.PaxCount),
		"date":     reservation.DepartureDate,
		"time":     reservation.DepartureTime,
		"tripType": reservation.TripType,
	})

	utils.InfoLogger.Printf("New reservation #%d for %s (%s %s, pax=%d)",
		reservation.ID, reservation.PassengerName,
		reservation.DepartureDate, reservation.DepartureTime, reservation.PaxCount)

	utils.RespondJSON(c, http.StatusCreated, "Reservation received", reservation)
}

// GetAllReservations lists the manifest, newest first.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	query := rc.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("reservation_id"))

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservationStatus confirms or cancels a pending reservation. A
// reservation that already left pending is final; the old UI merely hid the
// buttons, here the transition is rejected outright.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("reservation_id"))

	type reqBody struct {
		Status string `json:"status" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	if !reservation.CanTransitionTo(body.Status) {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("cannot change status from %s to %s", reservation.Status, body.Status))
		return
	}

	reservation.Status = body.Status
	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.Enqueue(rc.DB, body.Status, map[string]string{
		"name":  reservation.PassengerName,
		"email": reservation.Email,
		"pax":   strconv.Itoa(reservation.PaxCount),
		"date":  reservation.DepartureDate,
		"time":  reservation.DepartureTime,
	})

	utils.InfoLogger.Printf("Reservation #%d marked %s", reservation.ID, reservation.Status)

	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", reservation)
}
