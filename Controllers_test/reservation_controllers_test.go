package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/travel-cafe-app/controllers"
	"github.com/yeremiapane/travel-cafe-app/models"
	"github.com/yeremiapane/travel-cafe-app/services"
	"github.com/yeremiapane/travel-cafe-app/utils"
)

func setupTestDBForReservations(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:reservations_test?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Reservation{}, &models.NotificationEvent{}); err != nil {
		t.Fatal(err)
	}
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM notification_events")
	return db
}

func setupReservationRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	resCtrl := controllers.NewReservationController(db)
	router.POST("/reservations", resCtrl.CreateReservation)
	router.GET("/admin/reservations", resCtrl.GetAllReservations)
	router.GET("/admin/reservations/:reservation_id", resCtrl.GetReservationByID)
	router.PATCH("/admin/reservations/:reservation_id/status", resCtrl.UpdateReservationStatus)
	return router
}

func bookingPayload() map[string]interface{} {
	return map[string]interface{}{
		"passenger_name": "Asha Mehta",
		"contact_number": "+91 98765 43210",
		"email":          "asha@example.com",
		"pax_count":      4,
		"departure_date": "2026-09-12",
		"departure_time": "19:30",
		"trip_type":      "Birthday",
	}
}

func TestReservationStartsPendingAndEnqueuesBooking(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	payloadBytes, _ := json.Marshal(bookingPayload())
	req, _ := http.NewRequest("POST", "/reservations", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, models.ReservationPending, data["status"])

	// advisory outbox row was written alongside the reservation
	var event models.NotificationEvent
	assert.NoError(t, db.Where("action = ?", services.ActionNewBooking).First(&event).Error)
	assert.Equal(t, models.NotificationPending, event.Status)

	var fields map[string]string
	assert.NoError(t, json.Unmarshal([]byte(event.Payload), &fields))
	assert.Equal(t, "Asha Mehta", fields["name"])
	assert.Equal(t, "4", fields["pax"])
	assert.Equal(t, "Birthday", fields["tripType"])
}

func TestReservationStatusTransitions(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	res := models.Reservation{
		PassengerName: "Rohan",
		ContactNumber: "123",
		Email:         "rohan@example.com",
		PaxCount:      2,
		DepartureDate: "2026-10-01",
		DepartureTime: "20:00",
		TripType:      "Casual",
		Status:        models.ReservationPending,
	}
	assert.NoError(t, db.Create(&res).Error)

	confirm := func(status string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"status": status})
		req, _ := http.NewRequest("PATCH",
			fmt.Sprintf("/admin/reservations/%d/status", res.ID), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// pending -> confirmed is allowed
	w := confirm(models.ReservationConfirmed)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Reservation
	assert.NoError(t, db.First(&updated, res.ID).Error)
	assert.Equal(t, models.ReservationConfirmed, updated.Status)

	// confirmed is final: no cancel, no going back to pending
	w = confirm(models.ReservationCancelled)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = confirm(models.ReservationPending)
	assert.Equal(t, http.StatusConflict, w.Code)

	// the status change itself was enqueued for the webhook
	var event models.NotificationEvent
	assert.NoError(t, db.Where("action = ?", services.ActionConfirmed).First(&event).Error)
}

func TestReservationRejectsInvalidInput(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForReservations(t)
	router := setupReservationRouter(db)

	// bad email is stopped before any write
	payload := bookingPayload()
	payload["email"] = "not-an-email"
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/reservations", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// zero pax fails binding
	payload = bookingPayload()
	payload["pax_count"] = 0
	payloadBytes, _ = json.Marshal(payload)
	req, _ = http.NewRequest("POST", "/reservations", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
