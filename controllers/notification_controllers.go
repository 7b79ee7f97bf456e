package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/travel-cafe-app/models"
	"github.com/yeremiapane/travel-cafe-app/utils"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetAllNotificationEvents exposes the outbox for inspection, optionally
// narrowed by status.
func (nc *NotificationController) GetAllNotificationEvents(c *gin.Context) {
	query := nc.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var events []models.NotificationEvent
	if err := query.Limit(200).Find(&events).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification events", events)
}

// RetryNotificationEvent re-arms a failed event so the dispatcher picks it
// up again on its next pass.
func (nc *NotificationController) RetryNotificationEvent(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("event_id"))

	var event models.NotificationEvent
	if err := nc.DB.First(&event, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("notification event not found"))
		return
	}

	if event.Status != models.NotificationFailed {
		utils.RespondError(c, http.StatusConflict, errors.New("only failed events can be retried"))
		return
	}

	event.Status = models.NotificationPending
	event.Attempts = 0
	event.LastError = ""
	if err := nc.DB.Save(&event).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification event re-armed", event)
}
