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

type NewsletterController struct {
	DB *gorm.DB
}

func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{DB: db}
}

// Subscribe adds an email to the newsletter list. A duplicate gets its own
// message instead of a generic failure; bad syntax never reaches the store.
func (nc *NewsletterController) Subscribe(c *gin.Context) {
	type reqBody struct {
		Email string `json:"email" binding:"required"`
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

	subscriber := models.NewsletterSubscriber{Email: body.Email}
	if err := nc.DB.Create(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, http.StatusConflict, errors.New("You are already subscribed!"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Successfully subscribed!", subscriber)
}

// GetAllSubscribers
func (nc *NewsletterController) GetAllSubscribers(c *gin.Context) {
	var subscribers []models.NewsletterSubscriber
	if err := nc.DB.Order("created_at DESC").Find(&subscribers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of subscribers", subscribers)
}

// DeleteSubscriber
func (nc *NewsletterController) DeleteSubscriber(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("subscriber_id"))

	if err := nc.DB.Delete(&models.NewsletterSubscriber{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Subscriber deleted", gin.H{"subscriber_id": id})
}
