package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/travel-cafe-app/models"
	"github.com/yeremiapane/travel-cafe-app/services"
	"github.com/yeremiapane/travel-cafe-app/utils"
	"gorm.io/gorm"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// SubmitContact handles the public contact form. The advisory notification
// is enqueued only after the row is committed; the visitor sees success
// either way once the insert lands.
func (cc *ContactController) SubmitContact(c *gin.Context) {
	type reqBody struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Phone   string `json:"phone"`
		Message string `json:"message" binding:"required"`
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

	inquiry := models.ContactInquiry{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Message: body.Message,
	}
	if err := cc.DB.Create(&inquiry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	services.Enqueue(cc.DB, services.ActionContact, map[string]string{
		"name":    inquiry.Name,
		"email":   inquiry.Email,
		"phone":   inquiry.Phone,
		"message": inquiry.Message,
	})

	utils.RespondJSON(c, http.StatusCreated, "Message sent successfully!", inquiry)
}

// GetAllContactInquiries
func (cc *ContactController) GetAllContactInquiries(c *gin.Context) {
	var inquiries []models.ContactInquiry
	if err := cc.DB.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of contact inquiries", inquiries)
}

// DeleteContactInquiry
func (cc *ContactController) DeleteContactInquiry(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("contact_id"))

	if err := cc.DB.Delete(&models.ContactInquiry{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Contact inquiry deleted", gin.H{"contact_id": id})
}
