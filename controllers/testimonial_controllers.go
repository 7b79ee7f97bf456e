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

type TestimonialController struct {
	DB *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db}
}

// GetPublishedTestimonials is the public slider feed: published only,
// in sort order.
func (tc *TestimonialController) GetPublishedTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := tc.DB.Where("is_published = ?", true).
		Order("sort_order ASC").
		Find(&testimonials).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Published testimonials", testimonials)
}

// GetAllTestimonials
func (tc *TestimonialController) GetAllTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := tc.DB.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of testimonials", testimonials)
}

// CreateTestimonial
func (tc *TestimonialController) CreateTestimonial(c *gin.Context) {
	type reqBody struct {
		Name      string  `json:"name" binding:"required"`
		Role      string  `json:"role"`
		Quote     string  `json:"quote" binding:"required"`
		Rating    int     `json:"rating" binding:"required,min=1,max=5"`
		AvatarUrl *string `json:"avatar_url"`
		SortOrder int     `json:"sort_order"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	testimonial := models.Testimonial{
		Name:        body.Name,
		Role:        body.Role,
		Quote:       body.Quote,
		Rating:      body.Rating,
		AvatarUrl:   body.AvatarUrl,
		IsPublished: true,
		SortOrder:   body.SortOrder,
	}
	if err := tc.DB.Create(&testimonial).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Testimonial created", testimonial)
}

// UpdateTestimonial
func (tc *TestimonialController) UpdateTestimonial(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("testimonial_id"))

	type reqBody struct {
		Name        *string `json:"name"`
		Role        *string `json:"role"`
		Quote       *string `json:"quote"`
		Rating      *int    `json:"rating"`
		AvatarUrl   *string `json:"avatar_url"`
		IsPublished *bool   `json:"is_published"`
		SortOrder   *int    `json:"sort_order"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Rating != nil && (*body.Rating < 1 || *body.Rating > 5) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("rating must be between 1 and 5"))
		return
	}

	var testimonial models.Testimonial
	if err := tc.DB.First(&testimonial, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("testimonial not found"))
		return
	}

	if body.Name != nil {
		testimonial.Name = *body.Name
	}
	if body.Role != nil {
		testimonial.Role = *body.Role
	}
	if body.Quote != nil {
		testimonial.Quote = *body.Quote
	}
	if body.Rating != nil {
		testimonial.Rating = *body.Rating
	}
	if body.AvatarUrl != nil {
		testimonial.AvatarUrl = body.AvatarUrl
	}
	if body.IsPublished != nil {
		testimonial.IsPublished = *body.IsPublished
	}
	if body.SortOrder != nil {
		testimonial.SortOrder = *body.SortOrder
	}

	if err := tc.DB.Save(&testimonial).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Testimonial updated", testimonial)
}

// DeleteTestimonial
func (tc *TestimonialController) DeleteTestimonial(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("testimonial_id"))

	if err := tc.DB.Delete(&models.Testimonial{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Testimonial deleted", gin.H{"testimonial_id": id})
}
