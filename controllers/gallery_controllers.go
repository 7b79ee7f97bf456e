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

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

// GetGallery serves the public gallery wall. Labels are derived from the
// live rows; `visible` windows the filtered set (load-more raises it by 3,
// starting from 6; switching labels starts over).
func (gc *GalleryController) GetGallery(c *gin.Context) {
	var items []models.GalleryItem
	if err := gc.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	seen := make(map[string]bool)
	labels := make([]string, 0)
	for _, item := range items {
		if item.Label != "" && !seen[item.Label] {
			seen[item.Label] = true
			labels = append(labels, item.Label)
		}
	}

	label := c.Query("label")
	filtered := make([]models.GalleryItem, 0, len(items))
	for _, item := range items {
		if label != "" && label != "All Moments" && item.Label != label {
			continue
		}
		filtered = append(filtered, item)
	}

	visible, _ := strconv.Atoi(c.Query("visible"))
	window := utils.RevealWindow(visible, utils.GalleryRevealInitial, len(filtered))

	utils.RespondJSON(c, http.StatusOK, "Gallery items", gin.H{
		"items":   filtered[:window],
		"labels":  labels,
		"total":   len(filtered),
		"visible": window,
	})
}

// GetAllGalleryItems is the unwindowed admin list.
func (gc *GalleryController) GetAllGalleryItems(c *gin.Context) {
	var items []models.GalleryItem
	if err := gc.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of gallery items", items)
}

// CreateGalleryItem requires an already-uploaded image URL; there is no
// gallery entry without a picture.
func (gc *GalleryController) CreateGalleryItem(c *gin.Context) {
	type reqBody struct {
		Title    string `json:"title" binding:"required"`
		Label    string `json:"label" binding:"required"`
		ImageUrl string `json:"image_url" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.GalleryItem{
		Title:    body.Title,
		Label:    body.Label,
		ImageUrl: body.ImageUrl,
	}
	if err := gc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Gallery item created", item)
}

// UpdateGalleryItem keeps the existing image when no new URL is sent.
func (gc *GalleryController) UpdateGalleryItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	type reqBody struct {
		Title    *string `json:"title"`
		Label    *string `json:"label"`
		ImageUrl *string `json:"image_url"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.GalleryItem
	if err := gc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("gallery item not found"))
		return
	}

	if body.Title != nil {
		item.Title = *body.Title
	}
	if body.Label != nil {
		item.Label = *body.Label
	}
	if body.ImageUrl != nil && *body.ImageUrl != "" {
		item.ImageUrl = *body.ImageUrl
	}

	if err := gc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Gallery item updated", item)
}

// DeleteGalleryItem
func (gc *GalleryController) DeleteGalleryItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	if err := gc.DB.Delete(&models.GalleryItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Gallery item deleted", gin.H{"item_id": id})
}
