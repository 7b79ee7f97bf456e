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

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenuItems serves both the public menu page and the admin grid.
// Category / veg / spicy filters are applied after the fetch; the distinct
// category list always reflects the live row set, so a category vanishes
// from the sidebar the moment its last item is deleted.
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	categories := distinctCategories(items)

	category := c.Query("category")
	veg := c.Query("veg") == "1"
	spicy := c.Query("spicy") == "1"

	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && category != "All" && item.Category != category {
			continue
		}
		if veg && !item.IsVeg {
			continue
		}
		if spicy && !item.IsSpicy {
			continue
		}
		filtered = append(filtered, item)
	}

	utils.RespondJSON(c, http.StatusOK, "List of menu items", gin.H{
		"items":      filtered,
		"categories": categories,
		"total":      len(filtered),
	})
}

// GetMenuHighlights serves the homepage highlights strip: the newest items,
// 3 at first, `visible` raised by the load-more button.
func (mc *MenuController) GetMenuHighlights(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	visible, _ := strconv.Atoi(c.Query("visible"))
	window := utils.RevealWindow(visible, utils.HighlightsRevealInitial, len(items))

	utils.RespondJSON(c, http.StatusOK, "Menu highlights", gin.H{
		"items":   items[:window],
		"total":   len(items),
		"visible": window,
	})
}

// GetMenuCategories
func (mc *MenuController) GetMenuCategories(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Select("category").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu categories", distinctCategories(items))
}

type menuItemRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required"`
	TimeEstimate string  `json:"time_estimate"`
	Category     string  `json:"category" binding:"required"`
	ImageUrl     string  `json:"image_url"`
	IsVeg        bool    `json:"is_veg"`
	IsSpicy      bool    `json:"is_spicy"`
	IsBestseller bool    `json:"is_bestseller"`
}

// CreateMenuItem
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		TimeEstimate: req.TimeEstimate,
		Category:     req.Category,
		ImageUrl:     req.ImageUrl,
		IsVeg:        req.IsVeg,
		IsSpicy:      req.IsSpicy,
		IsBestseller: req.IsBestseller,
	}
	if item.TimeEstimate == "" {
		item.TimeEstimate = "15 mins"
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// GetMenuItemByID
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// UpdateMenuItem applies a partial update; absent fields keep their value.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	type reqBody struct {
		Title        *string  `json:"title"`
		Description  *string  `json:"description"`
		Price        *float64 `json:"price"`
		TimeEstimate *string  `json:"time_estimate"`
		Category     *string  `json:"category"`
		ImageUrl     *string  `json:"image_url"`
		IsVeg        *bool    `json:"is_veg"`
		IsSpicy      *bool    `json:"is_spicy"`
		IsBestseller *bool    `json:"is_bestseller"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	if body.Title != nil {
		item.Title = *body.Title
	}
	if body.Description != nil {
		item.Description = *body.Description
	}
	if body.Price != nil {
		item.Price = *body.Price
	}
	if body.TimeEstimate != nil {
		item.TimeEstimate = *body.TimeEstimate
	}
	if body.Category != nil {
		item.Category = *body.Category
	}
	if body.ImageUrl != nil {
		item.ImageUrl = *body.ImageUrl
	}
	if body.IsVeg != nil {
		item.IsVeg = *body.IsVeg
	}
	if body.IsSpicy != nil {
		item.IsSpicy = *body.IsSpicy
	}
	if body.IsBestseller != nil {
		item.IsBestseller = *body.IsBestseller
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem is idempotent: deleting an id that is already gone still
// reports success.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	if err := mc.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": id})
}

func distinctCategories(items []models.MenuItem) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, item := range items {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}
