package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/travel-cafe-app/models"
	"github.com/yeremiapane/travel-cafe-app/utils"
	"gorm.io/gorm"
)

type PlanController struct {
	DB *gorm.DB
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{DB: db}
}

// GetAllPlans serves the public events page: features preloaded, cheapest
// first, optionally narrowed to one plan type.
func (pc *PlanController) GetAllPlans(c *gin.Context) {
	query := pc.DB.Preload("Features").Order("price ASC")
	if planType := c.Query("type"); planType != "" {
		query = query.Where("type = ?", planType)
	}

	var plans []models.Plan
	if err := query.Find(&plans).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of plans", plans)
}

// GetAllPlansAdmin lists newest first for the management grid.
func (pc *PlanController) GetAllPlansAdmin(c *gin.Context) {
	var plans []models.Plan
	if err := pc.DB.Preload("Features").
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of plans", plans)
}

type planRequest struct {
	Type        string   `json:"type" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ImageUrl    string   `json:"image_url"`
	Price       float64  `json:"price" binding:"required"`
	Label       string   `json:"label"`
	Badge       string   `json:"badge"`
	Features    []string `json:"features"`
}

// CreatePlan writes the plan and its feature rows in one transaction.
func (pc *PlanController) CreatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.IsValidPlanType(req.Type) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("invalid plan type %q", req.Type))
		return
	}

	plan := models.Plan{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		ImageUrl:    req.ImageUrl,
		Price:       req.Price,
		Label:       req.Label,
		Badge:       req.Badge,
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		return insertFeatures(tx, plan.ID, req.Features)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pc.DB.Preload("Features").First(&plan, plan.ID)
	utils.RespondJSON(c, http.StatusCreated, "Plan created", plan)
}

// UpdatePlan replaces the whole feature set on every save. The replace
// happens inside one transaction, so a plan is never left without its
// features mid-save; ids of feature rows still change on each edit.
func (pc *PlanController) UpdatePlan(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("plan_id"))

	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.IsValidPlanType(req.Type) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("invalid plan type %q", req.Type))
		return
	}

	var plan models.Plan
	if err := pc.DB.First(&plan, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("plan not found"))
		return
	}

	plan.Type = req.Type
	plan.Title = req.Title
	plan.Description = req.Description
	plan.Price = req.Price
	plan.Label = req.Label
	plan.Badge = req.Badge
	if req.ImageUrl != "" {
		plan.ImageUrl = req.ImageUrl
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&plan).Error; err != nil {
			return err
		}
		if err := tx.Where("plan_id = ?", plan.ID).
			Delete(&models.PlanFeature{}).Error; err != nil {
			return err
		}
		return insertFeatures(tx, plan.ID, req.Features)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pc.DB.Preload("Features").First(&plan, plan.ID)
	utils.RespondJSON(c, http.StatusOK, "Plan updated", plan)
}

// DeletePlan removes the plan and its feature rows.
func (pc *PlanController) DeletePlan(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("plan_id"))

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).
			Delete(&models.PlanFeature{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Plan{}, id).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Plan deleted", gin.H{"plan_id": id})
}

func insertFeatures(tx *gorm.DB, planID uint, features []string) error {
	rows := make([]models.PlanFeature, 0, len(features))
	for _, f := range features {
		if strings.TrimSpace(f) == "" {
			continue
		}
		rows = append(rows, models.PlanFeature{PlanID: planID, Feature: f})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
