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
	"github.com/yeremiapane/travel-cafe-app/utils"
)

func setupTestDBForPlans(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:plans_test?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Plan{}, &models.PlanFeature{}); err != nil {
		t.Fatal(err)
	}
	db.Exec("DELETE FROM plan_features")
	db.Exec("DELETE FROM plans")
	return db
}

func setupPlanRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	planCtrl := controllers.NewPlanController(db)
	router.GET("/plans", planCtrl.GetAllPlans)
	router.GET("/admin/plans", planCtrl.GetAllPlansAdmin)
	router.POST("/admin/plans", planCtrl.CreatePlan)
	router.PATCH("/admin/plans/:plan_id", planCtrl.UpdatePlan)
	router.DELETE("/admin/plans/:plan_id", planCtrl.DeletePlan)
	return router
}

func planPayload(features ...string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "cake",
		"title":       "Runway Birthday",
		"description": "Cake cutting at the gate",
		"price":       1999,
		"label":       "per event",
		"badge":       "Popular",
		"features":    features,
	}
}

func TestPlanCreateWithFeatures(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPlans(t)
	router := setupPlanRouter(db)

	payloadBytes, _ := json.Marshal(planPayload("Cake", "Decorations", ""))
	req, _ := http.NewRequest("POST", "/admin/plans", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	// blank feature strings are dropped
	features := data["plan_features"].([]interface{})
	assert.Len(t, features, 2)
}

func TestPlanFeatureDestructiveReplace(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPlans(t)
	router := setupPlanRouter(db)

	payloadBytes, _ := json.Marshal(planPayload("A", "B"))
	req, _ := http.NewRequest("POST", "/admin/plans", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	planID := int(resp["data"].(map[string]interface{})["id"].(float64))

	oldIDs := make(map[float64]bool)
	for _, f := range resp["data"].(map[string]interface{})["plan_features"].([]interface{}) {
		oldIDs[f.(map[string]interface{})["id"].(float64)] = true
	}

	// edit ["A","B"] -> ["A","C","D"]
	update := planPayload("A", "C", "D")
	payloadBytes, _ = json.Marshal(update)
	req, _ = http.NewRequest("PATCH", fmt.Sprintf("/admin/plans/%d", planID), bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []models.PlanFeature
	assert.NoError(t, db.Where("plan_id = ?", planID).Find(&rows).Error)

	got := make([]string, 0, len(rows))
	for _, row := range rows {
		got = append(got, row.Feature)
		// every row is new: destructive replace, not a diff
		assert.False(t, oldIDs[float64(row.ID)], "feature id %d survived the replace", row.ID)
	}
	assert.ElementsMatch(t, []string{"A", "C", "D"}, got)
}

func TestPlanTypeValidation(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPlans(t)
	router := setupPlanRouter(db)

	payload := planPayload("A")
	payload["type"] = "wedding"
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/admin/plans", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicPlansFilterAndOrder(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPlans(t)
	router := setupPlanRouter(db)

	plans := []models.Plan{
		{Type: models.PlanTypeCake, Title: "Big", Price: 2999},
		{Type: models.PlanTypeCake, Title: "Small", Price: 999},
		{Type: models.PlanTypeCorporate, Title: "Boardroom", Price: 4999},
	}
	assert.NoError(t, db.Create(&plans).Error)

	req, _ := http.NewRequest("GET", "/plans?type=cake", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 2)

	// cheapest first
	assert.Equal(t, "Small", data[0].(map[string]interface{})["title"])
	assert.Equal(t, "Big", data[1].(map[string]interface{})["title"])
}

func TestPlanDeleteRemovesFeatures(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPlans(t)
	router := setupPlanRouter(db)

	plan := models.Plan{Type: models.PlanTypeAnniversary, Title: "Two of us", Price: 1499}
	assert.NoError(t, db.Create(&plan).Error)
	assert.NoError(t, db.Create(&models.PlanFeature{PlanID: plan.ID, Feature: "Roses"}).Error)

	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/admin/plans/%d", plan.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.PlanFeature{}).Where("plan_id = ?", plan.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
