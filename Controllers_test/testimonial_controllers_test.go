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

func setupTestDBForTestimonials(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:testimonials_test?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Testimonial{}); err != nil {
		t.Fatal(err)
	}
	db.Exec("DELETE FROM testimonials")
	return db
}

func setupTestimonialRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	tCtrl := controllers.NewTestimonialController(db)
	router.GET("/testimonials", tCtrl.GetPublishedTestimonials)
	router.GET("/admin/testimonials", tCtrl.GetAllTestimonials)
	router.POST("/admin/testimonials", tCtrl.CreateTestimonial)
	router.PATCH("/admin/testimonials/:testimonial_id", tCtrl.UpdateTestimonial)
	router.DELETE("/admin/testimonials/:testimonial_id", tCtrl.DeleteTestimonial)
	return router
}

func TestPublicFeedOnlyShowsPublishedInOrder(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTestimonials(t)
	router := setupTestimonialRouter(db)

	rows := []models.Testimonial{
		{Name: "Third", Quote: "q", Rating: 5, IsPublished: true, SortOrder: 3},
		{Name: "First", Quote: "q", Rating: 4, IsPublished: true, SortOrder: 1},
		{Name: "Hidden", Quote: "q", Rating: 1, IsPublished: false, SortOrder: 0},
		{Name: "Second", Quote: "q", Rating: 5, IsPublished: true, SortOrder: 2},
	}
	assert.NoError(t, db.Create(&rows).Error)

	req, _ := http.NewRequest("GET", "/testimonials", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 3)
	assert.Equal(t, "First", data[0].(map[string]interface{})["name"])
	assert.Equal(t, "Second", data[1].(map[string]interface{})["name"])
	assert.Equal(t, "Third", data[2].(map[string]interface{})["name"])
}

func TestTestimonialRatingBounds(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTestimonials(t)
	router := setupTestimonialRouter(db)

	for _, rating := range []int{0, 6, -1} {
		payload := map[string]interface{}{"name": "X", "quote": "ok", "rating": rating}
		payloadBytes, _ := json.Marshal(payload)
		req, _ := http.NewRequest("POST", "/admin/testimonials", bytes.NewBuffer(payloadBytes))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
	}

	payload := map[string]interface{}{"name": "X", "role": "Frequent flyer", "quote": "ok", "rating": 5}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/admin/testimonials", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTestimonialUnpublishHidesFromPublicFeed(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTestimonials(t)
	router := setupTestimonialRouter(db)

	row := models.Testimonial{Name: "Asha", Quote: "Lovely cabin", Rating: 5, IsPublished: true}
	assert.NoError(t, db.Create(&row).Error)

	payload := map[string]interface{}{"is_published": false}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("PATCH", fmt.Sprintf("/admin/testimonials/%d", row.ID), bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/testimonials", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// data is omitted entirely once the feed is empty
	assert.Nil(t, resp["data"])
}
