package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/travel-cafe-app/services"
	"github.com/yeremiapane/travel-cafe-app/utils"
)

type MediaController struct {
	Storage *services.MediaStorage
}

func NewMediaController(storage *services.MediaStorage) *MediaController {
	return &MediaController{Storage: storage}
}

// UploadImage stores one image into the named bucket and returns the public
// URL for the subsequent row write. Oversized uploads get 413, non-images
// and unknown buckets 400.
func (mc *MediaController) UploadImage(c *gin.Context) {
	bucket := c.Param("bucket")
	if !services.IsValidBucket(bucket) {
		utils.RespondError(c, http.StatusBadRequest, services.ErrUnknownBucket)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("image file is required"))
		return
	}

	url, err := mc.Storage.Save(bucket, file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssetTooLarge):
			utils.RespondError(c, http.StatusRequestEntityTooLarge, err)
		case errors.Is(err, services.ErrNotAnImage):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Image uploaded", gin.H{"url": url})
}
