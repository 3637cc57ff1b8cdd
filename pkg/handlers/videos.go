package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/AnilYadav17/videoHub/pkg/database"
	"github.com/AnilYadav17/videoHub/pkg/middleware"
	"github.com/AnilYadav17/videoHub/pkg/models"
)

type PlayerOptionsRequest struct {
	ShowControls *bool `json:"showControls"`
	Height       int   `json:"height" binding:"omitempty,min=1"`
	Width        int   `json:"width" binding:"omitempty,min=1"`
	Quality      int   `json:"quality" binding:"omitempty,min=1,max=100"`
}

type CreateVideoRequest struct {
	Title         string                `json:"title" binding:"required"`
	Description   string                `json:"description" binding:"required"`
	MediaURL      string                `json:"mediaUrl" binding:"required"`
	ThumbnailURL  string                `json:"thumbnailUrl" binding:"required"`
	PlayerOptions *PlayerOptionsRequest `json:"playerOptions"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ListVideos is the public home feed: every video, newest first.
func ListVideos(c *gin.Context) {
	videos := make([]models.Video, 0)
	if err := database.DB.Order("created_at desc").Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func CreateVideo(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required values"})
		return
	}

	// The owner record can vanish between authentication and this write.
	var owner models.User
	if err := database.DB.Where("id = ?", userID).First(&owner).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create an video"})
		return
	}

	opts := models.DefaultPlayerOptions()
	if req.PlayerOptions != nil {
		if req.PlayerOptions.ShowControls != nil {
			opts.ShowControls = *req.PlayerOptions.ShowControls
		}
		if req.PlayerOptions.Height > 0 {
			opts.Height = req.PlayerOptions.Height
		}
		if req.PlayerOptions.Width > 0 {
			opts.Width = req.PlayerOptions.Width
		}
		if req.PlayerOptions.Quality > 0 {
			opts.Quality = req.PlayerOptions.Quality
		}
	}

	video := models.Video{
		Title:         req.Title,
		Description:   req.Description,
		MediaURL:      req.MediaURL,
		ThumbnailURL:  req.ThumbnailURL,
		OwnerID:       owner.ID,
		PlayerOptions: opts,
	}

	if err := database.DB.Create(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create an video"})
		return
	}

	c.JSON(http.StatusOK, video)
}

func UpdateVideo(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing video id"})
		return
	}
	userID := middleware.CurrentUserID(c)

	var video models.Video
	err := database.DB.Where("id = ?", id).First(&video).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
		return
	}

	// Exact match on the owner reference, nothing looser.
	if video.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	video.Title = req.Title
	video.Description = req.Description

	if err := database.DB.Save(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
		return
	}

	c.JSON(http.StatusOK, video)
}

func DeleteVideo(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing video id"})
		return
	}
	userID := middleware.CurrentUserID(c)

	var video models.Video
	err := database.DB.Where("id = ?", id).First(&video).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}

	if video.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	// Ownership lives on the video row, so this is the only write needed.
	if err := database.DB.Delete(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}
