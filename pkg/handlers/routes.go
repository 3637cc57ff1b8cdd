package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AnilYadav17/videoHub/pkg/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", Health)
	r.GET("/videos", ListVideos)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
	}

	protected := r.Group("/", middleware.RequireAuth())
	{
		protected.GET("/currentUser", CurrentUser)
		protected.GET("/upload/auth", UploadAuth)
		protected.POST("/videos", CreateVideo)
		protected.PUT("/videos/:id", UpdateVideo)
		protected.DELETE("/videos/:id", DeleteVideo)
	}
}
