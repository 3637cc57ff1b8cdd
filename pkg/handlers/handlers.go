package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/AnilYadav17/videoHub/pkg/auth"
	"github.com/AnilYadav17/videoHub/pkg/database"
	"github.com/AnilYadav17/videoHub/pkg/middleware"
	"github.com/AnilYadav17/videoHub/pkg/models"
	"github.com/AnilYadav17/videoHub/pkg/uploadauth"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Register(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil || creds.Email == "" || creds.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	if !emailPattern.MatchString(creds.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enter valid email"})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", creds.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists !!"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Fail to register user"})
		return
	}

	user := models.User{
		Email:    creds.Email,
		Password: string(hashedPassword),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Fail to register user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

func Login(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil || creds.Email == "" || creds.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", creds.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CurrentUser returns the caller's record with owned videos populated,
// newest first.
func CurrentUser(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var user models.User
	err := database.DB.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).Where("id = ?", userID).First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	if user.Videos == nil {
		user.Videos = []models.Video{}
	}
	c.JSON(http.StatusOK, user)
}

// UploadAuth hands the client short-lived credentials for uploading media
// directly to the configured CDN.
func UploadAuth(c *gin.Context) {
	signer, err := uploadauth.FromConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload authentication failed"})
		return
	}

	creds, err := signer.Sign()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload authentication failed"})
		return
	}

	c.JSON(http.StatusOK, creds)
}

func Health(c *gin.Context) {
	if err := database.DB.DB().Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "DOWN", "database": "disconnected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP", "database": "connected"})
}
