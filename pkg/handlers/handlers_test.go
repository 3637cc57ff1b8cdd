package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnilYadav17/videoHub/cmd/config"
	"github.com/AnilYadav17/videoHub/pkg/database"
	"github.com/AnilYadav17/videoHub/pkg/models"
)

// setupTest wires the router against a throwaway in-memory database.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.JWTSecret = "test-secret"
	config.TokenTTL = time.Hour
	config.UploadProvider = "imagekit"
	config.ImageKitPublicKey = "pub_key"
	config.ImageKitPrivateKey = "priv_key"
	config.ImageKitTokenTTL = 30 * time.Minute

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open("sqlite3", dsn)
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	db.AutoMigrate(&models.User{}, &models.Video{})
	database.DB = db
	t.Cleanup(func() { db.Close() })

	r := gin.New()
	RegisterRoutes(r)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{"email": email, "password": "pw123456"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": "pw123456"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegister(t *testing.T) {
	r := setupTest(t)

	t.Run("Success", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{"email": "a@x.com", "password": "pw123456"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"User registered successfully"}`, w.Body.String())
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{"email": "a@x.com", "password": "pw123456"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"User already exists !!"}`, w.Body.String())
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{"email": "b@x.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Email and password are required"}`, w.Body.String())
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{"email": "not-an-email", "password": "pw123456"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Enter valid email"}`, w.Body.String())
	})

	t.Run("PasswordNotStoredInPlaintext", func(t *testing.T) {
		var user models.User
		require.NoError(t, database.DB.Where("email = ?", "a@x.com").First(&user).Error)
		assert.NotEqual(t, "pw123456", user.Password)
		assert.NotEmpty(t, user.ID)
	})
}

func TestLogin(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, http.MethodPost, "/auth/register", "", gin.H{"email": "a@x.com", "password": "pw123456"})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("Success", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": "a@x.com", "password": "pw123456"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "token")
	})

	t.Run("WrongPassword", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": "a@x.com", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/auth/login", "", gin.H{"email": "nobody@x.com", "password": "pw123456"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCurrentUser(t *testing.T) {
	r := setupTest(t)
	token := registerAndLogin(t, r, "a@x.com")

	t.Run("Unauthenticated", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/currentUser", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("EmptyVideoList", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/currentUser", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var user models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, "a@x.com", user.Email)
		assert.NotNil(t, user.Videos)
		assert.Len(t, user.Videos, 0)
	})

	t.Run("VideosPopulatedNewestFirst", func(t *testing.T) {
		var user models.User
		require.NoError(t, database.DB.Where("email = ?", "a@x.com").First(&user).Error)

		older := models.Video{Title: "old", Description: "d", MediaURL: "u", ThumbnailURL: "t",
			OwnerID: user.ID, CreatedAt: time.Now().Add(-time.Hour)}
		newer := models.Video{Title: "new", Description: "d", MediaURL: "u", ThumbnailURL: "t",
			OwnerID: user.ID, CreatedAt: time.Now()}
		require.NoError(t, database.DB.Create(&older).Error)
		require.NoError(t, database.DB.Create(&newer).Error)

		w := doJSON(r, http.MethodGet, "/currentUser", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.Videos, 2)
		assert.Equal(t, "new", got.Videos[0].Title)
		assert.Equal(t, "old", got.Videos[1].Title)
	})

	t.Run("NoPasswordInResponse", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/currentUser", token, nil)
		assert.NotContains(t, w.Body.String(), "password")
	})
}

func TestUploadAuth(t *testing.T) {
	r := setupTest(t)
	token := registerAndLogin(t, r, "a@x.com")

	t.Run("Unauthenticated", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/upload/auth", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("IssuesCredentials", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/upload/auth", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var creds struct {
			Token     string `json:"token"`
			Expire    int64  `json:"expire"`
			Signature string `json:"signature"`
			PublicKey string `json:"publicKey"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &creds))
		assert.NotEmpty(t, creds.Token)
		assert.NotEmpty(t, creds.Signature)
		assert.Equal(t, "pub_key", creds.PublicKey)
		assert.Greater(t, creds.Expire, time.Now().Unix())
	})
}

func TestHealth(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"UP"`)
}
