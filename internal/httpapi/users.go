package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hajjhub/internal/auth"
	"hajjhub/internal/live"
	"hajjhub/internal/store"
	"hajjhub/pkg/models"
)

const tokenTTL = 24 * time.Hour

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Language string `json:"language"`
}

func HandleRegister(s store.Storage, adminEmails map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username, password and email are required"})
			return
		}
		if s.GetUserByUsername(req.Username) != nil {
			c.JSON(http.StatusConflict, gin.H{"message": "username already taken"})
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create user"})
			return
		}

		language := req.Language
		if language == "" {
			language = "en"
		}

		user := s.CreateUser(models.InsertUser{
			Username: req.Username,
			Password: hash,
			Email:    req.Email,
			Language: language,
		})
		if adminEmails[req.Email] {
			if u := s.SetUserAdmin(user.ID, true); u != nil {
				user = *u
			}
		}

		c.JSON(http.StatusCreated, user)
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func HandleLogin(s store.Storage, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
			return
		}

		user := s.GetUserByUsername(req.Username)
		if user == nil || !auth.CheckPassword(user.Password, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}

		token, err := auth.SignToken(secret, user.ID, user.Username, user.IsAdmin, tokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to sign token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

type progressRequest struct {
	// pointer so a missing progress field is told apart from an empty bag
	Progress *map[string]any `json:"progress"`
}

// validProgress accepts only JSON scalar values in the merge payload.
// The bag stays an open map, but nested structures are rejected so a
// client cannot grow unbounded trees under a single key.
func validProgress(progress map[string]any) bool {
	for _, v := range progress {
		switch v.(type) {
		case nil, bool, string, float64:
		default:
			return false
		}
	}
	return true
}

// UpdateUserProgress shallow-merges the submitted bag into the user's
// stored progress and announces the merge on the live feed.
func UpdateUserProgress(s store.Storage, hub *live.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseID(c, "userId")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		var req progressRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Progress == nil || !validProgress(*req.Progress) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid progress data"})
			return
		}

		user := s.UpdateUserProgress(userID, *req.Progress)
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		if hub != nil {
			hub.Publish(live.EventProgressUpdate, models.ProgressUpdate{
				UserID:    user.ID,
				Progress:  *req.Progress,
				Timestamp: time.Now().Unix(),
			})
		}

		c.JSON(http.StatusOK, user)
	}
}
