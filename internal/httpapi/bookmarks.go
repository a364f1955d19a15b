package httpapi

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"hajjhub/internal/auth"
	"hajjhub/internal/bookmarks"
)

func ListBookmarks(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt(auth.CtxUserIDKey)
		entries, err := bookmarks.List(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch bookmarks"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

type putBookmarkRequest struct {
	Value json.RawMessage `json:"value"`
}

func PutBookmark(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt(auth.CtxUserIDKey)
		key := c.Param("key")

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "value must be valid JSON"})
			return
		}
		var req putBookmarkRequest
		if err := json.Unmarshal(body, &req); err != nil || len(req.Value) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "value must be valid JSON"})
			return
		}

		if err := bookmarks.Put(db, userID, key, req.Value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save bookmark"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func DeleteBookmark(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt(auth.CtxUserIDKey)
		key := c.Param("key")

		if err := bookmarks.Delete(db, userID, key); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete bookmark"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
