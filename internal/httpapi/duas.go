package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hajjhub/internal/store"
)

func ListDuas(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if category := c.Query("category"); category != "" {
			c.JSON(http.StatusOK, s.GetDuasByCategory(category))
			return
		}
		c.JSON(http.StatusOK, s.GetDuas())
	}
}

func GetDua(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Dua not found"})
			return
		}
		dua := s.GetDua(id)
		if dua == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Dua not found"})
			return
		}
		c.JSON(http.StatusOK, dua)
	}
}

func ListScholars(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.GetScholars())
	}
}

func GetScholar(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Scholar not found"})
			return
		}
		scholar := s.GetScholar(id)
		if scholar == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Scholar not found"})
			return
		}
		c.JSON(http.StatusOK, scholar)
	}
}
