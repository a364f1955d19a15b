package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hajjhub/internal/live"
	"hajjhub/internal/store"
	"hajjhub/pkg/models"
)

// ListAdvertisements returns every ad, or only the active ads for
// ?location= when the filter is present. The unfiltered listing keeps
// inactive ads so the admin view can see them.
func ListAdvertisements(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if location := c.Query("location"); location != "" {
			c.JSON(http.StatusOK, s.GetAdvertisementsByLocation(location))
			return
		}
		c.JSON(http.StatusOK, s.GetAdvertisements())
	}
}

type toggleAdRequest struct {
	// pointer so a missing or non-boolean field fails as 400 rather
	// than defaulting to false
	IsActive *bool `json:"isActive"`
}

func ToggleAdvertisement(s store.Storage, hub *live.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Advertisement not found"})
			return
		}

		var req toggleAdRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "isActive must be a boolean"})
			return
		}

		ad := s.ToggleAdvertisement(id, *req.IsActive)
		if ad == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Advertisement not found"})
			return
		}

		if hub != nil {
			hub.Publish(live.EventAdToggle, models.AdToggle{
				AdID:      ad.ID,
				Location:  ad.Location,
				IsActive:  ad.IsActive,
				Timestamp: time.Now().Unix(),
			})
		}

		c.JSON(http.StatusOK, ad)
	}
}
