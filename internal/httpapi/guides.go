package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hajjhub/internal/store"
)

// parseID parses a numeric path parameter. A non-numeric id can match
// no record, so callers treat a parse failure as a lookup miss.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}

func ListHajjGuides(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.GetHajjGuides())
	}
}

func GetHajjGuide(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hajj guide not found"})
			return
		}
		guide := s.GetHajjGuide(id)
		if guide == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hajj guide not found"})
			return
		}
		c.JSON(http.StatusOK, guide)
	}
}

func ListUmrahGuides(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.GetUmrahGuides())
	}
}

func GetUmrahGuide(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Umrah guide not found"})
			return
		}
		guide := s.GetUmrahGuide(id)
		if guide == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Umrah guide not found"})
			return
		}
		c.JSON(http.StatusOK, guide)
	}
}

// ListMasjidGuides returns all masjid guides, or only those in
// ?category= when the filter is present.
func ListMasjidGuides(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if category := c.Query("category"); category != "" {
			c.JSON(http.StatusOK, s.GetMasjidGuidesByCategory(category))
			return
		}
		c.JSON(http.StatusOK, s.GetMasjidGuides())
	}
}

func GetMasjidGuide(s store.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Masjid guide not found"})
			return
		}
		guide := s.GetMasjidGuide(id)
		if guide == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Masjid guide not found"})
			return
		}
		c.JSON(http.StatusOK, guide)
	}
}
