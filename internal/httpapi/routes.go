// Package httpapi maps HTTP requests onto the storage engine.
//
// Handlers follow one pattern: parse the optional filter or id, call
// the store, answer 200 with JSON, 404 when a lookup comes back
// absent, 400 on a malformed body. Every error body is {"message": ...}.
package httpapi

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"hajjhub/internal/auth"
	"hajjhub/internal/live"
	"hajjhub/internal/store"
)

// Deps carries everything the route layer needs. Constructed once in
// main and handed in, so tests can wire fresh instances.
type Deps struct {
	Store       store.Storage
	DB          *sql.DB // bookmarks; may be nil when the surface is disabled
	Hub         *live.Hub
	JWTSecret   []byte
	AdminEmails map[string]bool
}

// SetupRoutes registers every endpoint under /api.
func SetupRoutes(r *gin.Engine, deps Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")
	{
		api.POST("/auth/register", HandleRegister(deps.Store, deps.AdminEmails))
		api.POST("/auth/login", HandleLogin(deps.Store, deps.JWTSecret))

		api.GET("/hajj-guides", ListHajjGuides(deps.Store))
		api.GET("/hajj-guides/:id", GetHajjGuide(deps.Store))
		api.GET("/umrah-guides", ListUmrahGuides(deps.Store))
		api.GET("/umrah-guides/:id", GetUmrahGuide(deps.Store))
		api.GET("/masjid-guides", ListMasjidGuides(deps.Store))
		api.GET("/masjid-guides/:id", GetMasjidGuide(deps.Store))
		api.GET("/duas", ListDuas(deps.Store))
		api.GET("/duas/:id", GetDua(deps.Store))
		api.GET("/scholars", ListScholars(deps.Store))
		api.GET("/scholars/:id", GetScholar(deps.Store))
		api.GET("/advertisements", ListAdvertisements(deps.Store))

		api.POST("/user-progress/:userId", UpdateUserProgress(deps.Store, deps.Hub))

		if deps.Hub != nil {
			api.GET("/ws", live.HandleWebSocket(deps.Hub))
		}

		admin := api.Group("/")
		admin.Use(auth.RequireJWT(deps.JWTSecret), auth.RequireAdmin())
		admin.PATCH("/advertisements/:id/toggle", ToggleAdvertisement(deps.Store, deps.Hub))

		if deps.DB != nil {
			bm := api.Group("/bookmarks")
			bm.Use(auth.RequireJWT(deps.JWTSecret))
			bm.GET("", ListBookmarks(deps.DB))
			bm.PUT("/:key", PutBookmark(deps.DB))
			bm.DELETE("/:key", DeleteBookmark(deps.DB))
		}
	}
}
