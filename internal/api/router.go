package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"aedb-backend/config"
	"aedb-backend/internal/datastore"
	"aedb-backend/internal/mw"
	"aedb-backend/internal/token"
)

// NewRouter builds the gin engine with all API routes mounted under
// /api/v1. Every route runs inside a request-scoped transaction; write
// routes additionally require a bearer token.
func NewRouter(db *gorm.DB, h *Handler, codec *token.Codec, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	listCache := mw.Cache(cache.New(cacheTTL, 2*cacheTTL), cacheTTL)

	v1 := r.Group("/api/v1")
	v1.Use(mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))
	v1.Use(datastore.Transactional(db))

	// Public surface: registration, login, read-only catalog views and the
	// sensor ingest endpoint.
	v1.POST("/token", h.PostToken)
	v1.POST("/users", h.PostUser)
	v1.GET("/manuals/nested", listCache, h.GetNestedManuals)
	v1.GET("/converters", listCache, h.GetConverters)
	v1.GET("/converters/paginated", h.GetConvertersPaginated)
	v1.POST("/sensors/receive_data", h.ReceiveSensorData)

	auth := v1.Group("", mw.RequireAuth(codec))

	auth.GET("/users/me", h.GetMe)

	manuals := auth.Group("/manuals")
	manuals.GET("", h.GetManuals)
	manuals.GET("/search", h.SearchManuals)
	manuals.POST("", h.PostManual)
	manuals.POST("/upload", h.UploadManual)
	manuals.POST("/add_all", h.AddAllManuals)
	manuals.PUT("/:manual_id", h.PutManual)
	manuals.DELETE("", h.DeleteManuals)
	manuals.DELETE("/:manual_id", h.DeleteManual)

	groups := auth.Group("/groups")
	groups.GET("", h.GetGroups)
	groups.GET("/search", h.SearchGroups)
	groups.POST("", h.PostGroup)
	groups.POST("/add_all", h.AddAllGroups)
	groups.PUT("/:group_id", h.PutGroup)
	groups.DELETE("", h.DeleteGroups)
	groups.DELETE("/:group_id", h.DeleteGroup)

	categories := auth.Group("/categories")
	categories.GET("", h.GetCategories)
	categories.GET("/search", h.SearchCategories)
	categories.POST("", h.PostCategory)
	categories.POST("/add_all", h.AddAllCategories)
	categories.PUT("/:category_id", h.PutCategory)
	categories.DELETE("", h.DeleteCategories)
	categories.DELETE("/:category_id", h.DeleteCategory)

	converters := auth.Group("/converters")
	converters.POST("/add_all", h.AddAllConverters)
	converters.DELETE("/delete_all", h.DeleteAllConverters)
	converters.DELETE("/:converter_id", h.DeleteConverter)
	converters.DELETE("/mill_shops/:mill_shop_id", h.DeleteMillShop)
	converters.DELETE("/production_lines/:production_line_id", h.DeleteProductionLine)
	converters.DELETE("/locations/:location_id", h.DeleteLocation)
	converters.DELETE("/cabinets/:cabinet_id", h.DeleteCabinet)
	converters.DELETE("/units/:unit_id", h.DeleteUnit)

	posts := auth.Group("/posts")
	posts.GET("", h.GetPosts)
	posts.GET("/search", h.SearchPosts)
	posts.GET("/:post_id", h.GetPost)
	posts.POST("", h.PostPost)
	posts.PUT("/:post_id", h.PutPost)
	posts.DELETE("/:post_id", h.DeletePost)

	menu := auth.Group("/menu")
	menu.GET("", h.GetMenu)
	menu.POST("", h.PostMenuItem)

	storage := auth.Group("/storage")
	storage.GET("/locations", h.GetStorageLocations)
	storage.GET("/equipment", h.GetEquipment)
	storage.POST("/add_all", h.AddAllStorage)

	return r
}
