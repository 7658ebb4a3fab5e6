package api

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"aedb-backend/internal/datastore"
	"aedb-backend/internal/pdfcover"
	"aedb-backend/internal/service"
	"aedb-backend/internal/token"
)

// Handler holds shared dependencies for API handlers. Domain services are
// constructed per request on the request-scoped transaction.
type Handler struct {
	codec       *token.Codec
	store       service.ObjectStore // nil when object storage is not configured
	covers      pdfcover.Extractor
	fixturesDir string
	mediaBase   string
}

// NewHandler creates a new API handler.
func NewHandler(codec *token.Codec, store service.ObjectStore, covers pdfcover.Extractor, fixturesDir, mediaBase string) *Handler {
	return &Handler{
		codec:       codec,
		store:       store,
		covers:      covers,
		fixturesDir: fixturesDir,
		mediaBase:   mediaBase,
	}
}

func (h *Handler) manuals(c *gin.Context) *service.ManualService {
	return service.NewManualService(datastore.Session(c), h.store, h.covers, h.fixturesDir, h.mediaBase)
}

func (h *Handler) converters(c *gin.Context) *service.ConverterService {
	return service.NewConverterService(datastore.Session(c), h.fixturesDir)
}

func (h *Handler) posts(c *gin.Context) *service.PostService {
	return service.NewPostService(datastore.Session(c))
}

func (h *Handler) auth(c *gin.Context) *service.AuthService {
	return service.NewAuthService(datastore.Session(c), h.codec)
}

func (h *Handler) menu(c *gin.Context) *service.MenuService {
	return service.NewMenuService(datastore.Session(c))
}

func (h *Handler) storage(c *gin.Context) *service.StorageService {
	return service.NewStorageService(datastore.Session(c), h.fixturesDir)
}

// serverError records the error so the request transaction rolls back and
// answers 500 without leaking internals.
func serverError(c *gin.Context, err error) {
	c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// pathID parses an integer identifier path parameter; a malformed value
// aborts with 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// searchQuery validates the q parameter; queries shorter than 3
// characters are rejected before any service is touched.
func searchQuery(c *gin.Context) (string, bool) {
	q := c.Query("q")
	if utf8.RuneCountInString(q) < 3 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "q must be at least 3 characters"})
		return "", false
	}
	return q, true
}
