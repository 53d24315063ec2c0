package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"category-service/internal/domain"
	categorysvc "category-service/internal/service/category"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CategoryService is the subset of the category service used by handlers.
type CategoryService interface {
	List(ctx context.Context, limit, offset int) ([]domain.Category, error)
	Get(ctx context.Context, slug string) (*domain.Category, error)
	Validate(payload any) (domain.CategoryInput, *categorysvc.Violations)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, in domain.CategoryInput, slug string) (*domain.Category, error)
	Delete(ctx context.Context, slug string) error
}

// Deps groups the services the router dispatches to.
type Deps struct {
	CategorySvc CategoryService
	// CORSMaxAge controls how long browsers may cache preflight results.
	CORSMaxAge time.Duration
	Version    string
}

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, db Pinger, deps Deps) (*gin.Engine, error) {
	if deps.CategorySvc == nil {
		return nil, errors.New("category service is required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.HandleMethodNotAllowed = false
	router.Use(
		requestID(),
		accessLog(logger),
		recovery(logger),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:    []string{"Origin", "Content-Type", "Accept", requestIDHeader},
			ExposeHeaders:   []string{requestIDHeader},
			MaxAge:          deps.CORSMaxAge,
		}),
		errorHandler(logger),
	)

	router.GET("/", indexHandler(deps.Version))
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &categoryHandler{svc: deps.CategorySvc}
	categories := router.Group("/categories")
	categories.GET("", h.list)
	categories.POST("", h.create)
	categories.GET("/:slug", h.get)
	categories.PATCH("/:slug", h.update)
	categories.DELETE("/:slug", h.delete)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, messageBody{Message: "Not Found"})
	})

	return router, nil
}

type endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type manifest struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Endpoints []endpoint `json:"endpoints"`
}

var endpoints = []endpoint{
	{Method: http.MethodGet, Path: "/categories", Description: "List categories (limit, offset)"},
	{Method: http.MethodGet, Path: "/categories/:slug", Description: "Get a category by slug"},
	{Method: http.MethodPost, Path: "/categories", Description: "Create a category"},
	{Method: http.MethodPatch, Path: "/categories/:slug", Description: "Update a category"},
	{Method: http.MethodDelete, Path: "/categories/:slug", Description: "Delete a category"},
}

func indexHandler(version string) gin.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	body := manifest{Name: "category-service", Version: version, Endpoints: endpoints}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, body)
	}
}
