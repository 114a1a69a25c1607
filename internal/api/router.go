package api

import (
	"go-context-registry/internal/api/handler"
	"go-context-registry/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-context-registry/docs" // generated swagger spec
)

// RegisterRoutes wires the registry API onto the router
func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.POST("/api/v1/schemas", h.RegisterSchema)
	r.GET("/api/v1/schemas", h.ListHistory)
	// More specific routes first
	r.GET("/api/v1/schemas/current", h.GetCurrentSchema)
	r.GET("/api/v1/schemas/upgrade", h.SuggestUpgrade)
	r.GET("/api/v1/schemas/summary", h.GetRuleSummary)
	r.POST("/api/v1/schemas/rollback", h.Rollback)
	// Generic version lookup last
	r.GET("/api/v1/schemas/*", h.GetSchema)

	r.POST("/api/v1/validate", h.ValidateDocument)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
