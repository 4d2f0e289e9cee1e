package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/page-index-service/internal/service"
)

// APIV1Prefix is the base path of the public HTTP API v1.
const APIV1Prefix = "/api/v1"

// Register mounts all public routes on the given engine.
// probe backs the readiness endpoints; defaultPerPage applies to GET page requests without per_page.
func Register(r *gin.Engine, probe Pinger, pageSvc service.PageService, defaultPerPage int) {
	h := NewHealthHandler(probe)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPageHandler(pageSvc, defaultPerPage).Register(api)
	}
}
