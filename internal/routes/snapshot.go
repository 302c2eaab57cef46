package routes

import (
	"github.com/gin-gonic/gin"

	"schemaviz/internal/handlers"
)

type SnapshotRoutes struct {
	handler *handlers.SnapshotHandler
}

func NewSnapshotRoutes(handler *handlers.SnapshotHandler) *SnapshotRoutes {
	return &SnapshotRoutes{handler: handler}
}

func (r *SnapshotRoutes) RegisterRoutes(router *gin.RouterGroup) {
	snapshots := router.Group("/snapshots")
	{
		snapshots.POST("", r.handler.Create)
		snapshots.GET("", r.handler.List)
		snapshots.GET("/:id", r.handler.Get)
		snapshots.DELETE("/:id", r.handler.Delete)
	}
}
