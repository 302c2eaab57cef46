package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schemaviz/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, schemaHandler *handlers.SchemaHandler, snapshotHandler *handlers.SnapshotHandler) {
	api := router.Group("/api/v1")

	schemaRoutes := NewSchemaRoutes(schemaHandler)
	schemaRoutes.RegisterRoutes(api)

	snapshotRoutes := NewSnapshotRoutes(snapshotHandler)
	snapshotRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
