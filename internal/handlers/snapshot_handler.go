package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schemaviz/internal/responses"
	"schemaviz/internal/services"
)

type SnapshotHandler struct {
	snapshotService *services.SnapshotService
}

func NewSnapshotHandler(snapshotService *services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

type createSnapshotRequest struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

// Create handles POST /api/v1/snapshots
func (h *SnapshotHandler) Create(c *gin.Context) {
	var req createSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	snapshot, err := h.snapshotService.Create(c.Request.Context(), req.Name, req.Content, req.Filename)
	if err != nil {
		if errors.Is(err, services.ErrContentTooLarge) {
			responses.Fail(c, http.StatusRequestEntityTooLarge, err, "Schema content too large")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to create snapshot")
		return
	}

	responses.Success(c, http.StatusCreated, snapshot, "Snapshot created successfully")
}

// List handles GET /api/v1/snapshots
func (h *SnapshotHandler) List(c *gin.Context) {
	snapshots, err := h.snapshotService.List(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list snapshots")
		return
	}

	responses.Success(c, http.StatusOK, snapshots, "Snapshots retrieved successfully")
}

// Get handles GET /api/v1/snapshots/:id
func (h *SnapshotHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid snapshot ID format")
		return
	}

	snapshot, err := h.snapshotService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSnapshotNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "Snapshot not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to get snapshot")
		return
	}

	responses.Success(c, http.StatusOK, snapshot, "Snapshot retrieved successfully")
}

// Delete handles DELETE /api/v1/snapshots/:id
func (h *SnapshotHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid snapshot ID format")
		return
	}

	if err := h.snapshotService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrSnapshotNotFound) {
			responses.Fail(c, http.StatusNotFound, err, "Snapshot not found")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to delete snapshot")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Snapshot deleted successfully")
}
