package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schemaviz/internal/responses"
	"schemaviz/internal/services"
)

type SchemaHandler struct {
	parseService    *services.ParseService
	analysisService *services.AnalysisService // nil when analysis is not configured
}

func NewSchemaHandler(parseService *services.ParseService, analysisService *services.AnalysisService) *SchemaHandler {
	return &SchemaHandler{
		parseService:    parseService,
		analysisService: analysisService,
	}
}

type parseRequest struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

// Parse handles POST /api/v1/schema/parse
func (h *SchemaHandler) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	model, err := h.parseService.Parse(c.Request.Context(), req.Content, req.Filename)
	if err != nil {
		if errors.Is(err, services.ErrContentTooLarge) {
			responses.Fail(c, http.StatusRequestEntityTooLarge, err, "Schema content too large")
			return
		}
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to parse schema")
		return
	}

	responses.Success(c, http.StatusOK, model, "Schema parsed successfully")
}

// Analyze handles POST /api/v1/schema/analyze
func (h *SchemaHandler) Analyze(c *gin.Context) {
	if h.analysisService == nil {
		responses.Fail(c, http.StatusServiceUnavailable, nil, "Schema analysis is not configured")
		return
	}

	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	report, err := h.analysisService.Analyze(c.Request.Context(), req.Content)
	if err != nil {
		// Collaborator failures surface as a retryable state, never into
		// the parsing path.
		responses.Fail(c, http.StatusBadGateway, err, "Schema analysis failed, please retry")
		return
	}

	responses.Success(c, http.StatusOK, report, "Schema analyzed successfully")
}
