package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"magicprompt_server/internal/types"
	"magicprompt_server/internal/wizard"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	svc *wizard.Service
	log *zap.SugaredLogger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(svc *wizard.Service, log *zap.SugaredLogger) *APIHandler {
	return &APIHandler{svc: svc, log: log}
}

// POST /api/ai/generate
func (h *APIHandler) Generate(c *gin.Context) {
	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.svc.Generate(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/ai/questions
func (h *APIHandler) Questions(c *gin.Context) {
	var req types.QuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.svc.Questions(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/ai/enhance
func (h *APIHandler) Enhance(c *gin.Context) {
	var req types.EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.svc.Enhance(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/ai/variations
func (h *APIHandler) Variations(c *gin.Context) {
	var req types.VariationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.svc.Variations(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/ai/testdrive
func (h *APIHandler) TestDrive(c *gin.Context) {
	var req types.TestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.svc.TestDrive(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *APIHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, wizard.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.log.Errorw("request failed", "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
