package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/interface/extraction"
	"flightcast-service/internal/usecase"
	"flightcast-service/pkg/apperrors"
	"flightcast-service/pkg/logger"
	"flightcast-service/templates"
)

// Handler exposes the itinerary service over HTTP
type Handler struct {
	service *usecase.ItineraryService
	logger  logger.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.ItineraryService, logger logger.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type documentRequest struct {
	FileBase64 string `json:"fileBase64" binding:"required"`
	MimeType   string `json:"mimeType"`
}

func (r documentRequest) document() extraction.Document {
	return extraction.Document{Base64: r.FileBase64, MimeType: r.MimeType}
}

type roundTripRequest struct {
	Outbound documentRequest `json:"outbound" binding:"required"`
	Inbound  documentRequest `json:"inbound" binding:"required"`
}

type composeRequest struct {
	Data  *entity.ExtractedFlightData `json:"data" binding:"required"`
	Mode  string                      `json:"mode" binding:"required"`
	Style string                      `json:"style"`
	Save  bool                        `json:"save"`
}

type composeResponse struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

type sendRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// ExtractSingle handles POST /extractions
func (h *Handler) ExtractSingle(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	data, err := h.service.ExtractSingle(c.Request.Context(), req.document())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// ExtractRoundTrip handles POST /extractions/roundtrip
func (h *Handler) ExtractRoundTrip(c *gin.Context) {
	var req roundTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	data, err := h.service.ExtractRoundTrip(c.Request.Context(), req.Outbound.document(), req.Inbound.document())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// ComposeMessage handles POST /messages
func (h *Handler) ComposeMessage(c *gin.Context) {
	var req composeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}
	style := req.Style
	if style == "" {
		style = string(templates.StyleClassic)
	}

	html, text, err := h.service.ComposeMessage(c.Request.Context(), req.Data,
		templates.Mode(req.Mode), templates.Style(style), req.Save)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, composeResponse{HTML: html, Text: text})
}

// SendMessage handles POST /messages/send
func (h *Handler) SendMessage(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	if err := h.service.SendEmail(c.Request.Context(), req.To, req.Subject, req.HTML, req.Text); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "sent"})
}

// History handles GET /history
func (h *Handler) History(c *gin.Context) {
	items, err := h.service.History(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if items == nil {
		items = []*entity.HistoryItem{}
	}
	c.JSON(http.StatusOK, items)
}

// ClearHistory handles DELETE /history
func (h *Handler) ClearHistory(c *gin.Context) {
	if err := h.service.ClearHistory(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "cleared"})
}

// GetConfig handles GET /config
func (h *Handler) GetConfig(c *gin.Context) {
	config, err := h.service.GetConfig(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

// SaveConfig handles PUT /config
func (h *Handler) SaveConfig(c *gin.Context) {
	var config entity.AppConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		h.respondError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	if err := h.service.SaveConfig(c.Request.Context(), config); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "saved"})
}

// ListAgents handles GET /agents
func (h *Handler) ListAgents(c *gin.Context) {
	agents, err := h.service.Agents(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

// CreateAgent handles POST /agents
func (h *Handler) CreateAgent(c *gin.Context) {
	var profile entity.AgentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.respondError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}

	if err := h.service.CreateAgent(c.Request.Context(), &profile); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// UpdateAgent handles PUT /agents/:id
func (h *Handler) UpdateAgent(c *gin.Context) {
	var profile entity.AgentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.respondError(c, apperrors.ValidationFailed("invalid request body", err.Error()))
		return
	}
	profile.ID = c.Param("id")

	if err := h.service.UpdateAgent(c.Request.Context(), &profile); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteAgent handles DELETE /agents/:id
func (h *Handler) DeleteAgent(c *gin.Context) {
	if err := h.service.DeleteAgent(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}

// ActivateAgent handles POST /agents/:id/activate
func (h *Handler) ActivateAgent(c *gin.Context) {
	if err := h.service.ActivateAgent(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statusResponse{Status: "activated"})
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			h.logger.Error("Request failed", "path", c.FullPath(), "error", err)
		}
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}
	h.logger.Error("Request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, apperrors.New(apperrors.ServerError, "internal server error", ""))
}
