package call

import (
	"fmt"
	"log/slog"
	"net/http"

	"callping/internal/common"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the call notification domain.
type Handler struct {
	service *Service
}

// NewHandler creates a new call notification handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Notify handles POST /api/v1/notifications
// Validates the raw event, dispatches it, and returns the normalized outcome.
func (h *Handler) Notify(c *gin.Context) {
	raw, ok := bindRaw(c)
	if !ok {
		return
	}

	ev, err := ParseEvent(raw)
	if err != nil {
		slog.Info("rejected call event", "error", err)
		common.HandleError(c, err)
		return
	}

	res := h.service.Dispatch(c.Request.Context(), ev)

	msg := "Notification sent"
	if res.Status == StatusDryRun {
		msg = fmt.Sprintf("Notification simulated (dry-run): %s", res.Reason)
	}

	common.Success(c, http.StatusOK, msg, res)
}

// Preview handles POST /api/v1/preview
// Validates the raw event and returns the rendered message without sending.
func (h *Handler) Preview(c *gin.Context) {
	raw, ok := bindRaw(c)
	if !ok {
		return
	}

	ev, err := ParseEvent(raw)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	common.Success(c, http.StatusOK, "Preview rendered", gin.H{
		"body": h.service.Preview(ev),
	})
}

// Directions handles GET /api/v1/directions
func (h *Handler) Directions(c *gin.Context) {
	common.Success(c, http.StatusOK, "Supported call directions", h.service.Directions())
}

// bindRaw reads the request body as an untyped JSON value. Shape checks
// belong to ParseEvent; this only guards against unreadable or invalid JSON.
func bindRaw(c *gin.Context) (any, bool) {
	var raw any
	if err := c.ShouldBindJSON(&raw); err != nil {
		common.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}
	return raw, true
}

// RegisterRoutes registers call notification routes to the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/notifications", h.Notify)
	rg.POST("/preview", h.Preview)
	rg.GET("/directions", h.Directions)
}
