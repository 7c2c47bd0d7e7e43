package booking

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"termine/internal/pkg/response"
	pkgvalidator "termine/internal/pkg/validator"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// The widget is served from a different origin in development; CORS
	// middleware guards the REST routes, the hub carries no secrets.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	drafts := rg.Group("/drafts")
	{
		drafts.POST("", h.CreateDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.PATCH("/:id", h.SetField)
		drafts.POST("/:id/submit", h.SubmitDraft)
		drafts.POST("/:id/dismiss", h.DismissDraft)
		drafts.DELETE("/:id", h.TeardownDraft)
		drafts.GET("/:id/ws", h.HandleWebSocket)
	}
}

// CreateDraft handles POST /api/v1/drafts
func (h *Handler) CreateDraft(c *gin.Context) {
	snap := h.service.CreateDraft()
	response.Success(c, http.StatusCreated, snap)
}

// GetDraft handles GET /api/v1/drafts/:id
func (h *Handler) GetDraft(c *gin.Context) {
	snap, err := h.service.GetDraft(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// SetField handles PATCH /api/v1/drafts/:id
func (h *Handler) SetField(c *gin.Context) {
	var req SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if details := pkgvalidator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_FIELD", "Field must name a draft field", details)
		return
	}

	snap, err := h.service.SetField(c.Param("id"), req.Field, req.Value)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// SubmitDraft handles POST /api/v1/drafts/:id/submit
func (h *Handler) SubmitDraft(c *gin.Context) {
	snap, fieldErrs, err := h.service.SubmitDraft(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
				"VALIDATION_ERROR", "Draft failed validation", fieldErrs)
			return
		}
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, snap)
}

// DismissDraft handles POST /api/v1/drafts/:id/dismiss
func (h *Handler) DismissDraft(c *gin.Context) {
	snap, err := h.service.DismissDraft(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// TeardownDraft handles DELETE /api/v1/drafts/:id
func (h *Handler) TeardownDraft(c *gin.Context) {
	if err := h.service.TeardownDraft(c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// HandleWebSocket handles GET /api/v1/drafts/:id/ws and streams lifecycle
// transition events for one draft.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	draftID := c.Param("id")
	if _, err := h.service.GetDraft(draftID); err != nil {
		handleError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed draft_id=%s error=%v", draftID, err)
		return
	}

	h.hub.Register(draftID, conn)

	// The client never sends anything meaningful; the read loop only
	// detects the connection closing.
	go func() {
		defer h.hub.Unregister(draftID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDraftNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Draft not found")
	case errors.Is(err, ErrUnknownField):
		response.Error(c, http.StatusBadRequest, "INVALID_FIELD", "Unknown draft field")
	case errors.Is(err, ErrSubmissionInFlight):
		response.Error(c, http.StatusConflict, "SUBMISSION_IN_FLIGHT", "A submission is already in flight")
	case errors.Is(err, ErrAlreadyConfirmed):
		response.Error(c, http.StatusConflict, "ALREADY_CONFIRMED", "Booking already confirmed, dismiss it first")
	case errors.Is(err, ErrNotConfirmed):
		response.Error(c, http.StatusConflict, "NOT_CONFIRMED", "No confirmed booking to dismiss")
	default:
		log.Printf("internal error: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}
