package calendar

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/tandem-app/tandem/internal/api/v1"
	httperr "github.com/tandem-app/tandem/internal/core/errors"
	"github.com/tandem-app/tandem/internal/core/storage"
)

// UserIDHeader names the member of the couple performing a write. It is
// trusted as-is; authentication happens upstream.
const UserIDHeader = "X-User-ID"

const defaultMaxBodyBytes = 1 << 20

type coupleURI struct {
	CoupleID string `uri:"couple_id" binding:"required"`
}

type eventURI struct {
	CoupleID string `uri:"couple_id" binding:"required"`
	EventID  string `uri:"event_id" binding:"required"`
}

// Handler exposes the calendar service over HTTP.
type Handler struct {
	svc          *Service
	maxBodyBytes int64
}

// NewHandler creates a handler. maxBodySizeMB <= 0 means 1 MB.
func NewHandler(svc *Service, maxBodySizeMB int) *Handler {
	maxBytes := int64(defaultMaxBodyBytes)
	if maxBodySizeMB > 0 {
		maxBytes = int64(maxBodySizeMB) * 1024 * 1024
	}
	return &Handler{svc: svc, maxBodyBytes: maxBytes}
}

// RegisterRoutes registers all calendar API routes on the given router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	couples := r.Group("/v1/couples/:couple_id")
	couples.GET("/occurrences", h.HandleListOccurrences)
	couples.POST("/events", h.HandleCreateEvent)
	couples.GET("/events/:event_id", h.HandleGetEvent)
	couples.PUT("/events/:event_id", h.HandleUpdateEvent)
	couples.DELETE("/events/:event_id", h.HandleDeleteEvent)
	couples.POST("/events/:event_id/exceptions", h.HandleAddException)
	couples.GET("/forecast", h.HandleForecast)
	couples.GET("/calendar.ics", h.HandleExportICS)

	r.GET("/v1/recurrence/default", h.HandleDefaultRule)
	r.POST("/v1/recurrence/describe", h.HandleDescribeRule)
	r.POST("/v1/recurrence/validate", h.HandleValidateRule)
}

// HandleListOccurrences handles GET /v1/couples/:couple_id/occurrences
// Query parameters: view, date, start, end
func (h *Handler) HandleListOccurrences(c *gin.Context) {
	var uri coupleURI
	var query struct {
		View  string `form:"view"`
		Date  string `form:"date"`
		Start string `form:"start"`
		End   string `form:"end"`
	}
	if !bindURI(c, &uri) {
		return
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	resp, err := h.svc.ListOccurrences(c.Request.Context(), OccurrenceQuery{
		CoupleID: uri.CoupleID,
		View:     View(query.View),
		Date:     query.Date,
		Start:    query.Start,
		End:      query.End,
	})
	if err != nil {
		writeError(c, err, "Failed to list occurrences")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleCreateEvent handles POST /v1/couples/:couple_id/events
func (h *Handler) HandleCreateEvent(c *gin.Context) {
	var uri coupleURI
	if !bindURI(c, &uri) {
		return
	}
	var evt v1.Event
	if !h.bindBody(c, &evt) {
		return
	}

	created, err := h.svc.CreateEvent(c.Request.Context(), uri.CoupleID, c.GetHeader(UserIDHeader), &evt)
	if err != nil {
		writeError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// HandleGetEvent handles GET /v1/couples/:couple_id/events/:event_id
func (h *Handler) HandleGetEvent(c *gin.Context) {
	var uri eventURI
	if !bindURI(c, &uri) {
		return
	}

	evt, err := h.svc.GetEvent(c.Request.Context(), uri.CoupleID, uri.EventID)
	if err != nil {
		writeError(c, err, "Failed to get event")
		return
	}
	c.JSON(http.StatusOK, evt)
}

// HandleUpdateEvent handles PUT /v1/couples/:couple_id/events/:event_id
func (h *Handler) HandleUpdateEvent(c *gin.Context) {
	var uri eventURI
	if !bindURI(c, &uri) {
		return
	}
	var evt v1.Event
	if !h.bindBody(c, &evt) {
		return
	}

	updated, err := h.svc.UpdateEvent(c.Request.Context(), uri.CoupleID, uri.EventID, &evt)
	if err != nil {
		writeError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// HandleDeleteEvent handles DELETE /v1/couples/:couple_id/events/:event_id
func (h *Handler) HandleDeleteEvent(c *gin.Context) {
	var uri eventURI
	if !bindURI(c, &uri) {
		return
	}

	if err := h.svc.DeleteEvent(c.Request.Context(), uri.CoupleID, uri.EventID); err != nil {
		writeError(c, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleAddException handles POST /v1/couples/:couple_id/events/:event_id/exceptions
// Body: {"date": "YYYY-MM-DD"}
func (h *Handler) HandleAddException(c *gin.Context) {
	var uri eventURI
	if !bindURI(c, &uri) {
		return
	}
	var req ExceptionRequest
	if !h.bindBody(c, &req) {
		return
	}

	evt, err := h.svc.AddException(c.Request.Context(), uri.CoupleID, uri.EventID, req.Date)
	if err != nil {
		writeError(c, err, "Failed to add exception")
		return
	}
	c.JSON(http.StatusOK, evt)
}

// HandleForecast handles GET /v1/couples/:couple_id/forecast
// Query parameters: start, end
func (h *Handler) HandleForecast(c *gin.Context) {
	var uri coupleURI
	var query struct {
		Start string `form:"start" binding:"required"`
		End   string `form:"end" binding:"required"`
	}
	if !bindURI(c, &uri) {
		return
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	resp, err := h.svc.Forecast(c.Request.Context(), ForecastQuery{
		CoupleID: uri.CoupleID,
		Start:    query.Start,
		End:      query.End,
	})
	if err != nil {
		writeError(c, err, "Failed to compute forecast")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleExportICS handles GET /v1/couples/:couple_id/calendar.ics
func (h *Handler) HandleExportICS(c *gin.Context) {
	var uri coupleURI
	if !bindURI(c, &uri) {
		return
	}

	body, err := h.svc.ExportICS(c.Request.Context(), uri.CoupleID)
	if err != nil {
		writeError(c, err, "Failed to export calendar")
		return
	}
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", body)
}

// HandleDefaultRule handles GET /v1/recurrence/default?type=
func (h *Handler) HandleDefaultRule(c *gin.Context) {
	resp, err := h.svc.DefaultRule(c.Query("type"))
	if err != nil {
		writeError(c, err, "Failed to build default rule")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleDescribeRule handles POST /v1/recurrence/describe
func (h *Handler) HandleDescribeRule(c *gin.Context) {
	var req RuleRequest
	if !h.bindBody(c, &req) {
		return
	}

	resp, err := h.svc.DescribeRule(req)
	if err != nil {
		writeError(c, err, "Failed to describe rule")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleValidateRule handles POST /v1/recurrence/validate. An invalid rule
// is a successful response with valid=false.
func (h *Handler) HandleValidateRule(c *gin.Context) {
	var req RuleRequest
	if !h.bindBody(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.ValidateRule(req))
}

func bindURI(c *gin.Context, uri interface{}) bool {
	if err := c.ShouldBindUri(uri); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid path parameters",
			Details:   err.Error(),
		})
		return false
	}
	return true
}

// bindBody decodes a JSON body no larger than the configured limit.
func (h *Handler) bindBody(c *gin.Context, dst interface{}) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			slog.Warn("[Calendar] Request body exceeds maximum size", "max", h.maxBodyBytes)
			c.JSON(http.StatusRequestEntityTooLarge, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidJsonError,
				Message:   "Request body exceeds maximum allowed size",
				Details: map[string]interface{}{
					"max_size_bytes": h.maxBodyBytes,
				},
			})
			return false
		}
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid JSON body",
			Details:   err.Error(),
		})
		return false
	}
	return true
}

// writeError maps service errors to the JSON error body and status code.
func writeError(c *gin.Context, err error, message string) {
	if verr, ok := asValidationError(err); ok {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpRuleValidationError,
			Message:   "Invalid recurrence rule",
			Details:   verr.Errors,
		})
		return
	}

	switch {
	case errors.Is(err, ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   message,
			Details:   err.Error(),
		})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpEventNotFoundError,
			Message:   "Event not found",
		})
	case errors.Is(err, storage.ErrDuplicate):
		c.JSON(http.StatusConflict, httperr.ErrorResponse{
			ErrorType: httperr.HttpDuplicateEventError,
			Message:   "Event already exists",
		})
	case errors.Is(err, ErrReadOnly):
		c.JSON(http.StatusForbidden, httperr.ErrorResponse{
			ErrorType: httperr.HttpReadOnlyEventError,
			Message:   err.Error(),
		})
	case errors.Is(err, ErrNotRecurring):
		c.JSON(http.StatusConflict, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotRecurringEventError,
			Message:   err.Error(),
		})
	default:
		slog.Error("[Calendar] Request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
			Details:   err.Error(),
		})
	}
}
