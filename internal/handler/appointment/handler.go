package appointment

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/doacao-api/internal/model"
	appointmentsvc "github.com/jwalitptl/doacao-api/internal/service/appointment"
	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
	"github.com/jwalitptl/doacao-api/pkg/event"
	"github.com/jwalitptl/doacao-api/pkg/httputil"
	"github.com/jwalitptl/doacao-api/pkg/validator"
)

const resource = "agendamentos"

type Service interface {
	ListAppointments(ctx context.Context) ([]*model.AppointmentDetail, error)
	CreateAppointment(ctx context.Context, apt *model.Appointment) (int64, error)
	UpdateAppointment(ctx context.Context, id int64, status *model.AppointmentStatus, notes *string) error
	DeleteAppointment(ctx context.Context, id int64) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, tracker *event.EventTrackerMiddleware) {
	appointments := r.Group("/" + resource)
	{
		appointments.GET("", h.ListAppointments)
		appointments.POST("", tracker.TrackEvent(resource, event.ActionCreated), h.CreateAppointment)
		appointments.PUT("/:id", tracker.TrackEvent(resource, event.ActionUpdated), h.UpdateAppointment)
		appointments.DELETE("/:id", tracker.TrackEvent(resource, event.ActionDeleted), h.DeleteAppointment)
	}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, appointments)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(validator.Message(err), err))
		return
	}

	apt, err := req.ToAppointment()
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation(validator.Message(err), err))
		return
	}

	id, err := h.service.CreateAppointment(c.Request.Context(), apt)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	event.Record(c, id, apt)
	httputil.RespondWithSuccess(c, http.StatusCreated, model.CreateAppointmentResponse{
		Message: appointmentsvc.MsgCreated,
		ID:      id,
	})
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := httputil.ParamID(c, "id")
	if !ok {
		httputil.RespondWithErrorMessage(c, http.StatusNotFound, appointmentsvc.MsgNotFound)
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(validator.Message(err), err))
		return
	}

	if err := h.service.UpdateAppointment(c.Request.Context(), id, req.Status, req.Observacoes); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	event.Record(c, id, req)
	httputil.RespondWithMessage(c, appointmentsvc.MsgUpdated)
}

// DeleteAppointment removes the row; the UI calls this "cancelar".
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := httputil.ParamID(c, "id")
	if !ok {
		httputil.RespondWithErrorMessage(c, http.StatusNotFound, appointmentsvc.MsgNotFound)
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	event.Record(c, id, nil)
	httputil.RespondWithMessage(c, appointmentsvc.MsgCancelled)
}
