package donor

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/doacao-api/internal/model"
	donorsvc "github.com/jwalitptl/doacao-api/internal/service/donor"
	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
	"github.com/jwalitptl/doacao-api/pkg/event"
	"github.com/jwalitptl/doacao-api/pkg/httputil"
	"github.com/jwalitptl/doacao-api/pkg/validator"
)

const resource = "doadores"

type Service interface {
	ListDonors(ctx context.Context) ([]*model.Donor, error)
	GetDonor(ctx context.Context, id int64) (*model.Donor, error)
	CreateDonor(ctx context.Context, donor *model.Donor) (int64, error)
	UpdateDonor(ctx context.Context, donor *model.Donor) error
	DeleteDonor(ctx context.Context, id int64) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, tracker *event.EventTrackerMiddleware) {
	donors := r.Group("/" + resource)
	{
		donors.GET("", h.ListDonors)
		donors.GET("/:id", h.GetDonor)
		donors.POST("", tracker.TrackEvent(resource, event.ActionCreated), h.CreateDonor)
		donors.PUT("/:id", tracker.TrackEvent(resource, event.ActionUpdated), h.UpdateDonor)
		donors.DELETE("/:id", tracker.TrackEvent(resource, event.ActionDeleted), h.DeleteDonor)
	}
}

func (h *Handler) ListDonors(c *gin.Context) {
	donors, err := h.service.ListDonors(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, donors)
}

func (h *Handler) GetDonor(c *gin.Context) {
	id, ok := httputil.ParamID(c, "id")
	if !ok {
		httputil.RespondWithErrorMessage(c, http.StatusNotFound, donorsvc.MsgNotFound)
		return
	}

	donor, err := h.service.GetDonor(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, donor)
}

func (h *Handler) CreateDonor(c *gin.Context) {
	var req model.CreateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(validator.Message(err), err))
		return
	}

	donor, err := req.ToDonor()
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation(validator.Message(err), err))
		return
	}

	id, err := h.service.CreateDonor(c.Request.Context(), donor)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	event.Record(c, id, donor)
	httputil.RespondWithSuccess(c, http.StatusCreated, model.CreateDonorResponse{
		Message: donorsvc.MsgCreated,
		ID:      id,
	})
}

func (h *Handler) UpdateDonor(c *gin.Context) {
	id, ok := httputil.ParamID(c, "id")
	if !ok {
		httputil.RespondWithErrorMessage(c, http.StatusNotFound, donorsvc.MsgNotFound)
		return
	}

	var req model.UpdateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(validator.Message(err), err))
		return
	}

	donor, err := req.ToDonor(id)
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation(validator.Message(err), err))
		return
	}

	if err := h.service.UpdateDonor(c.Request.Context(), donor); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	event.Record(c, id, donor)
	httputil.RespondWithMessage(c, donorsvc.MsgUpdated)
}

func (h *Handler) DeleteDonor(c *gin.Context) {
	id, ok := httputil.ParamID(c, "id")
	if !ok {
		httputil.RespondWithErrorMessage(c, http.StatusNotFound, donorsvc.MsgNotFound)
		return
	}

	if err := h.service.DeleteDonor(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	event.Record(c, id, nil)
	httputil.RespondWithMessage(c, donorsvc.MsgDeleted)
}
