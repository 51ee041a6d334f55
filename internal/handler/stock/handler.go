package stock

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/doacao-api/internal/model"
	stocksvc "github.com/jwalitptl/doacao-api/internal/service/stock"
	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
	"github.com/jwalitptl/doacao-api/pkg/event"
	"github.com/jwalitptl/doacao-api/pkg/httputil"
	"github.com/jwalitptl/doacao-api/pkg/validator"
)

const resource = "estoque"

type Service interface {
	ListStock(ctx context.Context) ([]*model.StockEntry, error)
	SetQuantity(ctx context.Context, bloodType string, quantityML int) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, tracker *event.EventTrackerMiddleware) {
	stock := r.Group("/" + resource)
	{
		stock.GET("", h.ListStock)
		stock.PUT("/:tipo", tracker.TrackEvent(resource, event.ActionUpdated), h.SetQuantity)
	}
}

func (h *Handler) ListStock(c *gin.Context) {
	entries, err := h.service.ListStock(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, entries)
}

// SetQuantity replaces the volume of the blood type in the path, e.g.
// PUT /estoque/AB+ (the "+" may arrive percent-encoded).
func (h *Handler) SetQuantity(c *gin.Context) {
	bloodType := c.Param("tipo")

	var req model.SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := validator.Message(err)
		if msg == validator.MsgRequiredFields {
			msg = stocksvc.MsgMissingQuantity
		}
		httputil.RespondWithError(c, apperrors.Validation(msg, err))
		return
	}

	if err := h.service.SetQuantity(c.Request.Context(), bloodType, *req.QuantidadeML); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	event.Record(c, bloodType, req)
	httputil.RespondWithMessage(c, stocksvc.MsgUpdated)
}
