package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/pkg/httputil"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Service interface {
	DonorsByBloodType(ctx context.Context) ([]*model.BloodTypeCount, error)
	AppointmentsByStatus(ctx context.Context) ([]*model.StatusCount, error)
	Workbook(ctx context.Context) (*excelize.File, error)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/relatorios")
	{
		reports.GET("/doadores-por-tipo", h.DonorsByBloodType)
		reports.GET("/agendamentos-por-status", h.AppointmentsByStatus)
		reports.GET("/exportar", h.Export)
	}
}

func (h *Handler) DonorsByBloodType(c *gin.Context) {
	counts, err := h.service.DonorsByBloodType(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, counts)
}

func (h *Handler) AppointmentsByStatus(c *gin.Context) {
	counts, err := h.service.AppointmentsByStatus(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, http.StatusOK, counts)
}

// Export streams the stock grid and both aggregates as an xlsx workbook.
func (h *Handler) Export(c *gin.Context) {
	f, err := h.service.Workbook(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close workbook")
		}
	}()

	buf, err := f.WriteToBuffer()
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("relatorio-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
