package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberdesk/barberdesk-api/internal/httperr"
	"github.com/barberdesk/barberdesk-api/internal/models"
	"github.com/barberdesk/barberdesk-api/internal/usecase/report"
)

type ReportHandler struct {
	reports *report.Reports
	db      *gorm.DB
	tz      string
}

func NewReportHandler(reports *report.Reports, db *gorm.DB, tz string) *ReportHandler {
	return &ReportHandler{reports: reports, db: db, tz: tz}
}

// Revenue answers GET /reports/revenue?start=...&end=... — realized
// appointments only, dates inclusive.
func (h *ReportHandler) Revenue(c *gin.Context) {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_period", "Período obrigatório.")
		return
	}

	start, err1 := parseDate(h.tz, startStr)
	end, err2 := parseDate(h.tz, endStr)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_period", "Período inválido.")
		return
	}

	revenue, err := h.reports.Revenue(c.Request.Context(), start, end)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Período inválido.")
			return
		}
		httperr.Internal(c, "failed_to_compute_revenue", "Erro ao calcular faturamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"start":   startStr,
		"end":     endStr,
		"revenue": revenue,
	})
}

// Dashboard aggregates the remaining figures in one call.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	pending, err := h.reports.PendingCount(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_reports", "Erro ao montar relatório.")
		return
	}

	cancellationRate, err := h.reports.CancellationRate(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_reports", "Erro ao montar relatório.")
		return
	}

	avgPrice, err := h.reports.AverageServicePrice(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_reports", "Erro ao montar relatório.")
		return
	}

	cheapest, err := h.reports.CheapestService(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_reports", "Erro ao montar relatório.")
		return
	}

	priciest, err := h.reports.MostExpensiveService(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_reports", "Erro ao montar relatório.")
		return
	}

	var totalClients int64
	if err := h.db.Model(&models.Client{}).Count(&totalClients).Error; err != nil {
		httperr.Internal(c, "failed_to_compute_reports", "Erro ao montar relatório.")
		return
	}

	var activeProfessionals int64
	if err := h.db.Model(&models.Professional{}).
		Where("active = ?", true).
		Count(&activeProfessionals).Error; err != nil {
		httperr.Internal(c, "failed_to_compute_reports", "Erro ao montar relatório.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pending_appointments":   pending,
		"cancellation_rate":      cancellationRate,
		"average_service_price":  avgPrice,
		"cheapest_service":       cheapest,
		"most_expensive_service": priciest,
		"total_clients":          totalClients,
		"active_professionals":   activeProfessionals,
	})
}
