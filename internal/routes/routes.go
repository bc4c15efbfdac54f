package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberdesk/barberdesk-api/internal/audit"
	"github.com/barberdesk/barberdesk-api/internal/config"
	"github.com/barberdesk/barberdesk-api/internal/handlers"
	infraRepo "github.com/barberdesk/barberdesk-api/internal/infra/repository"
	ucAppointment "github.com/barberdesk/barberdesk-api/internal/usecase/appointment"
	ucReport "github.com/barberdesk/barberdesk-api/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher)
	updateUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	confirmUC := ucAppointment.NewConfirmAppointment(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	finalizeUC := ucAppointment.NewFinalizeAppointment(appointmentRepo, auditDispatcher)
	noShowUC := ucAppointment.NewMarkNoShow(appointmentRepo, auditDispatcher)
	queriesUC := ucAppointment.NewQueries(appointmentRepo)

	reportsUC := ucReport.NewReports(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		updateUC,
		confirmUC,
		cancelUC,
		finalizeUC,
		noShowUC,
		queriesUC,
		appointmentRepo,
		cfg.Timezone,
	)

	clientHandler := handlers.NewClientHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db)
	reportHandler := handlers.NewReportHandler(reportsUC, db, cfg.Timezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients/:id", clientHandler.Get)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// PROFESSIONALS
		// ------------------------------
		api.GET("/professionals", professionalHandler.List)
		api.POST("/professionals", professionalHandler.Create)
		api.GET("/professionals/:id", professionalHandler.Get)
		api.PUT("/professionals/:id", professionalHandler.Update)
		api.DELETE("/professionals/:id", professionalHandler.Delete)
		api.PATCH("/professionals/:id/activate", professionalHandler.Activate)
		api.PATCH("/professionals/:id/deactivate", professionalHandler.Deactivate)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.GET("/services/:id", serviceHandler.Get)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/today", appointmentHandler.ListToday)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/finalize", appointmentHandler.Finalize)
		api.PATCH("/appointments/:id/no-show", appointmentHandler.NoShow)

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		api.GET("/payments", paymentHandler.List)
		api.GET("/payments/pending", paymentHandler.ListPending)
		api.POST("/payments", paymentHandler.Create)
		api.PUT("/payments/:id", paymentHandler.Update)
		api.PATCH("/payments/:id/pay", paymentHandler.MarkPaid)

		// ------------------------------
		// REPORTS
		// ------------------------------
		api.GET("/reports/revenue", reportHandler.Revenue)
		api.GET("/reports/dashboard", reportHandler.Dashboard)

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
