package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domainAppointment "github.com/barberdesk/barberdesk-api/internal/domain/appointment"
	domainPayment "github.com/barberdesk/barberdesk-api/internal/domain/payment"
	"github.com/barberdesk/barberdesk-api/internal/httperr"
	"github.com/barberdesk/barberdesk-api/internal/httpresp"
	"github.com/barberdesk/barberdesk-api/internal/models"
	"github.com/barberdesk/barberdesk-api/internal/timezone"
)

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

// --------- Requests ---------

type CreatePaymentRequest struct {
	AppointmentID uint    `json:"appointment_id" binding:"required"`
	Value         float64 `json:"value"`
	Method        string  `json:"method"`
}

type UpdatePaymentRequest struct {
	Method string  `json:"method"`
	Status string  `json:"status"`
	Value  float64 `json:"value"`
}

// ======================================================
// CREATE
// ======================================================

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var ap models.Appointment
	if err := h.db.Preload("Services").First(&ap, req.AppointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Payment{}).
		Where("appointment_id = ?", ap.ID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Erro ao registrar pagamento.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "payment_already_exists", "Agendamento já possui pagamento.")
		return
	}

	value := req.Value
	if value <= 0 {
		value = domainAppointment.TotalValue(&ap)
	}

	pay := models.Payment{
		Reference:     uuid.NewString(),
		AppointmentID: ap.ID,
		Value:         value,
		Method:        string(domainPayment.ParseMethod(req.Method)),
		Status:        string(domainPayment.InitialStatus()),
	}

	if err := h.db.Create(&pay).Error; err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Erro ao registrar pagamento.")
		return
	}

	httpresp.Created(c, pay)
}

// ======================================================
// UPDATE / MARK PAID
// ======================================================

func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var pay models.Payment
	if err := h.db.First(&pay, id).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Pagamento não encontrado.")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Method != "" {
		pay.Method = string(domainPayment.ParseMethod(req.Method))
	}
	if req.Status != "" {
		pay.Status = string(domainPayment.ParseStatus(req.Status))
	}
	if req.Value > 0 {
		pay.Value = req.Value
	}

	if err := h.db.Save(&pay).Error; err != nil {
		httperr.Internal(c, "failed_to_update_payment", "Erro ao atualizar pagamento.")
		return
	}

	c.JSON(http.StatusOK, pay)
}

func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var pay models.Payment
	if err := h.db.First(&pay, id).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Pagamento não encontrado.")
		return
	}

	if domainPayment.ParseStatus(pay.Status) != domainPayment.StatusPending {
		httperr.BadRequest(c, "invalid_state", "Pagamento não está pendente.")
		return
	}

	now := timezone.Now()
	pay.Status = string(domainPayment.StatusPaid)
	pay.PaidAt = &now

	if err := h.db.Save(&pay).Error; err != nil {
		httperr.Internal(c, "failed_to_update_payment", "Erro ao atualizar pagamento.")
		return
	}

	c.JSON(http.StatusOK, pay)
}

// ======================================================
// LIST
// ======================================================

func (h *PaymentHandler) List(c *gin.Context) {
	q := h.db.Preload("Appointment")

	if c.Query("status") != "" {
		q = q.Where("status = ?", string(domainPayment.ParseStatus(c.Query("status"))))
	}

	var payments []models.Payment
	if err := q.Order("created_at DESC").Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Erro ao listar pagamentos.")
		return
	}

	httpresp.List(c, payments)
}

func (h *PaymentHandler) ListPending(c *gin.Context) {
	var payments []models.Payment
	if err := h.db.
		Preload("Appointment").
		Where("status = ?", string(domainPayment.StatusPending)).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Erro ao listar pagamentos.")
		return
	}

	httpresp.List(c, payments)
}
