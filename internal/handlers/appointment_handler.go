package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/barberdesk/barberdesk-api/internal/domain/appointment"
	"github.com/barberdesk/barberdesk-api/internal/httperr"
	ucAppointment "github.com/barberdesk/barberdesk-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book     *ucAppointment.BookAppointment
	update   *ucAppointment.UpdateAppointment
	confirm  *ucAppointment.ConfirmAppointment
	cancel   *ucAppointment.CancelAppointment
	finalize *ucAppointment.FinalizeAppointment
	noShow   *ucAppointment.MarkNoShow
	queries  *ucAppointment.Queries

	repo domain.Repository
	tz   string
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	update *ucAppointment.UpdateAppointment,
	confirm *ucAppointment.ConfirmAppointment,
	cancel *ucAppointment.CancelAppointment,
	finalize *ucAppointment.FinalizeAppointment,
	noShow *ucAppointment.MarkNoShow,
	queries *ucAppointment.Queries,
	repo domain.Repository,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:     book,
		update:   update,
		confirm:  confirm,
		cancel:   cancel,
		finalize: finalize,
		noShow:   noShow,
		queries:  queries,
		repo:     repo,
		tz:       tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ClientID       uint   `json:"client_id"`
	ProfessionalID uint   `json:"professional_id"`
	ServiceIDs     []uint `json:"service_ids"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Notes          string `json:"notes"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type FinalizeAppointmentRequest struct {
	Notes string `json:"notes"`
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceIDs:     req.ServiceIDs,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(201, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ID: id,
		BookAppointmentInput: ucAppointment.BookAppointmentInput{
			ClientID:       req.ClientID,
			ProfessionalID: req.ProfessionalID,
			ServiceIDs:     req.ServiceIDs,
			Date:           req.Date,
			Time:           req.Time,
			Notes:          req.Notes,
		},
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(200, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req CancelAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.cancel.Execute(c.Request.Context(), id, req.Reason)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(200, ap)
}

func (h *AppointmentHandler) Finalize(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req FinalizeAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.finalize.Execute(c.Request.Context(), id, req.Notes)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(200, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(200, ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(200, ap)
}

// List filters by at most one of: date, start+end, client_id,
// professional_id, status. Without filters it returns everything.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	switch {
	case c.Query("date") != "":
		date, err := parseDate(h.tz, c.Query("date"))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		aps, err := h.queries.ListByDate(ctx, date)
		if err != nil {
			writeAppointmentError(c, err)
			return
		}
		c.JSON(200, aps)

	case c.Query("start") != "" || c.Query("end") != "":
		start, err1 := parseDate(h.tz, c.Query("start"))
		end, err2 := parseDate(h.tz, c.Query("end"))
		if err1 != nil || err2 != nil {
			httperr.BadRequest(c, "invalid_period", "Período inválido.")
			return
		}
		aps, err := h.queries.ListByPeriod(ctx, start, end)
		if err != nil {
			writeAppointmentError(c, err)
			return
		}
		c.JSON(200, aps)

	case c.Query("client_id") != "":
		id, err := strconv.ParseUint(c.Query("client_id"), 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_client_id", "Cliente inválido.")
			return
		}
		aps, err := h.queries.ListByClient(ctx, uint(id))
		if err != nil {
			writeAppointmentError(c, err)
			return
		}
		c.JSON(200, aps)

	case c.Query("professional_id") != "":
		id, err := strconv.ParseUint(c.Query("professional_id"), 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_professional_id", "Profissional inválido.")
			return
		}
		aps, err := h.queries.ListByProfessional(ctx, uint(id))
		if err != nil {
			writeAppointmentError(c, err)
			return
		}
		c.JSON(200, aps)

	case c.Query("status") != "":
		aps, err := h.queries.ListByStatus(ctx, c.Query("status"))
		if err != nil {
			writeAppointmentError(c, err)
			return
		}
		c.JSON(200, aps)

	default:
		aps, err := h.queries.ListAll(ctx)
		if err != nil {
			writeAppointmentError(c, err)
			return
		}
		c.JSON(200, aps)
	}
}

func (h *AppointmentHandler) ListToday(c *gin.Context) {
	aps, err := h.queries.ListToday(c.Request.Context())
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	c.JSON(200, aps)
}

// ======================================================
// DELETE (correção administrativa)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteAppointment(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}
	c.Status(204)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

func writeAppointmentError(c *gin.Context, err error) {
	var conflict domain.ConflictError
	if errors.As(err, &conflict) {
		httperr.Conflict(c, "scheduling_conflict", conflict.Error())
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		switch code {
		case "appointment_not_found":
			httperr.NotFound(c, code, "Agendamento não encontrado.")
		default:
			httperr.BadRequest(c, code, "Dados inválidos para agendamento.")
		}
		return
	}

	httperr.Internal(c, "persistence_failure", "Erro ao acessar o banco de dados.")
}
