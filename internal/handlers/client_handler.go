package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberdesk/barberdesk-api/internal/httperr"
	"github.com/barberdesk/barberdesk-api/internal/httpresp"
	"github.com/barberdesk/barberdesk-api/internal/models"
	"github.com/barberdesk/barberdesk-api/internal/timezone"
	"github.com/barberdesk/barberdesk-api/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

func (r *ClientRequest) validate(c *gin.Context) bool {
	if !validators.IsPhoneValid(r.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido (mínimo 10 dígitos).")
		return false
	}
	if r.Email != "" && !validators.IsEmailValid(r.Email) {
		httperr.BadRequest(c, "invalid_email", "Email inválido.")
		return false
	}
	return true
}

// ======================================================
// CRUD
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !req.validate(c) {
		return
	}

	client := models.Client{
		Name:         strings.TrimSpace(req.Name),
		Phone:        req.Phone,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		RegisteredAt: timezone.Now(),
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao cadastrar cliente.")
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if !req.validate(c) {
		return
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Phone = req.Phone
	client.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.Client{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}
	c.JSON(http.StatusOK, client)
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	phone := c.Query("phone")
	from := c.Query("registered_from")
	to := c.Query("registered_to")

	q := h.db.Model(&models.Client{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	if phone != "" {
		q = q.Where("phone LIKE ?", "%"+phone+"%")
	}

	if from != "" && to != "" {
		start, err1 := parseDate("", from)
		end, err2 := parseDate("", to)
		if err1 != nil || err2 != nil || start.After(end) {
			httperr.BadRequest(c, "invalid_period", "Período inválido.")
			return
		}
		q = q.Where(
			"registered_at >= ? AND registered_at < ?",
			start, end.Add(24*time.Hour),
		)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}
