package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberdesk/barberdesk-api/internal/httperr"
	"github.com/barberdesk/barberdesk-api/internal/httpresp"
	"github.com/barberdesk/barberdesk-api/internal/models"
)

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// --------- Requests ---------

type ProfessionalRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pro := models.Professional{
		Name:      strings.TrimSpace(req.Name),
		Specialty: strings.TrimSpace(req.Specialty),
		Phone:     req.Phone,
		Active:    true,
	}

	if err := h.db.Create(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao cadastrar profissional.")
		return
	}

	httpresp.Created(c, pro)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var pro models.Professional
	if err := h.db.First(&pro, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req ProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	pro.Name = strings.TrimSpace(req.Name)
	pro.Specialty = strings.TrimSpace(req.Specialty)
	pro.Phone = req.Phone

	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	c.JSON(http.StatusOK, pro)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.Professional{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_professional", "Erro ao excluir profissional.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfessionalHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var pro models.Professional
	if err := h.db.First(&pro, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}
	c.JSON(http.StatusOK, pro)
}

// ======================================================
// ACTIVE FLAG
// ======================================================

// historical appointments keep pointing at deactivated professionals;
// only the new-booking candidate list shrinks
func (h *ProfessionalHandler) setActive(c *gin.Context, active bool) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var pro models.Professional
	if err := h.db.First(&pro, id).Error; err != nil {
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	pro.Active = active
	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	c.JSON(http.StatusOK, pro)
}

func (h *ProfessionalHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

func (h *ProfessionalHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ProfessionalHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	specialty := strings.ToLower(strings.TrimSpace(c.Query("specialty")))

	q := h.db.Model(&models.Professional{})

	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	if specialty != "" {
		q = q.Where("LOWER(specialty) LIKE ?", "%"+specialty+"%")
	}

	var pros []models.Professional
	if err := q.Order("name ASC").Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, pros)
}
