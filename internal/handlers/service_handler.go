package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberdesk/barberdesk-api/internal/httperr"
	"github.com/barberdesk/barberdesk-api/internal/httpresp"
	"github.com/barberdesk/barberdesk-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	DurationMin int     `json:"duration_min" binding:"required,min=1,max=240"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao cadastrar serviço.")
		return
	}

	httpresp.Created(c, service)
}

// Update edits in place. Services referenced by past appointments are
// never deleted through the booking flow, only corrected here.
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service.Name = strings.TrimSpace(req.Name)
	service.Description = req.Description
	service.Price = req.Price
	service.DurationMin = req.DurationMin

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.Service{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao excluir serviço.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}
	c.JSON(http.StatusOK, service)
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	maxPriceStr := c.Query("max_price")

	q := h.db.Model(&models.Service{})

	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	if maxPriceStr != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil || maxPrice <= 0 {
			httperr.BadRequest(c, "invalid_max_price", "Preço máximo inválido.")
			return
		}
		q = q.Where("price <= ?", maxPrice)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}
