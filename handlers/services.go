package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/666-PLAYER-666/hotel-banya/database/repository"
	"github.com/666-PLAYER-666/hotel-banya/utils"
)

// ServiceHandler serves the service catalog and its admin edits.
type ServiceHandler struct {
	Store repository.Store
}

func NewServiceHandler(store repository.Store) *ServiceHandler {
	return &ServiceHandler{Store: store}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.Store.Services(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Update edits catalog metadata per-field; unspecified fields keep their
// current value.
func (h *ServiceHandler) Update(c *gin.Context) {
	name := c.Param("serviceName")

	ctx := c.Request.Context()
	svc, err := h.Store.GetService(ctx, name)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrServiceNotFound)
		return
	}

	var req struct {
		Price  string `json:"price"`
		NameRu string `json:"nameRu"`
		NameEn string `json:"nameEn"`
		DescRu string `json:"descRu"`
		DescEn string `json:"descEn"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.ErrMissingFields)
		return
	}

	if req.Price != "" {
		svc.Price = utils.Sanitize(req.Price)
	}
	if req.NameRu != "" {
		svc.Name.Ru = utils.Sanitize(req.NameRu)
	}
	if req.NameEn != "" {
		svc.Name.En = utils.Sanitize(req.NameEn)
	}
	if req.DescRu != "" {
		svc.Description.Ru = utils.Sanitize(req.DescRu)
	}
	if req.DescEn != "" {
		svc.Description.En = utils.Sanitize(req.DescEn)
	}

	if err := h.Store.SetService(ctx, name, svc); err != nil {
		utils.JSONError(c, http.StatusNotFound, utils.ErrServiceNotFound)
		return
	}
	c.JSON(http.StatusOK, svc)
}
