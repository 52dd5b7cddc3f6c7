package handler

import (
	"net/http"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/middleware"
	"github.com/maesedev/dealership-project/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BonosHandler struct{ svc service.BonoService }

func NewBonosHandler(svc service.BonoService) *BonosHandler { return &BonosHandler{svc: svc} }

// Create godoc
// @Summary Otorga un bono a un usuario dentro de una sesion abierta
// @Tags bonos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateBonoRequest true "Datos del bono"
// @Success 201 {object} dto.BonoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/bonos [post]
func (h *BonosHandler) Create(c *gin.Context) {
	var req dto.CreateBonoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BonosHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BonosHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	userID, sessionID, ok := ledgerFilters(c)
	if !ok {
		return
	}
	bonos, err := h.svc.List(c.Request.Context(), skip, limit, userID, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BonoListResponse{
		Bonos: bonos,
		Total: len(bonos),
		Page:  skip/limit + 1,
		Limit: limit,
	})
}

func (h *BonosHandler) ListBySession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	skip, limit := pagination(c)
	bonos, err := h.svc.List(c.Request.Context(), skip, limit, nil, &sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BonoListResponse{
		Bonos: bonos,
		Total: len(bonos),
		Page:  skip/limit + 1,
		Limit: limit,
	})
}

func (h *BonosHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.UpdateBonoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req, middleware.ActorTier(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BonosHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, middleware.ActorTier(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
