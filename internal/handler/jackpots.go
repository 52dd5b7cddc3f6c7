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

type JackpotsHandler struct{ svc service.JackpotPrizeService }

func NewJackpotsHandler(svc service.JackpotPrizeService) *JackpotsHandler {
	return &JackpotsHandler{svc: svc}
}

// Create godoc
// @Summary Registra un premio de jackpot en una sesion abierta
// @Tags jackpots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateJackpotPrizeRequest true "Datos del premio"
// @Success 201 {object} dto.JackpotPrizeResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/jackpots [post]
func (h *JackpotsHandler) Create(c *gin.Context) {
	var req dto.CreateJackpotPrizeRequest
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

func (h *JackpotsHandler) GetByID(c *gin.Context) {
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

func (h *JackpotsHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	userID, sessionID, ok := ledgerFilters(c)
	if !ok {
		return
	}
	prizes, err := h.svc.List(c.Request.Context(), skip, limit, userID, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.JackpotPrizeListResponse{
		Jackpots: prizes,
		Total:    len(prizes),
		Page:     skip/limit + 1,
		Limit:    limit,
	})
}

func (h *JackpotsHandler) ListBySession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	skip, limit := pagination(c)
	prizes, err := h.svc.List(c.Request.Context(), skip, limit, nil, &sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.JackpotPrizeListResponse{
		Jackpots: prizes,
		Total:    len(prizes),
		Page:     skip/limit + 1,
		Limit:    limit,
	})
}

func (h *JackpotsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.UpdateJackpotPrizeRequest
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

func (h *JackpotsHandler) Delete(c *gin.Context) {
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
