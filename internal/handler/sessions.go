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

type SessionsHandler struct{ svc service.SessionService }

func NewSessionsHandler(svc service.SessionService) *SessionsHandler {
	return &SessionsHandler{svc: svc}
}

// Open godoc
// @Summary Abre una sesion de trabajo para un dealer
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateSessionRequest true "Datos de apertura"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/sessions [post]
func (h *SessionsHandler) Open(c *gin.Context) {
	var req dto.CreateSessionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Open(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SessionsHandler) GetByID(c *gin.Context) {
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

// List godoc
// @Summary Lista sesiones con paginacion y filtro por dealer
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Tamano de pagina"
// @Param dealer_id query string false "Filtro por dealer"
// @Success 200 {object} dto.SessionListResponse
// @Router /v1/sessions [get]
func (h *SessionsHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var dealerID *uuid.UUID
	if raw := c.Query("dealer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("dealer_id invalido"))
			return
		}
		dealerID = &id
	}

	sessions, err := h.svc.List(c.Request.Context(), skip, limit, dealerID, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SessionListResponse{
		Sessions: sessions,
		Total:    len(sessions),
		Page:     skip/limit + 1,
		Limit:    limit,
	})
}

func (h *SessionsHandler) ListActive(c *gin.Context) {
	skip, limit := pagination(c)
	sessions, err := h.svc.List(c.Request.Context(), skip, limit, nil, true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SessionListResponse{
		Sessions: sessions,
		Total:    len(sessions),
		Page:     skip/limit + 1,
		Limit:    limit,
	})
}

func (h *SessionsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.UpdateSessionRequest
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

// End godoc
// @Summary Cierra una sesion declarando reik y jackpot
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de sesion"
// @Param body body dto.EndSessionRequest true "Declaracion de cierre"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/sessions/{id}/end [post]
func (h *SessionsHandler) End(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.EndSessionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.End(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SessionsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionsHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
