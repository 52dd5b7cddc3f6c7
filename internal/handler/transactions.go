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

type TransactionsHandler struct{ svc service.TransactionService }

func NewTransactionsHandler(svc service.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{svc: svc}
}

// Create godoc
// @Summary Registra un movimiento de efectivo en una sesion abierta
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateTransactionRequest true "Datos del movimiento"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/transactions [post]
func (h *TransactionsHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
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

func (h *TransactionsHandler) GetByID(c *gin.Context) {
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

func (h *TransactionsHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	userID, sessionID, ok := ledgerFilters(c)
	if !ok {
		return
	}
	txs, err := h.svc.List(c.Request.Context(), skip, limit, userID, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: txs,
		Total:        len(txs),
		Page:         skip/limit + 1,
		Limit:        limit,
	})
}

// ListBySession serves the /session/:id convenience route.
func (h *TransactionsHandler) ListBySession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	skip, limit := pagination(c)
	txs, err := h.svc.List(c.Request.Context(), skip, limit, nil, &sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: txs,
		Total:        len(txs),
		Page:         skip/limit + 1,
		Limit:        limit,
	})
}

func (h *TransactionsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.UpdateTransactionRequest
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

func (h *TransactionsHandler) Delete(c *gin.Context) {
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

// ledgerFilters parses the optional user_id / session_id query filters shared
// by the ledger list endpoints. Writes the error response itself on bad input.
func ledgerFilters(c *gin.Context) (userID, sessionID *uuid.UUID, ok bool) {
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("user_id invalido"))
			return nil, nil, false
		}
		userID = &id
	}
	if raw := c.Query("session_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("session_id invalido"))
			return nil, nil, false
		}
		sessionID = &id
	}
	return userID, sessionID, true
}
