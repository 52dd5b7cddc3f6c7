package handler

import (
	"net/http"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/middleware"
	"github.com/maesedev/dealership-project/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Autentica un usuario privilegiado y emite un token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Renueva el token de acceso vigente
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Devuelve las claims del token actual
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Claims
// @Router /v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticación requerida"))
		return
	}
	c.JSON(http.StatusOK, claims)
}
