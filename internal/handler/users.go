package handler

import (
	"net/http"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/middleware"
	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler { return &UsersHandler{svc: svc} }

// Create godoc
// @Summary Crea un usuario (jugador ad hoc o cuenta privilegiada)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateUserRequest true "Datos del usuario"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/users [post]
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
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

func (h *UsersHandler) GetByID(c *gin.Context) {
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
// @Summary Lista usuarios con paginacion, filtro por rol y busqueda
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Tamano de pagina"
// @Param role query string false "Filtro por rol"
// @Param search query string false "Busqueda por nombre o email"
// @Success 200 {object} dto.UserListResponse
// @Router /v1/users [get]
func (h *UsersHandler) List(c *gin.Context) {
	skip, limit := pagination(c)

	var role *model.Role
	if raw := c.Query("role"); raw != "" {
		r := model.Role(raw)
		if !r.IsValid() {
			c.JSON(http.StatusBadRequest, apierror.New("Rol desconocido"))
			return
		}
		role = &r
	}

	users, err := h.svc.List(c.Request.Context(), skip, limit, role, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserListResponse{
		Users: users,
		Total: len(users),
		Page:  skip/limit + 1,
		Limit: limit,
	})
}

// Update edits name/email/password. Only the user themselves or an admin may
// do it.
func (h *UsersHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	claims := middleware.GetClaims(c)
	if claims.UserID != id.String() && middleware.ActorTier(c) < model.RoleAdmin.Tier() {
		c.JSON(http.StatusForbidden, apierror.New("Solo el propio usuario o un admin puede editar la cuenta"))
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateRoles godoc
// @Summary Reemplaza el conjunto de roles de un usuario
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de usuario"
// @Param body body dto.UpdateRolesRequest true "Nuevos roles"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/users/{id}/roles [put]
func (h *UsersHandler) UpdateRoles(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.UpdateRolesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateRoles(c.Request.Context(), id, req.Roles)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Activate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Deactivate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Delete(c *gin.Context) {
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

func (h *UsersHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
