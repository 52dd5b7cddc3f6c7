package service

import (
	"context"
	"errors"
	"time"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	List(ctx context.Context, skip, limit int, role *model.Role, search string) ([]dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	UpdateRoles(ctx context.Context, id uuid.UUID, roles []string) (*dto.UserResponse, error)
	Activate(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*dto.UserStatsResponse, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create handles both ad hoc players (name only, inactive by default) and
// privileged accounts, which must carry email + password and start active.
func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{string(model.RoleUser)}
	}
	if _, ok := model.ParseRoles(roles); !ok {
		return nil, apierror.Validation("Rol desconocido")
	}

	privileged := model.AnyPrivileged(roles)
	if privileged {
		if req.Email == nil || *req.Email == "" {
			return nil, apierror.Validation("Los usuarios Dealer, Manager o Admin requieren email")
		}
		if req.Password == nil || *req.Password == "" {
			return nil, apierror.Validation("Los usuarios Dealer, Manager o Admin requieren contraseña")
		}
	}

	var hash string
	if req.Password != nil && *req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Roles:        roles,
		// Plain players start inactive until the floor activates them.
		IsActive: privileged,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Usuario no encontrado")
	}
	return userToResponse(user), nil
}

func (s *userService) List(ctx context.Context, skip, limit int, role *model.Role, search string) ([]dto.UserResponse, error) {
	var (
		users []model.User
		err   error
	)
	switch {
	case search != "":
		users, err = s.repo.Search(ctx, search)
	case role != nil:
		users, err = s.repo.ListByRole(ctx, *role)
	default:
		users, err = s.repo.List(ctx, skip, limit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = *userToResponse(&users[i])
	}
	return out, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Usuario no encontrado")
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Password != nil && *req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(h)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// UpdateRoles replaces the role set. Promotion to a privileged tier requires
// the target to already hold login credentials — a precondition, not a
// permission check.
func (s *userService) UpdateRoles(ctx context.Context, id uuid.UUID, roles []string) (*dto.UserResponse, error) {
	if _, ok := model.ParseRoles(roles); !ok {
		return nil, apierror.Validation("Rol desconocido")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Usuario no encontrado")
	}
	if model.AnyPrivileged(roles) && !user.HasCredentials() {
		return nil, apierror.Validation("El usuario necesita email y contraseña antes de ser promovido a Dealer, Manager o Admin")
	}
	user.Roles = roles
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) Activate(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Usuario no encontrado")
	}
	user.IsActive = true
	user.FailedAttempts = 0
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) Deactivate(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Usuario no encontrado")
	}
	user.IsActive = false
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Usuario no encontrado")
	}
	return nil
}

func (s *userService) Stats(ctx context.Context) (*dto.UserStatsResponse, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.repo.CountActive(ctx, true)
	if err != nil {
		return nil, err
	}
	byRole := make(map[string]int64, 4)
	for _, r := range []model.Role{model.RoleUser, model.RoleDealer, model.RoleManager, model.RoleAdmin} {
		n, err := s.repo.CountByRole(ctx, r)
		if err != nil {
			return nil, err
		}
		byRole[string(r)] = n
	}
	return &dto.UserStatsResponse{
		TotalUsers:    total,
		ActiveUsers:   active,
		InactiveUsers: total - active,
		ByRole:        byRole,
	}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		Roles:          append([]string(nil), u.Roles...),
		IsActive:       u.IsActive,
		FailedAttempts: u.FailedAttempts,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      u.UpdatedAt.Format(time.RFC3339),
	}
}

// notFoundOr converts gorm's record-not-found into a reference error with a
// client-safe message; other errors pass through untouched.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(msg)
	}
	return err
}
