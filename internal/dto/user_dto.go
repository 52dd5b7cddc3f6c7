package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateUserRequest covers both ad hoc player creation (name only) and
// privileged accounts (email + password required by the service layer).
type CreateUserRequest struct {
	Name     string   `json:"name"     validate:"required,min=2,max=100"`
	Email    *string  `json:"email"    validate:"omitempty,email"`
	Password *string  `json:"password" validate:"omitempty,min=4"`
	Roles    []string `json:"roles"    validate:"omitempty,dive,oneof=USER DEALER MANAGER ADMIN"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=4"`
}

type UpdateRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,max=4,dive,oneof=USER DEALER MANAGER ADMIN"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          *string  `json:"email"`
	Roles          []string `json:"roles"`
	IsActive       bool     `json:"is_active"`
	FailedAttempts int      `json:"failed_attempts"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type UserStatsResponse struct {
	TotalUsers    int64            `json:"total_users"`
	ActiveUsers   int64            `json:"active_users"`
	InactiveUsers int64            `json:"inactive_users"`
	ByRole        map[string]int64 `json:"by_role"`
}
