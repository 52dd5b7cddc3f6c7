package repository

import (
	"context"

	"github.com/maesedev/dealership-project/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, skip, limit int) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	Search(ctx context.Context, term string) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByRole(ctx context.Context, role model.Role) (int64, error)
	CountActive(ctx context.Context, active bool) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

// FindByEmail matches case-insensitively and also returns inactive accounts:
// the auth service needs them to record failed attempts and report lockout.
func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error
	return &u, err
}

func (r *userRepo) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&users).Error
	return users, err
}

func (r *userRepo) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("? = ANY(roles)", string(role)).
		Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepo) Search(ctx context.Context, term string) ([]model.User, error) {
	var users []model.User
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR email ILIKE ?", pattern, pattern).
		Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepo) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("? = ANY(roles)", string(role)).Count(&n).Error
	return n, err
}

func (r *userRepo) CountActive(ctx context.Context, active bool) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("is_active = ?", active).Count(&n).Error
	return n, err
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error
	return n, err
}
