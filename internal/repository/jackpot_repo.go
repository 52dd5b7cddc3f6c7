package repository

import (
	"context"

	"github.com/maesedev/dealership-project/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JackpotPrizeRepository interface {
	Create(ctx context.Context, j *model.JackpotPrize) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.JackpotPrize, error)
	List(ctx context.Context, skip, limit int) ([]model.JackpotPrize, error)
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]model.JackpotPrize, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID, skip, limit int) ([]model.JackpotPrize, error)
	ListBySessionIDs(ctx context.Context, sessionIDs []uuid.UUID) ([]model.JackpotPrize, error)
	Update(ctx context.Context, j *model.JackpotPrize) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type jackpotRepo struct{ db *gorm.DB }

func NewJackpotPrizeRepository(db *gorm.DB) JackpotPrizeRepository {
	return &jackpotRepo{db: db}
}

func (r *jackpotRepo) Create(ctx context.Context, j *model.JackpotPrize) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jackpotRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.JackpotPrize, error) {
	var j model.JackpotPrize
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	return &j, err
}

func (r *jackpotRepo) List(ctx context.Context, skip, limit int) ([]model.JackpotPrize, error) {
	var out []model.JackpotPrize
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *jackpotRepo) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]model.JackpotPrize, error) {
	var out []model.JackpotPrize
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *jackpotRepo) ListBySession(ctx context.Context, sessionID uuid.UUID, skip, limit int) ([]model.JackpotPrize, error) {
	var out []model.JackpotPrize
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *jackpotRepo) ListBySessionIDs(ctx context.Context, sessionIDs []uuid.UUID) ([]model.JackpotPrize, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	var out []model.JackpotPrize
	err := r.db.WithContext(ctx).
		Where("session_id IN ?", sessionIDs).
		Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *jackpotRepo) Update(ctx context.Context, j *model.JackpotPrize) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *jackpotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.JackpotPrize{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
