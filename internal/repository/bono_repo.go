package repository

import (
	"context"

	"github.com/maesedev/dealership-project/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BonoRepository interface {
	Create(ctx context.Context, b *model.Bono) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Bono, error)
	List(ctx context.Context, skip, limit int) ([]model.Bono, error)
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]model.Bono, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID, skip, limit int) ([]model.Bono, error)
	ListBySessionIDs(ctx context.Context, sessionIDs []uuid.UUID) ([]model.Bono, error)
	Update(ctx context.Context, b *model.Bono) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bonoRepo struct{ db *gorm.DB }

func NewBonoRepository(db *gorm.DB) BonoRepository { return &bonoRepo{db: db} }

func (r *bonoRepo) Create(ctx context.Context, b *model.Bono) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bonoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Bono, error) {
	var b model.Bono
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *bonoRepo) List(ctx context.Context, skip, limit int) ([]model.Bono, error) {
	var out []model.Bono
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *bonoRepo) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]model.Bono, error) {
	var out []model.Bono
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *bonoRepo) ListBySession(ctx context.Context, sessionID uuid.UUID, skip, limit int) ([]model.Bono, error) {
	var out []model.Bono
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *bonoRepo) ListBySessionIDs(ctx context.Context, sessionIDs []uuid.UUID) ([]model.Bono, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	var out []model.Bono
	err := r.db.WithContext(ctx).
		Where("session_id IN ?", sessionIDs).
		Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *bonoRepo) Update(ctx context.Context, b *model.Bono) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *bonoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Bono{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
