package repository

import (
	"context"

	"github.com/maesedev/dealership-project/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *model.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context, skip, limit int) ([]model.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]model.Transaction, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID, skip, limit int) ([]model.Transaction, error)
	ListBySessionIDs(ctx context.Context, sessionIDs []uuid.UUID) ([]model.Transaction, error)
	Update(ctx context.Context, t *model.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *transactionRepo) List(ctx context.Context, skip, limit int) ([]model.Transaction, error) {
	var out []model.Transaction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *transactionRepo) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]model.Transaction, error) {
	var out []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *transactionRepo) ListBySession(ctx context.Context, sessionID uuid.UUID, skip, limit int) ([]model.Transaction, error) {
	var out []model.Transaction
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *transactionRepo) ListBySessionIDs(ctx context.Context, sessionIDs []uuid.UUID) ([]model.Transaction, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	var out []model.Transaction
	err := r.db.WithContext(ctx).
		Where("session_id IN ?", sessionIDs).
		Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *transactionRepo) Update(ctx context.Context, t *model.Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *transactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
