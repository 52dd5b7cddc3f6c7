package repository

import (
	"context"
	"time"

	"github.com/maesedev/dealership-project/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Session, error)
	FindOpenByDealer(ctx context.Context, dealerID uuid.UUID) (*model.Session, error)
	List(ctx context.Context, skip, limit int) ([]model.Session, error)
	ListByDealer(ctx context.Context, dealerID uuid.UUID, skip, limit int) ([]model.Session, error)
	ListOpen(ctx context.Context, skip, limit int) ([]model.Session, error)
	ListByStartRange(ctx context.Context, from, to time.Time) ([]model.Session, error)
	Update(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountOpen(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	ListClosed(ctx context.Context) ([]model.Session, error)
}

type sessionRepo struct{ db *gorm.DB }

func NewSessionRepository(db *gorm.DB) SessionRepository { return &sessionRepo{db: db} }

func (r *sessionRepo) Create(ctx context.Context, s *model.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *sessionRepo) FindOpenByDealer(ctx context.Context, dealerID uuid.UUID) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).
		Where("dealer_id = ? AND end_time IS NULL", dealerID).
		First(&s).Error
	return &s, err
}

func (r *sessionRepo) List(ctx context.Context, skip, limit int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Order("start_time DESC").Offset(skip).Limit(limit).Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) ListByDealer(ctx context.Context, dealerID uuid.UUID, skip, limit int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Where("dealer_id = ?", dealerID).
		Order("start_time DESC").Offset(skip).Limit(limit).Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) ListOpen(ctx context.Context, skip, limit int) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Where("end_time IS NULL").
		Order("start_time DESC").Offset(skip).Limit(limit).Find(&sessions).Error
	return sessions, err
}

// ListByStartRange selects sessions whose start falls within [from, to).
// The daily report aggregator feeds it the org-timezone day window.
func (r *sessionRepo) ListByStartRange(ctx context.Context, from, to time.Time) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time ASC").Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) Update(ctx context.Context, s *model.Session) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sessionRepo) CountOpen(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Session{}).
		Where("end_time IS NULL").Count(&n).Error
	return n, err
}

func (r *sessionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Session{}).Count(&n).Error
	return n, err
}

func (r *sessionRepo) ListClosed(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Where("end_time IS NOT NULL").Find(&sessions).Error
	return sessions, err
}
