package repository

import (
	"context"
	"time"

	"github.com/maesedev/dealership-project/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailyReportRepository interface {
	Create(ctx context.Context, r *model.DailyReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DailyReport, error)
	FindByDate(ctx context.Context, date time.Time) (*model.DailyReport, error)
	List(ctx context.Context, skip, limit int) ([]model.DailyReport, error)
	ListByDateRange(ctx context.Context, from, to time.Time, skip, limit int) ([]model.DailyReport, error)
	ListAll(ctx context.Context, from, to *time.Time) ([]model.DailyReport, error)
	Update(ctx context.Context, r *model.DailyReport) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type reportRepo struct{ db *gorm.DB }

func NewDailyReportRepository(db *gorm.DB) DailyReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, rep *model.DailyReport) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *reportRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DailyReport, error) {
	var rep model.DailyReport
	err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error
	return &rep, err
}

func (r *reportRepo) FindByDate(ctx context.Context, date time.Time) (*model.DailyReport, error) {
	var rep model.DailyReport
	err := r.db.WithContext(ctx).
		Where("date = ?", date.Format("2006-01-02")).First(&rep).Error
	return &rep, err
}

func (r *reportRepo) List(ctx context.Context, skip, limit int) ([]model.DailyReport, error) {
	var out []model.DailyReport
	err := r.db.WithContext(ctx).
		Order("date DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (r *reportRepo) ListByDateRange(ctx context.Context, from, to time.Time, skip, limit int) ([]model.DailyReport, error) {
	var out []model.DailyReport
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date DESC").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

// ListAll returns every report in an optional date range, for stats rollups.
func (r *reportRepo) ListAll(ctx context.Context, from, to *time.Time) ([]model.DailyReport, error) {
	q := r.db.WithContext(ctx).Order("date ASC")
	if from != nil {
		q = q.Where("date >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		q = q.Where("date <= ?", to.Format("2006-01-02"))
	}
	var out []model.DailyReport
	err := q.Find(&out).Error
	return out, err
}

func (r *reportRepo) Update(ctx context.Context, rep *model.DailyReport) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *reportRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.DailyReport{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
