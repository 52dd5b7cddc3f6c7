package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/infra"
	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/repository"
	"github.com/maesedev/dealership-project/internal/timeutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Past reports are immutable, so cache entries only need to survive long
// enough to absorb repeated dashboard reads.
const reportCacheTTL = 12 * time.Hour

type ReportService interface {
	GetByDate(ctx context.Context, date time.Time) (*dto.ReportResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ReportResponse, error)
	List(ctx context.Context, skip, limit int, from, to *time.Time) ([]dto.ReportResponse, error)
	ListProfitable(ctx context.Context) ([]dto.ReportResponse, error)
	Stats(ctx context.Context, from, to *time.Time) (*dto.ReportStatsResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateReportRequest) (*dto.ReportResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type reportService struct {
	reports      repository.DailyReportRepository
	sessions     repository.SessionRepository
	transactions repository.TransactionRepository
	bonos        repository.BonoRepository
	prizes       repository.JackpotPrizeRepository
	cache        *redis.Client
	appName      string
}

func NewReportService(
	reports repository.DailyReportRepository,
	sessions repository.SessionRepository,
	transactions repository.TransactionRepository,
	bonos repository.BonoRepository,
	prizes repository.JackpotPrizeRepository,
	cache *redis.Client,
	appName string,
) ReportService {
	return &reportService{
		reports:      reports,
		sessions:     sessions,
		transactions: transactions,
		bonos:        bonos,
		prizes:       prizes,
		cache:        cache,
		appName:      appName,
	}
}

// GetByDate returns the report for a calendar date (org timezone).
// Today's report is always rebuilt from source data: the stored row, if any,
// is replaced so intra-day reads never serve stale aggregates. Past dates are
// served from storage — or generated once from source data if the day was
// never materialized — and cached in Redis, since they no longer change.
func (s *reportService) GetByDate(ctx context.Context, date time.Time) (*dto.ReportResponse, error) {
	date = timeutil.DateOf(date)
	today := timeutil.Today()

	if date.After(today) {
		return nil, apierror.Validation("No se pueden generar reportes de fechas futuras")
	}

	if date.Equal(today) {
		report, err := s.rebuild(ctx, date)
		if err != nil {
			return nil, err
		}
		return reportToResponse(report), nil
	}

	if cached := s.cacheGet(ctx, date); cached != nil {
		return reportToResponse(cached), nil
	}

	report, err := s.reports.FindByDate(ctx, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		report, err = s.buildReport(ctx, date)
		if err != nil {
			return nil, err
		}
		if err := s.reports.Create(ctx, report); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, date, report)
	return reportToResponse(report), nil
}

func (s *reportService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ReportResponse, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Reporte no encontrado")
	}
	return reportToResponse(report), nil
}

func (s *reportService) List(ctx context.Context, skip, limit int, from, to *time.Time) ([]dto.ReportResponse, error) {
	var (
		reports []model.DailyReport
		err     error
	)
	if from != nil && to != nil {
		reports, err = s.reports.ListByDateRange(ctx, *from, *to, skip, limit)
	} else {
		reports, err = s.reports.List(ctx, skip, limit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReportResponse, len(reports))
	for i := range reports {
		out[i] = *reportToResponse(&reports[i])
	}
	return out, nil
}

func (s *reportService) ListProfitable(ctx context.Context) ([]dto.ReportResponse, error) {
	reports, err := s.reports.ListAll(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		if reports[i].IsProfitable() {
			out = append(out, *reportToResponse(&reports[i]))
		}
	}
	return out, nil
}

func (s *reportService) Stats(ctx context.Context, from, to *time.Time) (*dto.ReportStatsResponse, error) {
	reports, err := s.reports.ListAll(ctx, from, to)
	if err != nil {
		return nil, err
	}
	stats := &dto.ReportStatsResponse{TotalReports: len(reports)}
	if len(reports) == 0 {
		return stats, nil
	}

	var best, worst *model.DailyReport
	for i := range reports {
		r := &reports[i]
		stats.TotalReik = stats.TotalReik.Add(r.Reik)
		stats.TotalJackpot = stats.TotalJackpot.Add(r.Jackpot)
		stats.TotalGanancias = stats.TotalGanancias.Add(r.Ganancias)
		stats.TotalGastos = stats.TotalGastos.Add(r.Gastos)
		net := r.NetProfit()
		stats.TotalNetProfit = stats.TotalNetProfit.Add(net)
		if r.IsProfitable() {
			stats.ProfitableDays++
		} else {
			stats.UnprofitableDays++
		}
		if best == nil || net.GreaterThan(best.NetProfit()) {
			best = r
		}
		if worst == nil || net.LessThan(worst.NetProfit()) {
			worst = r
		}
	}
	stats.AvgDailyProfit = stats.TotalNetProfit.
		Div(decimal.NewFromInt(int64(len(reports)))).Round(2)
	stats.BestDay = &dto.ReportDayProfit{
		Date:      best.Date.Format("2006-01-02"),
		NetProfit: best.NetProfit(),
	}
	stats.WorstDay = &dto.ReportDayProfit{
		Date:      worst.Date.Format("2006-01-02"),
		NetProfit: worst.NetProfit(),
	}
	return stats, nil
}

// Update adjusts the stored top-level figures of a report. Breakdown lists
// are aggregation outputs and stay untouched.
func (s *reportService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateReportRequest) (*dto.ReportResponse, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Reporte no encontrado")
	}
	if req.Reik != nil {
		report.Reik = *req.Reik
	}
	if req.Jackpot != nil {
		report.Jackpot = *req.Jackpot
	}
	if req.Ganancias != nil {
		report.Ganancias = *req.Ganancias
	}
	if req.Gastos != nil {
		report.Gastos = *req.Gastos
	}
	if req.Comment != nil {
		report.Comment = req.Comment
	}
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	s.cacheDel(ctx, report.Date)
	return reportToResponse(report), nil
}

func (s *reportService) Delete(ctx context.Context, id uuid.UUID) error {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "Reporte no encontrado")
	}
	if err := s.reports.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.cacheDel(ctx, report.Date)
	return nil
}

func (s *reportService) RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Reporte no encontrado")
	}
	return infra.RenderReportPDF(report, s.appName)
}

// ── Aggregation ───────────────────────────────────────────────────────────────

// rebuild discards the stored row for the date, if present, and materializes
// a fresh one from source data.
func (s *reportService) rebuild(ctx context.Context, date time.Time) (*model.DailyReport, error) {
	if existing, err := s.reports.FindByDate(ctx, date); err == nil {
		if derr := s.reports.DeleteByID(ctx, existing.ID); derr != nil {
			return nil, derr
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	report, err := s.buildReport(ctx, date)
	if err != nil {
		return nil, err
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// buildReport aggregates every session starting on the date plus the money
// events attached to those sessions:
//
//	reik, jackpot = sums over the day's sessions
//	ganancias     = signed transaction total + bono total
//	gastos        = dealer cost per session (hours × hourly pay, truncated)
func (s *reportService) buildReport(ctx context.Context, date time.Time) (*model.DailyReport, error) {
	from, to := timeutil.DayWindow(date)
	sessions, err := s.sessions.ListByStartRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &model.DailyReport{
		Date:        date,
		SessionIDs:  make([]string, 0, len(sessions)),
		JackpotWins: []model.ReportEntry{},
		Bonos:       []model.ReportEntry{},
	}

	now := time.Now()
	sessionIDs := make([]uuid.UUID, 0, len(sessions))
	for i := range sessions {
		sess := &sessions[i]
		sessionIDs = append(sessionIDs, sess.ID)
		report.SessionIDs = append(report.SessionIDs, sess.ID.String())
		report.Reik = report.Reik.Add(sess.Reik)
		report.Jackpot = report.Jackpot.Add(sess.Jackpot)
		report.Gastos = report.Gastos.Add(sess.DealerCost(now))
	}

	txs, err := s.transactions.ListBySessionIDs(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}
	for i := range txs {
		report.Ganancias = report.Ganancias.Add(txs[i].SignedAmount())
	}

	bonos, err := s.bonos.ListBySessionIDs(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}
	for i := range bonos {
		report.Ganancias = report.Ganancias.Add(bonos[i].Value)
		report.Bonos = append(report.Bonos, model.ReportEntry{
			SourceID: bonos[i].ID.String(),
			Sum:      bonos[i].Value,
		})
	}

	prizes, err := s.prizes.ListBySessionIDs(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}
	for i := range prizes {
		report.JackpotWins = append(report.JackpotWins, model.ReportEntry{
			SourceID: prizes[i].ID.String(),
			Sum:      prizes[i].Value,
		})
	}

	return report, nil
}

// ── Redis read-through cache (past reports only) ─────────────────────────────

func reportCacheKey(date time.Time) string {
	return "report:date:" + date.Format("2006-01-02")
}

func (s *reportService) cacheGet(ctx context.Context, date time.Time) *model.DailyReport {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, reportCacheKey(date)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("report cache read failed")
		}
		return nil
	}
	var report model.DailyReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil
	}
	return &report
}

func (s *reportService) cacheSet(ctx context.Context, date time.Time, report *model.DailyReport) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, reportCacheKey(date), raw, reportCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("report cache write failed")
	}
}

func (s *reportService) cacheDel(ctx context.Context, date time.Time) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, reportCacheKey(date)).Err(); err != nil {
		log.Warn().Err(err).Msg("report cache invalidation failed")
	}
}

func reportToResponse(r *model.DailyReport) *dto.ReportResponse {
	wins := make([]dto.ReportEntryResponse, len(r.JackpotWins))
	for i, w := range r.JackpotWins {
		wins[i] = dto.ReportEntryResponse{SourceID: w.SourceID, Sum: w.Sum}
	}
	bonos := make([]dto.ReportEntryResponse, len(r.Bonos))
	for i, b := range r.Bonos {
		bonos[i] = dto.ReportEntryResponse{SourceID: b.SourceID, Sum: b.Sum}
	}
	return &dto.ReportResponse{
		ID:           r.ID.String(),
		Date:         r.Date.Format("2006-01-02"),
		Reik:         r.Reik,
		Jackpot:      r.Jackpot,
		Ganancias:    r.Ganancias,
		Gastos:       r.Gastos,
		Sessions:     append([]string(nil), r.SessionIDs...),
		JackpotWins:  wins,
		Bonos:        bonos,
		Comment:      r.Comment,
		NetProfit:    r.NetProfit(),
		TotalIncome:  r.TotalIncome(),
		IsProfitable: r.IsProfitable(),
		ProfitMargin: r.ProfitMargin(),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}
