package service

// In-memory repository fakes shared by the service tests. They mimic the
// gorm-backed repositories closely enough for service semantics: missing rows
// surface gorm.ErrRecordNotFound, and stored values are cloned so tests never
// alias service-held pointers.

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── UserRepository fake ───────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cloned := *u
	r.users[u.ID] = &cloned
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *u
	return &cloned, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email != nil && strings.EqualFold(*u.Email, email) {
			cloned := *u
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(_ context.Context, skip, limit int) ([]model.User, error) {
	all := r.all()
	if skip >= len(all) {
		return nil, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role model.Role) ([]model.User, error) {
	var out []model.User
	for _, u := range r.all() {
		if u.HasRole(role) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Search(_ context.Context, term string) ([]model.User, error) {
	term = strings.ToLower(term)
	var out []model.User
	for _, u := range r.all() {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			(u.Email != nil && strings.Contains(strings.ToLower(*u.Email), term)) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	u.UpdatedAt = time.Now()
	cloned := *u
	r.users[u.ID] = &cloned
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	users, _ := r.ListByRole(ctx, role)
	return int64(len(users)), nil
}

func (r *fakeUserRepo) CountActive(_ context.Context, active bool) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.IsActive == active {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) all() []model.User {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// ── SessionRepository fake ────────────────────────────────────────────────────

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*model.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *model.Session) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	cloned := *s
	r.sessions[s.ID] = &cloned
	return nil
}

func (r *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *s
	return &cloned, nil
}

func (r *fakeSessionRepo) FindOpenByDealer(_ context.Context, dealerID uuid.UUID) (*model.Session, error) {
	for _, s := range r.sessions {
		if s.DealerID == dealerID && s.IsOpen() {
			cloned := *s
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSessionRepo) List(_ context.Context, skip, limit int) ([]model.Session, error) {
	all := r.all()
	if skip >= len(all) {
		return nil, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (r *fakeSessionRepo) ListByDealer(_ context.Context, dealerID uuid.UUID, _, _ int) ([]model.Session, error) {
	var out []model.Session
	for _, s := range r.all() {
		if s.DealerID == dealerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) ListOpen(_ context.Context, _, _ int) ([]model.Session, error) {
	var out []model.Session
	for _, s := range r.all() {
		if s.IsOpen() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) ListByStartRange(_ context.Context, from, to time.Time) ([]model.Session, error) {
	var out []model.Session
	for _, s := range r.all() {
		if !s.StartTime.Before(from) && s.StartTime.Before(to) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *model.Session) error {
	if _, ok := r.sessions[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.UpdatedAt = time.Now()
	cloned := *s
	r.sessions[s.ID] = &cloned
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.sessions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) CountOpen(ctx context.Context) (int64, error) {
	open, _ := r.ListOpen(ctx, 0, 0)
	return int64(len(open)), nil
}

func (r *fakeSessionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.sessions)), nil
}

func (r *fakeSessionRepo) ListClosed(_ context.Context) ([]model.Session, error) {
	var out []model.Session
	for _, s := range r.all() {
		if !s.IsOpen() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) all() []model.Session {
	out := make([]model.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out
}

var _ repository.SessionRepository = (*fakeSessionRepo)(nil)

// ── TransactionRepository fake ────────────────────────────────────────────────

type fakeTransactionRepo struct {
	txs map[uuid.UUID]*model.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{txs: make(map[uuid.UUID]*model.Transaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *model.Transaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cloned := *t
	r.txs[t.ID] = &cloned
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Transaction, error) {
	t, ok := r.txs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *t
	return &cloned, nil
}

func (r *fakeTransactionRepo) List(_ context.Context, _, _ int) ([]model.Transaction, error) {
	return r.filter(func(*model.Transaction) bool { return true }), nil
}

func (r *fakeTransactionRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]model.Transaction, error) {
	return r.filter(func(t *model.Transaction) bool { return t.UserID == userID }), nil
}

func (r *fakeTransactionRepo) ListBySession(_ context.Context, sessionID uuid.UUID, _, _ int) ([]model.Transaction, error) {
	return r.filter(func(t *model.Transaction) bool { return t.SessionID == sessionID }), nil
}

func (r *fakeTransactionRepo) ListBySessionIDs(_ context.Context, sessionIDs []uuid.UUID) ([]model.Transaction, error) {
	set := make(map[uuid.UUID]bool, len(sessionIDs))
	for _, id := range sessionIDs {
		set[id] = true
	}
	return r.filter(func(t *model.Transaction) bool { return set[t.SessionID] }), nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, t *model.Transaction) error {
	if _, ok := r.txs[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *t
	r.txs[t.ID] = &cloned
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.txs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.txs, id)
	return nil
}

func (r *fakeTransactionRepo) filter(keep func(*model.Transaction) bool) []model.Transaction {
	var out []model.Transaction
	for _, t := range r.txs {
		if keep(t) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

var _ repository.TransactionRepository = (*fakeTransactionRepo)(nil)

// ── BonoRepository fake ───────────────────────────────────────────────────────

type fakeBonoRepo struct {
	bonos map[uuid.UUID]*model.Bono
}

func newFakeBonoRepo() *fakeBonoRepo {
	return &fakeBonoRepo{bonos: make(map[uuid.UUID]*model.Bono)}
}

func (r *fakeBonoRepo) Create(_ context.Context, b *model.Bono) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cloned := *b
	r.bonos[b.ID] = &cloned
	return nil
}

func (r *fakeBonoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Bono, error) {
	b, ok := r.bonos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *b
	return &cloned, nil
}

func (r *fakeBonoRepo) List(_ context.Context, _, _ int) ([]model.Bono, error) {
	return r.filter(func(*model.Bono) bool { return true }), nil
}

func (r *fakeBonoRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]model.Bono, error) {
	return r.filter(func(b *model.Bono) bool { return b.UserID == userID }), nil
}

func (r *fakeBonoRepo) ListBySession(_ context.Context, sessionID uuid.UUID, _, _ int) ([]model.Bono, error) {
	return r.filter(func(b *model.Bono) bool { return b.SessionID == sessionID }), nil
}

func (r *fakeBonoRepo) ListBySessionIDs(_ context.Context, sessionIDs []uuid.UUID) ([]model.Bono, error) {
	set := make(map[uuid.UUID]bool, len(sessionIDs))
	for _, id := range sessionIDs {
		set[id] = true
	}
	return r.filter(func(b *model.Bono) bool { return set[b.SessionID] }), nil
}

func (r *fakeBonoRepo) Update(_ context.Context, b *model.Bono) error {
	if _, ok := r.bonos[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *b
	r.bonos[b.ID] = &cloned
	return nil
}

func (r *fakeBonoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.bonos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.bonos, id)
	return nil
}

func (r *fakeBonoRepo) filter(keep func(*model.Bono) bool) []model.Bono {
	var out []model.Bono
	for _, b := range r.bonos {
		if keep(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

var _ repository.BonoRepository = (*fakeBonoRepo)(nil)

// ── JackpotPrizeRepository fake ───────────────────────────────────────────────

type fakeJackpotRepo struct {
	prizes map[uuid.UUID]*model.JackpotPrize
}

func newFakeJackpotRepo() *fakeJackpotRepo {
	return &fakeJackpotRepo{prizes: make(map[uuid.UUID]*model.JackpotPrize)}
}

func (r *fakeJackpotRepo) Create(_ context.Context, j *model.JackpotPrize) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	cloned := *j
	r.prizes[j.ID] = &cloned
	return nil
}

func (r *fakeJackpotRepo) FindByID(_ context.Context, id uuid.UUID) (*model.JackpotPrize, error) {
	j, ok := r.prizes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *j
	return &cloned, nil
}

func (r *fakeJackpotRepo) List(_ context.Context, _, _ int) ([]model.JackpotPrize, error) {
	return r.filter(func(*model.JackpotPrize) bool { return true }), nil
}

func (r *fakeJackpotRepo) ListByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]model.JackpotPrize, error) {
	return r.filter(func(j *model.JackpotPrize) bool { return j.UserID == userID }), nil
}

func (r *fakeJackpotRepo) ListBySession(_ context.Context, sessionID uuid.UUID, _, _ int) ([]model.JackpotPrize, error) {
	return r.filter(func(j *model.JackpotPrize) bool { return j.SessionID == sessionID }), nil
}

func (r *fakeJackpotRepo) ListBySessionIDs(_ context.Context, sessionIDs []uuid.UUID) ([]model.JackpotPrize, error) {
	set := make(map[uuid.UUID]bool, len(sessionIDs))
	for _, id := range sessionIDs {
		set[id] = true
	}
	return r.filter(func(j *model.JackpotPrize) bool { return set[j.SessionID] }), nil
}

func (r *fakeJackpotRepo) Update(_ context.Context, j *model.JackpotPrize) error {
	if _, ok := r.prizes[j.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cloned := *j
	r.prizes[j.ID] = &cloned
	return nil
}

func (r *fakeJackpotRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.prizes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.prizes, id)
	return nil
}

func (r *fakeJackpotRepo) filter(keep func(*model.JackpotPrize) bool) []model.JackpotPrize {
	var out []model.JackpotPrize
	for _, j := range r.prizes {
		if keep(j) {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

var _ repository.JackpotPrizeRepository = (*fakeJackpotRepo)(nil)

// ── DailyReportRepository fake ────────────────────────────────────────────────

type fakeReportRepo struct {
	reports map[uuid.UUID]*model.DailyReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uuid.UUID]*model.DailyReport)}
}

func (r *fakeReportRepo) Create(_ context.Context, rep *model.DailyReport) error {
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	rep.CreatedAt = time.Now()
	rep.UpdatedAt = rep.CreatedAt
	cloned := *rep
	r.reports[rep.ID] = &cloned
	return nil
}

func (r *fakeReportRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DailyReport, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cloned := *rep
	return &cloned, nil
}

func (r *fakeReportRepo) FindByDate(_ context.Context, date time.Time) (*model.DailyReport, error) {
	key := date.Format("2006-01-02")
	for _, rep := range r.reports {
		if rep.Date.Format("2006-01-02") == key {
			cloned := *rep
			return &cloned, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeReportRepo) List(_ context.Context, skip, limit int) ([]model.DailyReport, error) {
	all := r.all()
	if skip >= len(all) {
		return nil, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (r *fakeReportRepo) ListByDateRange(_ context.Context, from, to time.Time, _, _ int) ([]model.DailyReport, error) {
	var out []model.DailyReport
	for _, rep := range r.all() {
		if !rep.Date.Before(from) && !rep.Date.After(to) {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) ListAll(_ context.Context, from, to *time.Time) ([]model.DailyReport, error) {
	var out []model.DailyReport
	for _, rep := range r.all() {
		if from != nil && rep.Date.Before(*from) {
			continue
		}
		if to != nil && rep.Date.After(*to) {
			continue
		}
		out = append(out, rep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeReportRepo) Update(_ context.Context, rep *model.DailyReport) error {
	if _, ok := r.reports[rep.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	rep.UpdatedAt = time.Now()
	cloned := *rep
	r.reports[rep.ID] = &cloned
	return nil
}

func (r *fakeReportRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	if _, ok := r.reports[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.reports, id)
	return nil
}

func (r *fakeReportRepo) all() []model.DailyReport {
	out := make([]model.DailyReport, 0, len(r.reports))
	for _, rep := range r.reports {
		out = append(out, *rep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

var _ repository.DailyReportRepository = (*fakeReportRepo)(nil)
