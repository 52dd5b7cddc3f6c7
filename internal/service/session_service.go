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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SessionService interface {
	Open(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error)
	List(ctx context.Context, skip, limit int, dealerID *uuid.UUID, activeOnly bool) ([]dto.SessionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSessionRequest, actorTier int) (*dto.SessionResponse, error)
	End(ctx context.Context, id uuid.UUID, req dto.EndSessionRequest) (*dto.SessionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*dto.SessionStatsResponse, error)
}

type sessionService struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
}

func NewSessionService(sessions repository.SessionRepository, users repository.UserRepository) SessionService {
	return &sessionService{sessions: sessions, users: users}
}

// resolveDealer looks up the shift's assignee. Anyone at Dealer tier or above
// can be assigned a shift; managers and admins cover the table too.
func (s *sessionService) resolveDealer(ctx context.Context, rawID string) (uuid.UUID, error) {
	dealerID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, apierror.Validation("dealer_id inválido")
	}
	dealer, err := s.users.FindByID(ctx, dealerID)
	if err != nil {
		return uuid.Nil, notFoundOr(err, "Dealer no encontrado")
	}
	if dealer.Tier() < model.RoleDealer.Tier() {
		return uuid.Nil, apierror.Validation("El usuario no tiene rol de dealer o superior")
	}
	return dealerID, nil
}

// Open starts a shift for a dealer. The dealer must exist at Dealer tier or
// above and have no other shift still running.
func (s *sessionService) Open(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	dealerID, err := s.resolveDealer(ctx, req.DealerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.sessions.FindOpenByDealer(ctx, dealerID); err == nil {
		return nil, apierror.State("El dealer ya tiene una sesión activa")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	start := time.Now()
	if req.StartTime != nil {
		start = *req.StartTime
	}
	sess := &model.Session{
		DealerID:  dealerID,
		StartTime: start,
		Comment:   req.Comment,
	}
	if req.HourlyPay != nil {
		sess.HourlyPay = *req.HourlyPay
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sessionToResponse(sess), nil
}

func (s *sessionService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error) {
	sess, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Sesión no encontrada")
	}
	return sessionToResponse(sess), nil
}

func (s *sessionService) List(ctx context.Context, skip, limit int, dealerID *uuid.UUID, activeOnly bool) ([]dto.SessionResponse, error) {
	var (
		sessions []model.Session
		err      error
	)
	switch {
	case dealerID != nil:
		sessions, err = s.sessions.ListByDealer(ctx, *dealerID, skip, limit)
	case activeOnly:
		sessions, err = s.sessions.ListOpen(ctx, skip, limit)
	default:
		sessions, err = s.sessions.List(ctx, skip, limit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionResponse, len(sessions))
	for i := range sessions {
		out[i] = *sessionToResponse(&sessions[i])
	}
	return out, nil
}

// Update edits shift fields. Closed shifts are locked: only Manager+ may
// touch them. hourly_pay is a payroll term and is Manager+ regardless of
// the shift being open.
func (s *sessionService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSessionRequest, actorTier int) (*dto.SessionResponse, error) {
	sess, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Sesión no encontrada")
	}
	if !sess.IsOpen() && actorTier < model.RoleManager.Tier() {
		return nil, apierror.Forbidden("Solo un manager puede modificar una sesión cerrada")
	}
	if req.HourlyPay != nil && actorTier < model.RoleManager.Tier() {
		return nil, apierror.Forbidden("Solo un manager puede modificar el pago por hora")
	}

	if req.DealerID != nil {
		dealerID, err := s.resolveDealer(ctx, *req.DealerID)
		if err != nil {
			return nil, err
		}
		sess.DealerID = dealerID
	}
	if req.StartTime != nil {
		sess.StartTime = *req.StartTime
	}
	if req.Jackpot != nil {
		sess.Jackpot = *req.Jackpot
	}
	if req.Reik != nil {
		sess.Reik = *req.Reik
	}
	if req.Tips != nil {
		sess.Tips = *req.Tips
	}
	if req.HourlyPay != nil {
		sess.HourlyPay = *req.HourlyPay
	}
	if req.Comment != nil {
		sess.Comment = req.Comment
	}
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}
	return sessionToResponse(sess), nil
}

// End closes a shift. Closing is one-way and requires reik and jackpot to be
// declared together; the request DTO enforces their presence.
func (s *sessionService) End(ctx context.Context, id uuid.UUID, req dto.EndSessionRequest) (*dto.SessionResponse, error) {
	sess, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Sesión no encontrada")
	}
	if !sess.IsOpen() {
		return nil, apierror.State("La sesión ya fue cerrada")
	}

	end := time.Now()
	if req.EndTime != nil {
		end = *req.EndTime
	}
	if end.Before(sess.StartTime) {
		return nil, apierror.Validation("La hora de cierre no puede ser anterior al inicio")
	}
	sess.EndTime = &end
	sess.Reik = *req.Reik
	sess.Jackpot = *req.Jackpot
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}
	return sessionToResponse(sess), nil
}

func (s *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Sesión no encontrada")
	}
	return nil
}

func (s *sessionService) Stats(ctx context.Context) (*dto.SessionStatsResponse, error) {
	total, err := s.sessions.Count(ctx)
	if err != nil {
		return nil, err
	}
	open, err := s.sessions.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	closed, err := s.sessions.ListClosed(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.SessionStatsResponse{
		TotalSessions:     total,
		ActiveSessions:    open,
		CompletedSessions: int64(len(closed)),
	}
	var hours float64
	for i := range closed {
		sess := &closed[i]
		stats.TotalJackpot = stats.TotalJackpot.Add(sess.Jackpot)
		stats.TotalReik = stats.TotalReik.Add(sess.Reik)
		stats.TotalTips = stats.TotalTips.Add(sess.Tips)
		stats.TotalEarnings = stats.TotalEarnings.Add(sess.TotalEarnings())
		if d := sess.DurationHours(); d != nil {
			hours += *d
		}
	}
	if len(closed) > 0 {
		avg, _ := decimal.NewFromFloat(hours / float64(len(closed))).Round(2).Float64()
		stats.AvgDurationHours = avg
	}
	return stats, nil
}

func sessionToResponse(s *model.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:            s.ID.String(),
		DealerID:      s.DealerID.String(),
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Jackpot:       s.Jackpot,
		Reik:          s.Reik,
		Tips:          s.Tips,
		HourlyPay:     s.HourlyPay,
		Comment:       s.Comment,
		IsActive:      s.IsOpen(),
		DurationHours: s.DurationHours(),
		TotalEarnings: s.TotalEarnings(),
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.Format(time.RFC3339),
	}
}
