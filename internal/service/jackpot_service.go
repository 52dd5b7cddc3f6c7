package service

import (
	"context"
	"time"

	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/repository"

	"github.com/google/uuid"
)

type JackpotPrizeService interface {
	Create(ctx context.Context, req dto.CreateJackpotPrizeRequest) (*dto.JackpotPrizeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.JackpotPrizeResponse, error)
	List(ctx context.Context, skip, limit int, userID, sessionID *uuid.UUID) ([]dto.JackpotPrizeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateJackpotPrizeRequest, actorTier int) (*dto.JackpotPrizeResponse, error)
	Delete(ctx context.Context, id uuid.UUID, actorTier int) error
}

type jackpotService struct {
	prizes   repository.JackpotPrizeRepository
	users    repository.UserRepository
	sessions repository.SessionRepository
}

func NewJackpotPrizeService(prizes repository.JackpotPrizeRepository, users repository.UserRepository, sessions repository.SessionRepository) JackpotPrizeService {
	return &jackpotService{prizes: prizes, users: users, sessions: sessions}
}

func (s *jackpotService) Create(ctx context.Context, req dto.CreateJackpotPrizeRequest) (*dto.JackpotPrizeResponse, error) {
	userID, sess, err := resolveLedgerRefs(ctx, s.users, s.sessions, req.UserID, req.SessionID)
	if err != nil {
		return nil, err
	}
	prize := &model.JackpotPrize{
		UserID:     userID,
		SessionID:  sess.ID,
		Value:      req.Value,
		WinnerHand: req.WinnerHand,
		Comment:    req.Comment,
	}
	if err := s.prizes.Create(ctx, prize); err != nil {
		return nil, err
	}
	return jackpotToResponse(prize), nil
}

func (s *jackpotService) GetByID(ctx context.Context, id uuid.UUID) (*dto.JackpotPrizeResponse, error) {
	prize, err := s.prizes.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Premio de jackpot no encontrado")
	}
	return jackpotToResponse(prize), nil
}

func (s *jackpotService) List(ctx context.Context, skip, limit int, userID, sessionID *uuid.UUID) ([]dto.JackpotPrizeResponse, error) {
	var (
		prizes []model.JackpotPrize
		err    error
	)
	switch {
	case userID != nil:
		prizes, err = s.prizes.ListByUser(ctx, *userID, skip, limit)
	case sessionID != nil:
		prizes, err = s.prizes.ListBySession(ctx, *sessionID, skip, limit)
	default:
		prizes, err = s.prizes.List(ctx, skip, limit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.JackpotPrizeResponse, len(prizes))
	for i := range prizes {
		out[i] = *jackpotToResponse(&prizes[i])
	}
	return out, nil
}

func (s *jackpotService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateJackpotPrizeRequest, actorTier int) (*dto.JackpotPrizeResponse, error) {
	prize, err := s.prizes.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Premio de jackpot no encontrado")
	}
	if err := guardSessionLock(ctx, s.sessions, prize.SessionID, actorTier); err != nil {
		return nil, err
	}
	if req.Value != nil {
		prize.Value = *req.Value
	}
	if req.WinnerHand != nil {
		prize.WinnerHand = req.WinnerHand
	}
	if req.Comment != nil {
		prize.Comment = req.Comment
	}
	if err := s.prizes.Update(ctx, prize); err != nil {
		return nil, err
	}
	return jackpotToResponse(prize), nil
}

func (s *jackpotService) Delete(ctx context.Context, id uuid.UUID, actorTier int) error {
	prize, err := s.prizes.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "Premio de jackpot no encontrado")
	}
	if err := guardSessionLock(ctx, s.sessions, prize.SessionID, actorTier); err != nil {
		return err
	}
	return s.prizes.Delete(ctx, id)
}

func jackpotToResponse(j *model.JackpotPrize) *dto.JackpotPrizeResponse {
	return &dto.JackpotPrizeResponse{
		ID:         j.ID.String(),
		UserID:     j.UserID.String(),
		SessionID:  j.SessionID.String(),
		Value:      j.Value,
		WinnerHand: j.WinnerHand,
		Comment:    j.Comment,
		CreatedAt:  j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  j.UpdatedAt.Format(time.RFC3339),
	}
}
