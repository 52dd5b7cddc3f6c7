package service

import (
	"context"
	"time"

	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/repository"

	"github.com/google/uuid"
)

type BonoService interface {
	Create(ctx context.Context, req dto.CreateBonoRequest) (*dto.BonoResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BonoResponse, error)
	List(ctx context.Context, skip, limit int, userID, sessionID *uuid.UUID) ([]dto.BonoResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBonoRequest, actorTier int) (*dto.BonoResponse, error)
	Delete(ctx context.Context, id uuid.UUID, actorTier int) error
}

type bonoService struct {
	bonos    repository.BonoRepository
	users    repository.UserRepository
	sessions repository.SessionRepository
}

func NewBonoService(bonos repository.BonoRepository, users repository.UserRepository, sessions repository.SessionRepository) BonoService {
	return &bonoService{bonos: bonos, users: users, sessions: sessions}
}

func (s *bonoService) Create(ctx context.Context, req dto.CreateBonoRequest) (*dto.BonoResponse, error) {
	userID, sess, err := resolveLedgerRefs(ctx, s.users, s.sessions, req.UserID, req.SessionID)
	if err != nil {
		return nil, err
	}
	bono := &model.Bono{
		UserID:    userID,
		SessionID: sess.ID,
		Value:     req.Value,
		Comment:   req.Comment,
	}
	if err := s.bonos.Create(ctx, bono); err != nil {
		return nil, err
	}
	return bonoToResponse(bono), nil
}

func (s *bonoService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BonoResponse, error) {
	bono, err := s.bonos.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Bono no encontrado")
	}
	return bonoToResponse(bono), nil
}

func (s *bonoService) List(ctx context.Context, skip, limit int, userID, sessionID *uuid.UUID) ([]dto.BonoResponse, error) {
	var (
		bonos []model.Bono
		err   error
	)
	switch {
	case userID != nil:
		bonos, err = s.bonos.ListByUser(ctx, *userID, skip, limit)
	case sessionID != nil:
		bonos, err = s.bonos.ListBySession(ctx, *sessionID, skip, limit)
	default:
		bonos, err = s.bonos.List(ctx, skip, limit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.BonoResponse, len(bonos))
	for i := range bonos {
		out[i] = *bonoToResponse(&bonos[i])
	}
	return out, nil
}

func (s *bonoService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBonoRequest, actorTier int) (*dto.BonoResponse, error) {
	bono, err := s.bonos.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Bono no encontrado")
	}
	if err := guardSessionLock(ctx, s.sessions, bono.SessionID, actorTier); err != nil {
		return nil, err
	}
	if req.Value != nil {
		bono.Value = *req.Value
	}
	if req.Comment != nil {
		bono.Comment = req.Comment
	}
	if err := s.bonos.Update(ctx, bono); err != nil {
		return nil, err
	}
	return bonoToResponse(bono), nil
}

func (s *bonoService) Delete(ctx context.Context, id uuid.UUID, actorTier int) error {
	bono, err := s.bonos.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "Bono no encontrado")
	}
	if err := guardSessionLock(ctx, s.sessions, bono.SessionID, actorTier); err != nil {
		return err
	}
	return s.bonos.Delete(ctx, id)
}

func bonoToResponse(b *model.Bono) *dto.BonoResponse {
	return &dto.BonoResponse{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		SessionID: b.SessionID.String(),
		Value:     b.Value,
		Comment:   b.Comment,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}
