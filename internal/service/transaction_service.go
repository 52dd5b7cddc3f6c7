package service

import (
	"context"
	"time"

	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/repository"

	"github.com/google/uuid"
)

type TransactionService interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error)
	List(ctx context.Context, skip, limit int, userID, sessionID *uuid.UUID) ([]dto.TransactionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateTransactionRequest, actorTier int) (*dto.TransactionResponse, error)
	Delete(ctx context.Context, id uuid.UUID, actorTier int) error
}

type transactionService struct {
	transactions repository.TransactionRepository
	users        repository.UserRepository
	sessions     repository.SessionRepository
}

func NewTransactionService(transactions repository.TransactionRepository, users repository.UserRepository, sessions repository.SessionRepository) TransactionService {
	return &transactionService{transactions: transactions, users: users, sessions: sessions}
}

func (s *transactionService) Create(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	userID, sess, err := resolveLedgerRefs(ctx, s.users, s.sessions, req.UserID, req.SessionID)
	if err != nil {
		return nil, err
	}
	tx := &model.Transaction{
		UserID:           userID,
		SessionID:        sess.ID,
		Cantidad:         req.Cantidad,
		OperationType:    req.OperationType,
		TransactionMedia: req.TransactionMedia,
		Comment:          req.Comment,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return transactionToResponse(tx), nil
}

func (s *transactionService) GetByID(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Transacción no encontrada")
	}
	return transactionToResponse(tx), nil
}

func (s *transactionService) List(ctx context.Context, skip, limit int, userID, sessionID *uuid.UUID) ([]dto.TransactionResponse, error) {
	var (
		txs []model.Transaction
		err error
	)
	switch {
	case userID != nil:
		txs, err = s.transactions.ListByUser(ctx, *userID, skip, limit)
	case sessionID != nil:
		txs, err = s.transactions.ListBySession(ctx, *sessionID, skip, limit)
	default:
		txs, err = s.transactions.List(ctx, skip, limit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, len(txs))
	for i := range txs {
		out[i] = *transactionToResponse(&txs[i])
	}
	return out, nil
}

func (s *transactionService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTransactionRequest, actorTier int) (*dto.TransactionResponse, error) {
	tx, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Transacción no encontrada")
	}
	if err := guardSessionLock(ctx, s.sessions, tx.SessionID, actorTier); err != nil {
		return nil, err
	}
	if req.Cantidad != nil {
		tx.Cantidad = *req.Cantidad
	}
	if req.OperationType != nil {
		tx.OperationType = *req.OperationType
	}
	if req.TransactionMedia != nil {
		tx.TransactionMedia = *req.TransactionMedia
	}
	if req.Comment != nil {
		tx.Comment = req.Comment
	}
	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}
	return transactionToResponse(tx), nil
}

func (s *transactionService) Delete(ctx context.Context, id uuid.UUID, actorTier int) error {
	tx, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "Transacción no encontrada")
	}
	if err := guardSessionLock(ctx, s.sessions, tx.SessionID, actorTier); err != nil {
		return err
	}
	return s.transactions.Delete(ctx, id)
}

func transactionToResponse(t *model.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:               t.ID.String(),
		UserID:           t.UserID.String(),
		SessionID:        t.SessionID.String(),
		Cantidad:         t.Cantidad,
		OperationType:    t.OperationType,
		TransactionMedia: t.TransactionMedia,
		SignedAmount:     t.SignedAmount(),
		Comment:          t.Comment,
		CreatedAt:        t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        t.UpdatedAt.Format(time.RFC3339),
	}
}
