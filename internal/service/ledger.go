package service

import (
	"context"
	"errors"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/model"
	"github.com/maesedev/dealership-project/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolveLedgerRefs parses and verifies the user and session a ledger event
// points at. The session must still be open: money events are recorded live,
// never back-dated into a closed shift.
func resolveLedgerRefs(ctx context.Context, users repository.UserRepository, sessions repository.SessionRepository, rawUserID, rawSessionID string) (uuid.UUID, *model.Session, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return uuid.Nil, nil, apierror.Validation("user_id inválido")
	}
	sessionID, err := uuid.Parse(rawSessionID)
	if err != nil {
		return uuid.Nil, nil, apierror.Validation("session_id inválido")
	}
	if _, err := users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil, apierror.NotFound("Usuario no encontrado")
		}
		return uuid.Nil, nil, err
	}
	sess, err := sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil, apierror.NotFound("Sesión no encontrada")
		}
		return uuid.Nil, nil, err
	}
	if !sess.IsOpen() {
		return uuid.Nil, nil, apierror.State("La sesión ya fue cerrada")
	}
	return userID, sess, nil
}

// guardSessionLock rejects edits to events of a closed session unless the
// actor is Manager or above.
func guardSessionLock(ctx context.Context, sessions repository.SessionRepository, sessionID uuid.UUID, actorTier int) error {
	sess, err := sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Sesión no encontrada")
		}
		return err
	}
	if !sess.IsOpen() && actorTier < model.RoleManager.Tier() {
		return apierror.Forbidden("Solo un manager puede modificar movimientos de una sesión cerrada")
	}
	return nil
}
