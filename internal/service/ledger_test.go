package service

import (
	"context"
	"testing"
	"time"

	"github.com/maesedev/dealership-project/internal/apierror"
	"github.com/maesedev/dealership-project/internal/dto"
	"github.com/maesedev/dealership-project/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	player   *model.User
	open     *model.Session
	closed   *model.Session
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	f := &ledgerFixture{
		users:    newFakeUserRepo(),
		sessions: newFakeSessionRepo(),
	}
	f.player = seedAccount(t, f.users, "jugador@casa.co", "x", []string{"USER"}, true)

	f.open = &model.Session{DealerID: uuid.New(), StartTime: time.Now().Add(-time.Hour)}
	require.NoError(t, f.sessions.Create(context.Background(), f.open))

	endedAt := time.Now().Add(-time.Minute)
	f.closed = &model.Session{
		DealerID:  uuid.New(),
		StartTime: time.Now().Add(-2 * time.Hour),
		EndTime:   &endedAt,
	}
	require.NoError(t, f.sessions.Create(context.Background(), f.closed))
	return f
}

func TestCreateTransactionOnOpenSession(t *testing.T) {
	f := newLedgerFixture(t)
	txRepo := newFakeTransactionRepo()
	svc := NewTransactionService(txRepo, f.users, f.sessions)

	resp, err := svc.Create(context.Background(), dto.CreateTransactionRequest{
		UserID:           f.player.ID.String(),
		SessionID:        f.open.ID.String(),
		Cantidad:         decimal.RequireFromString("50000"),
		OperationType:    model.OperationCashOut,
		TransactionMedia: model.MediaCash,
	})
	require.NoError(t, err)
	assert.True(t, resp.SignedAmount.Equal(decimal.RequireFromString("-50000")))
}

func TestCreateTransactionRejectsClosedSession(t *testing.T) {
	f := newLedgerFixture(t)
	svc := NewTransactionService(newFakeTransactionRepo(), f.users, f.sessions)

	_, err := svc.Create(context.Background(), dto.CreateTransactionRequest{
		UserID:           f.player.ID.String(),
		SessionID:        f.closed.ID.String(),
		Cantidad:         decimal.RequireFromString("100"),
		OperationType:    model.OperationCashIn,
		TransactionMedia: model.MediaDigital,
	})
	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindState, kind)
}

func TestCreateTransactionRejectsMissingRefs(t *testing.T) {
	f := newLedgerFixture(t)
	svc := NewTransactionService(newFakeTransactionRepo(), f.users, f.sessions)

	_, err := svc.Create(context.Background(), dto.CreateTransactionRequest{
		UserID:           uuid.NewString(),
		SessionID:        f.open.ID.String(),
		Cantidad:         decimal.RequireFromString("100"),
		OperationType:    model.OperationCashIn,
		TransactionMedia: model.MediaCash,
	})
	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindNotFound, kind)

	_, err = svc.Create(context.Background(), dto.CreateTransactionRequest{
		UserID:           f.player.ID.String(),
		SessionID:        uuid.NewString(),
		Cantidad:         decimal.RequireFromString("100"),
		OperationType:    model.OperationCashIn,
		TransactionMedia: model.MediaCash,
	})
	require.Error(t, err)
	kind, _ = apierror.KindOf(err)
	assert.Equal(t, apierror.KindNotFound, kind)
}

func TestTransactionEditLockedAfterSessionClose(t *testing.T) {
	f := newLedgerFixture(t)
	txRepo := newFakeTransactionRepo()
	svc := NewTransactionService(txRepo, f.users, f.sessions)

	created, err := svc.Create(context.Background(), dto.CreateTransactionRequest{
		UserID:           f.player.ID.String(),
		SessionID:        f.open.ID.String(),
		Cantidad:         decimal.RequireFromString("100"),
		OperationType:    model.OperationCashIn,
		TransactionMedia: model.MediaCash,
	})
	require.NoError(t, err)
	txID := uuid.MustParse(created.ID)

	// Close the session underneath the event.
	sess, err := f.sessions.FindByID(context.Background(), f.open.ID)
	require.NoError(t, err)
	now := time.Now()
	sess.EndTime = &now
	require.NoError(t, f.sessions.Update(context.Background(), sess))

	_, err = svc.Update(context.Background(), txID,
		dto.UpdateTransactionRequest{Cantidad: decPtr("200")}, model.RoleDealer.Tier())
	require.Error(t, err)
	kind, _ := apierror.KindOf(err)
	assert.Equal(t, apierror.KindForbidden, kind)

	err = svc.Delete(context.Background(), txID, model.RoleDealer.Tier())
	require.Error(t, err)

	// Manager may still correct the record.
	updated, err := svc.Update(context.Background(), txID,
		dto.UpdateTransactionRequest{Cantidad: decPtr("200")}, model.RoleManager.Tier())
	require.NoError(t, err)
	assert.True(t, updated.Cantidad.Equal(decimal.RequireFromString("200")))

	require.NoError(t, svc.Delete(context.Background(), txID, model.RoleManager.Tier()))
}

func TestBonoLifecycle(t *testing.T) {
	f := newLedgerFixture(t)
	svc := NewBonoService(newFakeBonoRepo(), f.users, f.sessions)

	created, err := svc.Create(context.Background(), dto.CreateBonoRequest{
		UserID:    f.player.ID.String(),
		SessionID: f.open.ID.String(),
		Value:     decimal.RequireFromString("25000"),
	})
	require.NoError(t, err)

	id := uuid.MustParse(created.ID)
	updated, err := svc.Update(context.Background(), id,
		dto.UpdateBonoRequest{Value: decPtr("30000")}, model.RoleDealer.Tier())
	require.NoError(t, err)
	assert.True(t, updated.Value.Equal(decimal.RequireFromString("30000")))

	_, err = svc.Create(context.Background(), dto.CreateBonoRequest{
		UserID:    f.player.ID.String(),
		SessionID: f.closed.ID.String(),
		Value:     decimal.RequireFromString("1"),
	})
	assert.Error(t, err)
}

func TestJackpotPrizeCarriesWinnerHand(t *testing.T) {
	f := newLedgerFixture(t)
	svc := NewJackpotPrizeService(newFakeJackpotRepo(), f.users, f.sessions)

	hand := "escalera real de corazones"
	created, err := svc.Create(context.Background(), dto.CreateJackpotPrizeRequest{
		UserID:     f.player.ID.String(),
		SessionID:  f.open.ID.String(),
		Value:      decimal.RequireFromString("500000"),
		WinnerHand: &hand,
	})
	require.NoError(t, err)
	require.NotNil(t, created.WinnerHand)
	assert.Equal(t, hand, *created.WinnerHand)

	list, err := svc.List(context.Background(), 0, 100, nil, &f.open.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
