package notifiers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/bank-ledger/internal/ledger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
)

func TestKafkaNotifier_PublishesBalanceEvent(t *testing.T) {
	ctx := context.Background()
	account := newTestAccount(t, 100)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)

	var published kafka.Message
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			assert.Len(t, msgs, 1)
			published = msgs[0]
			return nil
		})

	account.Attach(NewKafkaNotifier(writer))
	assert.NoError(t, account.Deposit(ctx, decimal.NewFromInt(50)))

	assert.Equal(t, account.ID().String(), string(published.Key))

	var event models.BalanceEvent
	assert.NoError(t, json.Unmarshal(published.Value, &event))
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, account.ID().String(), event.AccountID)
	assert.Equal(t, "alice", event.Owner)
	assert.Equal(t, models.USD, event.Currency)
	assert.Equal(t, "150", event.Balance)
	assert.Equal(t, ledger.OpDeposit, event.Operation)
	assert.NotZero(t, event.Timestamp)
}

func TestKafkaNotifier_OperationLabels(t *testing.T) {
	ctx := context.Background()
	account := newTestAccount(t, 1000)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var operations []string
	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			var event models.BalanceEvent
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			operations = append(operations, event.Operation)
			return nil
		}).Times(3)

	account.Attach(NewKafkaNotifier(writer))

	tx := ledger.NewTransaction(account, decimal.NewFromInt(100), models.USD)
	assert.NoError(t, tx.Execute(ctx))
	assert.NoError(t, tx.Rollback(ctx))
	assert.NoError(t, account.Deposit(ctx, decimal.NewFromInt(10)))

	// Consumers can tell withdrawals, rollbacks, and deposits apart
	assert.Equal(t, []string{ledger.OpWithdraw, ledger.OpRollback, ledger.OpDeposit}, operations)
}

func TestKafkaNotifier_WriteErrorPropagates(t *testing.T) {
	ctx := context.Background()
	account := newTestAccount(t, 100)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))

	notifier := NewKafkaNotifier(writer)
	err := notifier.OnBalanceChanged(ctx, account)
	assert.EqualError(t, err, "broker unreachable")
}

func TestKafkaNotifier_FailureAbortsNotificationRound(t *testing.T) {
	ctx := context.Background()
	account := newTestAccount(t, 100)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))

	failing := NewKafkaNotifier(writer)
	account.Attach(failing)

	// The deposit itself commits; the notification failure surfaces to the caller
	err := account.Deposit(ctx, decimal.NewFromInt(50))
	assert.EqualError(t, err, "broker unreachable")
	assert.True(t, account.Balance().Equal(decimal.NewFromInt(150)))
}

func TestKafkaNotifier_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().Close().Return(nil)

	assert.NoError(t, NewKafkaNotifier(writer).Close())
}
