package notifiers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/bank-ledger/internal/ledger"
	"github.com/sbilibin2017/bank-ledger/internal/logger"
	"github.com/sbilibin2017/bank-ledger/internal/models"
)

//go:generate mockgen -source=kafka.go -destination=mocks.go -package=notifiers

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaNotifier publishes a balance event to Kafka for every balance change.
type KafkaNotifier struct {
	writer KafkaWriter
}

// NewKafkaNotifier creates a notifier publishing through writer.
func NewKafkaNotifier(writer KafkaWriter) *KafkaNotifier {
	return &KafkaNotifier{writer: writer}
}

// OnBalanceChanged publishes a models.BalanceEvent keyed by account ID.
// Marshal and write errors propagate, aborting the notification round.
func (n *KafkaNotifier) OnBalanceChanged(ctx context.Context, account *ledger.Account) error {
	event := models.BalanceEvent{
		EventID:   uuid.NewString(),
		AccountID: account.ID().String(),
		Owner:     account.Owner().Name,
		Currency:  account.Currency(),
		Balance:   account.Balance().String(),
		Operation: account.LastOperation(),
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal balance event", "event_id", event.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.AccountID),
		Value: data,
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish balance event", "event_id", event.EventID, "error", err)
		return err
	}

	logger.Log.Infow("balance event published", "event_id", event.EventID, "account_id", event.AccountID, "balance", event.Balance)
	return nil
}

// Close closes the underlying writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
