// Package notifiers provides reference ledger.Subscriber implementations:
// human-readable channel renderers (SMS, email, push) and a Kafka publisher.
package notifiers

import (
	"context"
	"fmt"
	"io"

	"github.com/sbilibin2017/bank-ledger/internal/ledger"
)

// SMSNotifier renders balance changes as an SMS line to out.
type SMSNotifier struct {
	phone string
	out   io.Writer
}

// NewSMSNotifier creates a notifier addressed to the given phone number.
func NewSMSNotifier(phone string, out io.Writer) *SMSNotifier {
	return &SMSNotifier{phone: phone, out: out}
}

// OnBalanceChanged writes one line describing the new balance.
func (n *SMSNotifier) OnBalanceChanged(_ context.Context, account *ledger.Account) error {
	_, err := fmt.Fprintf(n.out, "SMS to %s: balance of %s is now %s %s\n",
		n.phone, account.Owner().Name, account.Balance(), account.Currency())
	return err
}

// EmailNotifier renders balance changes as an email line to out.
type EmailNotifier struct {
	address string
	out     io.Writer
}

// NewEmailNotifier creates a notifier addressed to the given email address.
func NewEmailNotifier(address string, out io.Writer) *EmailNotifier {
	return &EmailNotifier{address: address, out: out}
}

// OnBalanceChanged writes one line describing the new balance.
func (n *EmailNotifier) OnBalanceChanged(_ context.Context, account *ledger.Account) error {
	_, err := fmt.Fprintf(n.out, "Email to %s: balance of %s is now %s %s\n",
		n.address, account.Owner().Name, account.Balance(), account.Currency())
	return err
}

// PushNotifier renders balance changes as a push-notification line to out.
type PushNotifier struct {
	deviceID string
	out      io.Writer
}

// NewPushNotifier creates a notifier addressed to the given device.
func NewPushNotifier(deviceID string, out io.Writer) *PushNotifier {
	return &PushNotifier{deviceID: deviceID, out: out}
}

// OnBalanceChanged writes one line describing the new balance.
func (n *PushNotifier) OnBalanceChanged(_ context.Context, account *ledger.Account) error {
	_, err := fmt.Fprintf(n.out, "Push to %s: balance of %s is now %s %s\n",
		n.deviceID, account.Owner().Name, account.Balance(), account.Currency())
	return err
}
