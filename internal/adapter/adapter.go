// Package adapter demonstrates the Adapter pattern: a client written
// against PaymentProcessor keeps working with a new gateway whose API has
// a different shape.
package adapter

import (
	"errors"
	"fmt"
	"io"
)

const separator = "--------------------------------"

// DefaultAmount is the payment amount used by the demo.
const DefaultAmount int64 = 1000

// ErrInvalidAmount is returned for zero or negative payment amounts.
var ErrInvalidAmount = errors.New("payment amount must be positive")

// PaymentProcessor is the interface existing client code depends on.
type PaymentProcessor interface {
	Pay(amount int64) error
}

// PaymentGateway is the new payment system. Its API does not match
// PaymentProcessor.
type PaymentGateway struct {
	out io.Writer
}

// NewPaymentGateway creates a gateway narrating to out.
func NewPaymentGateway(out io.Writer) *PaymentGateway {
	return &PaymentGateway{out: out}
}

// MakePayment processes value through the gateway.
func (g *PaymentGateway) MakePayment(value int64) {
	fmt.Fprintf(g.out, "💳 Processed %d won through the new payment gateway\n", value)
}

// PaymentAdapter exposes a PaymentGateway as a PaymentProcessor.
type PaymentAdapter struct {
	gateway *PaymentGateway
	out     io.Writer
}

// NewPaymentAdapter wraps gateway.
func NewPaymentAdapter(out io.Writer, gateway *PaymentGateway) *PaymentAdapter {
	return &PaymentAdapter{gateway: gateway, out: out}
}

// Pay translates the call into gateway.MakePayment.
func (a *PaymentAdapter) Pay(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	fmt.Fprintln(a.out, "🔁 Translating the payment request through the adapter...")
	a.gateway.MakePayment(amount)
	return nil
}

// ProcessPayment is client code that only knows PaymentProcessor.
func ProcessPayment(out io.Writer, p PaymentProcessor, amount int64) error {
	fmt.Fprintln(out, "💰 Requesting payment...")
	if err := p.Pay(amount); err != nil {
		return err
	}
	fmt.Fprintln(out, separator)
	return nil
}

// Run wires a new gateway behind the adapter and pays amount through the
// old client code path.
func Run(out io.Writer, amount int64) error {
	gateway := NewPaymentGateway(out)
	return ProcessPayment(out, NewPaymentAdapter(out, gateway), amount)
}
