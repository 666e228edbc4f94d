// Package decorator demonstrates the Decorator pattern with a notifier
// that gains delivery channels by being wrapped at runtime.
package decorator

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// DefaultMessage is the alert sent by the demo.
const DefaultMessage = "🚨 Emergency: server outage detected!"

// ErrUnknownChannel is returned by Wrap for an unsupported channel name.
var ErrUnknownChannel = errors.New("unknown notification channel")

// Channel names accepted by Wrap.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelSlack = "slack"
	ChannelPush  = "push"
)

// DefaultChannels is the wrapping order used by the demo.
var DefaultChannels = []string{ChannelEmail, ChannelSMS, ChannelSlack, ChannelPush}

// Notifier sends a message.
type Notifier interface {
	Send(message string)
}

// BaseNotifier is the undecorated component.
type BaseNotifier struct {
	out io.Writer
}

// NewBaseNotifier creates the base component.
func NewBaseNotifier(out io.Writer) *BaseNotifier {
	return &BaseNotifier{out: out}
}

// Send narrates the basic notification.
func (n *BaseNotifier) Send(message string) {
	fmt.Fprintf(n.out, "📢 Basic notification: %s\n", message)
}

// EmailNotifier adds e-mail delivery to the wrapped notifier.
type EmailNotifier struct {
	Notifier
	out io.Writer
}

// NewEmailNotifier wraps n.
func NewEmailNotifier(out io.Writer, n Notifier) *EmailNotifier {
	return &EmailNotifier{Notifier: n, out: out}
}

// Send delivers through the wrapped notifier, then by e-mail.
func (n *EmailNotifier) Send(message string) {
	n.Notifier.Send(message)
	fmt.Fprintf(n.out, "📧 Email sent: %s\n", message)
}

// SMSNotifier adds SMS delivery to the wrapped notifier.
type SMSNotifier struct {
	Notifier
	out io.Writer
}

// NewSMSNotifier wraps n.
func NewSMSNotifier(out io.Writer, n Notifier) *SMSNotifier {
	return &SMSNotifier{Notifier: n, out: out}
}

// Send delivers through the wrapped notifier, then by SMS.
func (n *SMSNotifier) Send(message string) {
	n.Notifier.Send(message)
	fmt.Fprintf(n.out, "📱 SMS sent: %s\n", message)
}

// SlackNotifier adds Slack delivery to the wrapped notifier.
type SlackNotifier struct {
	Notifier
	out io.Writer
}

// NewSlackNotifier wraps n.
func NewSlackNotifier(out io.Writer, n Notifier) *SlackNotifier {
	return &SlackNotifier{Notifier: n, out: out}
}

// Send delivers through the wrapped notifier, then to Slack.
func (n *SlackNotifier) Send(message string) {
	n.Notifier.Send(message)
	fmt.Fprintf(n.out, "💬 Slack sent: %s\n", message)
}

// PushNotifier adds push delivery to the wrapped notifier.
type PushNotifier struct {
	Notifier
	out io.Writer
}

// NewPushNotifier wraps n.
func NewPushNotifier(out io.Writer, n Notifier) *PushNotifier {
	return &PushNotifier{Notifier: n, out: out}
}

// Send delivers through the wrapped notifier, then as a push notification.
func (n *PushNotifier) Send(message string) {
	n.Notifier.Send(message)
	fmt.Fprintf(n.out, "📲 Push sent: %s\n", message)
}

var wrappers = map[string]func(io.Writer, Notifier) Notifier{
	ChannelEmail: func(out io.Writer, n Notifier) Notifier { return NewEmailNotifier(out, n) },
	ChannelSMS:   func(out io.Writer, n Notifier) Notifier { return NewSMSNotifier(out, n) },
	ChannelSlack: func(out io.Writer, n Notifier) Notifier { return NewSlackNotifier(out, n) },
	ChannelPush:  func(out io.Writer, n Notifier) Notifier { return NewPushNotifier(out, n) },
}

// Channels returns the supported channel names, sorted.
func Channels() []string {
	names := make([]string, 0, len(wrappers))
	for name := range wrappers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Wrap decorates base with each channel in order. The first channel is
// innermost, so its line is printed right after the base notification.
func Wrap(out io.Writer, base Notifier, channels ...string) (Notifier, error) {
	n := base
	for _, ch := range channels {
		wrap, ok := wrappers[strings.ToLower(strings.TrimSpace(ch))]
		if !ok {
			return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownChannel, ch, strings.Join(Channels(), ", "))
		}
		n = wrap(out, n)
	}
	return n, nil
}

// Run builds the notifier chain from channels and sends message once.
func Run(out io.Writer, message string, channels []string) error {
	n, err := Wrap(out, NewBaseNotifier(out), channels...)
	if err != nil {
		return err
	}
	n.Send(message)
	return nil
}
