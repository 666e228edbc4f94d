// Package factory demonstrates the Factory Method pattern: a Dialog runs
// the same rendering steps while the concrete creator decides which
// Button to build.
package factory

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const separator = "--------------------------------"

// Supported OS types.
const (
	OSWindows = "Windows"
	OSMac     = "Mac"
)

// DefaultOSTypes is the order the demo renders dialogs in.
var DefaultOSTypes = []string{OSWindows, OSMac}

// ErrUnsupportedOS is returned when no creator exists for an OS type.
var ErrUnsupportedOS = errors.New("unsupported OS type")

// Button is the product.
type Button interface {
	Render()
	OnClick()
}

// WindowsButton is a Windows-styled button.
type WindowsButton struct {
	out io.Writer
}

func (b *WindowsButton) Render()  { fmt.Fprintln(b.out, "🪟 Rendering a Windows-style button") }
func (b *WindowsButton) OnClick() { fmt.Fprintln(b.out, "🪟 Handling a Windows button click") }

// MacButton is a macOS-styled button.
type MacButton struct {
	out io.Writer
}

func (b *MacButton) Render()  { fmt.Fprintln(b.out, "🍎 Rendering a Mac-style button") }
func (b *MacButton) OnClick() { fmt.Fprintln(b.out, "🍎 Handling a Mac button click") }

// Creator declares the factory method.
type Creator interface {
	CreateButton() Button
}

// WindowsCreator builds Windows buttons.
type WindowsCreator struct {
	out io.Writer
}

// CreateButton implements Creator.
func (c WindowsCreator) CreateButton() Button { return &WindowsButton{out: c.out} }

// MacCreator builds Mac buttons.
type MacCreator struct {
	out io.Writer
}

// CreateButton implements Creator.
func (c MacCreator) CreateButton() Button { return &MacButton{out: c.out} }

// Dialog holds the shared rendering logic and delegates button creation
// to its Creator.
type Dialog struct {
	out     io.Writer
	creator Creator
}

// NewDialogWith returns a dialog using creator.
func NewDialogWith(out io.Writer, creator Creator) *Dialog {
	return &Dialog{out: out, creator: creator}
}

// NewDialog picks the creator for osType (case-insensitive).
func NewDialog(out io.Writer, osType string) (*Dialog, error) {
	switch canonical(osType) {
	case OSWindows:
		return NewDialogWith(out, WindowsCreator{out: out}), nil
	case OSMac:
		return NewDialogWith(out, MacCreator{out: out}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOS, osType)
	}
}

// RenderDialog creates a button through the factory method and exercises it.
func (d *Dialog) RenderDialog() {
	fmt.Fprintln(d.out, "📦 Dialog rendering started")
	button := d.creator.CreateButton()
	button.Render()
	button.OnClick()
	fmt.Fprintln(d.out, "📦 Dialog rendering finished")
	fmt.Fprintln(d.out, separator)
}

// ClientApp renders the dialog for osType.
func ClientApp(out io.Writer, osType string) error {
	dialog, err := NewDialog(out, osType)
	if err != nil {
		fmt.Fprintf(out, "❌ Unsupported OS type: %s\n", osType)
		return err
	}
	fmt.Fprintf(out, "✅ OS detected: %s\n", canonical(osType))
	dialog.RenderDialog()
	return nil
}

// Run calls ClientApp for each OS type in order, stopping at the first
// unsupported one.
func Run(out io.Writer, osTypes []string) error {
	for _, osType := range osTypes {
		if err := ClientApp(out, osType); err != nil {
			return err
		}
	}
	return nil
}

func canonical(osType string) string {
	s := strings.TrimSpace(osType)
	switch {
	case strings.EqualFold(s, OSWindows):
		return OSWindows
	case strings.EqualFold(s, OSMac):
		return OSMac
	}
	return s
}
