package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/patterns/internal/demo"
	"github.com/harrison/patterns/internal/factory"
)

func TestRunAll(t *testing.T) {
	for _, args := range [][]string{{"run"}, {"run", "--all"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			output, err := execute(t, args...)
			require.NoError(t, err)

			last := -1
			for _, title := range []string{"Adapter", "Decorator", "Factory Method", "Observer", "Singleton", "Visitor"} {
				header := "====== [" + title + " Design Pattern] ======"
				idx := strings.Index(output, header)
				require.GreaterOrEqual(t, idx, 0, "missing %s", header)
				assert.Greater(t, idx, last, "%s out of order", title)
				last = idx
				assert.Contains(t, output, "✅ "+title+" pattern simulation finished")
			}
		})
	}
}

func TestRunAllWithNamesFails(t *testing.T) {
	_, err := execute(t, "run", "--all", "visitor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--all")
}

func TestRunUnknownDemo(t *testing.T) {
	_, err := execute(t, "run", "visitor", "builder")
	require.Error(t, err)
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "adapter amount",
			args: []string{"run", "adapter", "--amount", "5000"},
			want: []string{"Processed 5000 won"},
		},
		{
			name: "decorator channels and message",
			args: []string{"run", "decorator", "--channels", "slack", "--message", "disk full"},
			want: []string{"📢 Basic notification: disk full", "💬 Slack sent: disk full"},
		},
		{
			name: "factory os",
			args: []string{"run", "factory", "--os", "mac"},
			want: []string{"✅ OS detected: Mac"},
		},
		{
			name: "observer prices and threshold",
			args: []string{"run", "observer", "--prices", "130", "--threshold", "150"},
			want: []string{"📈 Stock price update: 0 → 130", "Holding in the stable range (130)"},
		},
		{
			name: "visitor format and indent",
			args: []string{"run", "visitor", "--format", "yaml", "--indent", "4"},
			want: []string{"      📄 File: a.txt", "kind: file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestRunInvalidFlagValue(t *testing.T) {
	_, err := execute(t, "run", "adapter", "--amount", "-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adapter.amount")

	_, err = execute(t, "run", "visitor", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record_format")
}

func TestRunDemoFailure(t *testing.T) {
	output, err := execute(t, "run", "factory", "--os", "linux")
	require.Error(t, err)
	assert.True(t, demo.IsRunError(err))
	assert.ErrorIs(t, err, factory.ErrUnsupportedOS)
	assert.Contains(t, output, "❌ Unsupported OS type: linux")
}

func TestRunUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decorator:\n  message: from file\n  channels: [sms]\n"), 0644))

	output, err := execute(t, "run", "decorator", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, output, "📱 SMS sent: from file")
	assert.NotContains(t, output, "Email sent")
}

func TestRunDebugShowsSession(t *testing.T) {
	output, err := execute(t, "run", "singleton", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, output, "[DEBUG] session ")
	assert.Contains(t, output, "1/1 (100%)")
}
