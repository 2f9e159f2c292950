package shared

import (
	"bytes"
	"testing"
)

func TestExtractPackagePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"absolute module path", "/home/dev/confirmpanel/slideconfirm/widget.go", "slideconfirm/widget.go"},
		{"absolute root file", "/home/dev/confirmpanel/main.go", "main.go"},
		{"windows separators", "C:\\dev\\confirmpanel\\shared\\logging.go", "shared/logging.go"},
		{"relative module path", "confirmpanel/slideconfirm/scheduler.go", "slideconfirm/scheduler.go"},
		{"already package relative", "slideconfirm/gesture.go", "slideconfirm/gesture.go"},
		{"shared package", "shared/updatecheck.go", "shared/updatecheck.go"},
		{"dependency path untouched", "/go/pkg/mod/fyne.io/fyne/v2@v2.5.3/widget/button.go", "/go/pkg/mod/fyne.io/fyne/v2@v2.5.3/widget/button.go"},
		{"stdlib untouched", "/usr/local/go/src/net/http/server.go", "/usr/local/go/src/net/http/server.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPackagePath(tt.path); got != tt.want {
				t.Errorf("ExtractPackagePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestShortenLogLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			"long file stamp",
			"2026/08/29 10:00:00 /home/dev/confirmpanel/slideconfirm/widget.go:42: handle moved\n",
			"2026/08/29 10:00:00 slideconfirm/widget.go:42: handle moved\n",
		},
		{
			"message colons preserved",
			"2026/08/29 10:00:00 confirmpanel/launch.go:10: Panel:updateStatus ready\n",
			"2026/08/29 10:00:00 launch.go:10: Panel:updateStatus ready\n",
		},
		{
			"no stamp untouched",
			"plain output with no location\n",
			"plain output with no location\n",
		},
		{
			"foreign path untouched",
			"2026/08/29 10:00:00 /usr/local/go/src/net/http/server.go:3090: http: panic\n",
			"2026/08/29 10:00:00 /usr/local/go/src/net/http/server.go:3090: http: panic\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(shortenLogLine([]byte(tt.line))); got != tt.want {
				t.Errorf("shortenLogLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestLogPathShorteningWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewLogPathShorteningWriter(&buf)

	line := "2026/08/29 10:00:00 /home/dev/confirmpanel/config.go:12: loaded properties\n"
	n, err := w.Write([]byte(line))
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if n != len(line) {
		t.Errorf("Write returned %d, want the original length %d", n, len(line))
	}
	if got, want := buf.String(), "2026/08/29 10:00:00 config.go:12: loaded properties\n"; got != want {
		t.Errorf("written output = %q, want %q", got, want)
	}
}
