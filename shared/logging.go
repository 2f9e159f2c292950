package shared

import (
	"bytes"
	"io"
	"regexp"
	"strings"
)

// ExtractPackagePath reduces a full source path to a stable, readable
// package-relative path. It strips the repo/module root while preserving
// subpackages (e.g. slideconfirm/widget.go). For non-project paths (deps,
// stdlib), it returns the original string.
func ExtractPackagePath(p string) string {
	// Normalize for matching; we output forward slashes for our own paths.
	norm := strings.ReplaceAll(p, "\\", "/")

	// Strip the module root when present (dev builds, or builds without -trimpath).
	if idx := strings.LastIndex(norm, "/confirmpanel/"); idx >= 0 {
		return norm[idx+len("/confirmpanel/"):]
	}
	if strings.HasPrefix(norm, "confirmpanel/") {
		return norm[len("confirmpanel/"):]
	}

	// Already one of our package roots: keep as-is.
	for _, prefix := range []string{"slideconfirm/", "shared/"} {
		if strings.HasPrefix(norm, prefix) {
			return norm
		}
	}

	// Unknown origin (deps, stdlib, etc.) - leave unchanged.
	return p
}

// NewLogPathShorteningWriter returns a writer that rewrites stdlib log output
// so the file path portion is shortened using ExtractPackagePath.
func NewLogPathShorteningWriter(underlying io.Writer) io.Writer {
	return &logPathShorteningWriter{underlying: underlying}
}

type logPathShorteningWriter struct {
	underlying io.Writer
}

// Matches the "<file>.go:<line>:" location stamp produced by Llongfile or
// Lshortfile. The message itself may contain ':' so the path is required to
// end in ".go" followed by a line number.
var logLocation = regexp.MustCompile(`(\S+\.go):(\d+):`)

func (w *logPathShorteningWriter) Write(p []byte) (int, error) {
	// log.Printf typically writes a single line, but be resilient.
	var buf bytes.Buffer
	buf.Grow(len(p))
	for _, line := range bytes.SplitAfter(p, []byte("\n")) {
		buf.Write(shortenLogLine(line))
	}
	if _, err := w.underlying.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

func shortenLogLine(line []byte) []byte {
	loc := logLocation.FindSubmatchIndex(line)
	if loc == nil {
		return line
	}
	start, end := loc[2], loc[3] // the path capture, without the line number
	orig := string(line[start:end])
	short := ExtractPackagePath(orig)
	if short == orig {
		return line
	}

	out := make([]byte, 0, len(line)-len(orig)+len(short))
	out = append(out, line[:start]...)
	out = append(out, short...)
	out = append(out, line[end:]...)
	return out
}
