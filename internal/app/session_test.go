package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeForPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"specialCharsStripped", "Sunset! Beach #1", "Sunset_Beach_1"},
		{"allowedCharsKept", "cozy-cabin_2", "cozy-cabin_2"},
		{"spacesToUnderscores", "morning coffee", "morning_coffee"},
		{"truncatedTo30", strings.Repeat("a", 40), strings.Repeat("a", 30)},
		{"onlySpecialChars", "!@#$%", ""},
		{"surroundingSpacesTrimmed", "  hello  ", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeForPath(tt.input); got != tt.want {
				t.Errorf("sanitizeForPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSessionFinalize(t *testing.T) {
	tmp := t.TempDir()

	run := &session{id: "20240101_120000", baseDir: tmp}
	if err := run.finalize("Sunset! Beach #1"); err != nil {
		t.Fatalf("finalize() error: %v", err)
	}

	want := filepath.Join(tmp, "20240101_120000_Sunset_Beach_1")
	if run.dir != want {
		t.Errorf("dir = %q, want %q", run.dir, want)
	}

	info, err := os.Stat(run.dir)
	if err != nil {
		t.Fatalf("output directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("output path is not a directory")
	}
}

func TestSessionFinalizeWithoutLabel(t *testing.T) {
	tmp := t.TempDir()

	run := &session{id: "20240101_120000", baseDir: tmp}
	if err := run.finalize("!!!"); err != nil {
		t.Fatalf("finalize() error: %v", err)
	}

	if run.dir != filepath.Join(tmp, "20240101_120000") {
		t.Errorf("dir = %q, want bare timestamp when label sanitizes to nothing", run.dir)
	}
}

func TestNewSessionIDFormat(t *testing.T) {
	run := newSession(t.TempDir())
	if len(run.id) != 15 {
		t.Errorf("session id %q should be YYYYMMDD_HHMMSS", run.id)
	}
	if run.id[8] != '_' {
		t.Errorf("session id %q missing underscore separator", run.id)
	}
}
