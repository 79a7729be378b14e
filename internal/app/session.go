package app

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// session owns one run's output directory, named by a timestamp plus an
// optional sanitized label.
type session struct {
	id      string
	dir     string
	baseDir string
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_ ]+`)

func newSession(baseDir string) *session {
	return &session{
		id:      time.Now().Format("20060102_150405"),
		baseDir: baseDir,
	}
}

func (s *session) finalize(label string) error {
	name := s.id
	if sanitized := sanitizeForPath(label); sanitized != "" {
		name = fmt.Sprintf("%s_%s", s.id, sanitized)
	}

	s.dir = filepath.Join(s.baseDir, name)
	return os.MkdirAll(s.dir, 0755)
}

// sanitizeForPath strips characters outside [A-Za-z0-9-_ ], maps spaces
// to underscores, and caps the result at 30 characters.
func sanitizeForPath(s string) string {
	s = sanitizeRegex.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	if len(s) > 30 {
		s = s[:30]
	}
	return s
}
