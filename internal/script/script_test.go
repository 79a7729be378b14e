package script

import (
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "doubleEmptyLineTerminates",
			input: "line one\nline two\n\n\nignored after terminator",
			want:  "line one\nline two",
		},
		{
			name:  "eofTerminates",
			input: "only line",
			want:  "only line",
		},
		{
			name:  "blankLineInsideScriptKept",
			input: "paragraph one\n\nparagraph two\n\n\n",
			want:  "paragraph one\n\nparagraph two",
		},
		{
			name:  "leadingEmptyLineDoesNotTerminate",
			input: "\nactual text\n",
			want:  "actual text",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespaceOnly",
			input: "   \n\n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Read() = %q, want %q", got, tt.want)
			}
		})
	}
}
