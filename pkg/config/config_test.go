package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	orig, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(orig) })
	_ = os.Chdir(tmp)
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	return tmp
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Groq.Model != defaultGroqModel {
		t.Errorf("Groq.Model = %q, want %q", cfg.Groq.Model, defaultGroqModel)
	}
	if cfg.Groq.Temperature != 0.7 {
		t.Errorf("Groq.Temperature = %v, want 0.7", cfg.Groq.Temperature)
	}
	if cfg.Groq.MaxTokens != 150 {
		t.Errorf("Groq.MaxTokens = %d, want 150", cfg.Groq.MaxTokens)
	}
	if cfg.Images.MaxTotal != 10 {
		t.Errorf("Images.MaxTotal = %d, want 10", cfg.Images.MaxTotal)
	}
	if cfg.Images.MinPerTerm != 2 {
		t.Errorf("Images.MinPerTerm = %d, want 2", cfg.Images.MinPerTerm)
	}
	if !strings.HasSuffix(cfg.Images.BaseDir, filepath.Join("Downloads", "reel-images")) {
		t.Errorf("Images.BaseDir = %q, want a Downloads/reel-images suffix", cfg.Images.BaseDir)
	}
}

func TestLoadFromYAML(t *testing.T) {
	tmp := chdirTemp(t)

	yaml := `
groq:
  model: test-model
  max_tokens: 99
images:
  max_total: 5
  base_dir: /tmp/test-images
`
	_ = os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte(yaml), 0644)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Groq.Model != "test-model" {
		t.Errorf("Groq.Model = %q, want test-model", cfg.Groq.Model)
	}
	if cfg.Groq.MaxTokens != 99 {
		t.Errorf("Groq.MaxTokens = %d, want 99", cfg.Groq.MaxTokens)
	}
	if cfg.Images.MaxTotal != 5 {
		t.Errorf("Images.MaxTotal = %d, want 5", cfg.Images.MaxTotal)
	}
	if cfg.Images.BaseDir != "/tmp/test-images" {
		t.Errorf("Images.BaseDir = %q, want /tmp/test-images", cfg.Images.BaseDir)
	}
	if cfg.Images.MinPerTerm != 2 {
		t.Errorf("Images.MinPerTerm = %d, want default 2", cfg.Images.MinPerTerm)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmp := chdirTemp(t)

	_ = os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte("groq: [broken"), 0644)

	if _, err := Load(context.Background()); err == nil {
		t.Error("Load() should fail on malformed config.yaml")
	}
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)

	t.Setenv("GROQ_API_KEY", "test-groq")
	t.Setenv("PEXELS_API_KEY", "test-pexels")
	t.Setenv("UNSPLASH_ACCESS_KEY", "test-unsplash")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.GroqAPIKey != "test-groq" {
		t.Errorf("GroqAPIKey = %q, want test-groq", cfg.GroqAPIKey)
	}
	if cfg.PexelsAPIKey != "test-pexels" {
		t.Errorf("PexelsAPIKey = %q, want test-pexels", cfg.PexelsAPIKey)
	}
	if cfg.UnsplashAccessKey != "test-unsplash" {
		t.Errorf("UnsplashAccessKey = %q, want test-unsplash", cfg.UnsplashAccessKey)
	}
	if len(cfg.MissingKeys()) != 0 {
		t.Errorf("MissingKeys() = %v, want empty", cfg.MissingKeys())
	}
}

func TestMissingKeys(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "allMissing",
			cfg:  Config{},
			want: []string{"GROQ_API_KEY", "PEXELS_API_KEY", "UNSPLASH_ACCESS_KEY"},
		},
		{
			name: "oneMissing",
			cfg:  Config{GroqAPIKey: "a", UnsplashAccessKey: "c"},
			want: []string{"PEXELS_API_KEY"},
		},
		{
			name: "noneMissing",
			cfg:  Config{GroqAPIKey: "a", PexelsAPIKey: "b", UnsplashAccessKey: "c"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.MissingKeys()
			if len(got) != len(tt.want) {
				t.Fatalf("MissingKeys() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MissingKeys()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
