package config

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// loadSecrets fills credentials missing from the environment from Google
// Secret Manager. Secret names mirror the environment variable names.
// Lookup failures are non-fatal; the credential gate in MissingKeys still
// catches anything left unset.
func (c *Config) loadSecrets(ctx context.Context) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		slog.Warn("Secret Manager unavailable", "project", c.GCPProject, "error", err)
		return
	}
	defer func() { _ = client.Close() }()

	targets := []struct {
		name  string
		value *string
	}{
		{"GROQ_API_KEY", &c.GroqAPIKey},
		{"PEXELS_API_KEY", &c.PexelsAPIKey},
		{"UNSPLASH_ACCESS_KEY", &c.UnsplashAccessKey},
	}

	for _, target := range targets {
		if *target.value != "" {
			continue
		}
		secret, err := c.accessSecret(ctx, client, target.name)
		if err != nil {
			slog.Debug("Secret not found", "name", target.name, "error", err)
			continue
		}
		*target.value = secret
	}
}

func (c *Config) accessSecret(ctx context.Context, client *secretmanager.Client, name string) (string, error) {
	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", c.GCPProject, name),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.GetPayload().GetData())), nil
}
