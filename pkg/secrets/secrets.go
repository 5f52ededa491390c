// Package secrets abstracts where deployment secrets (the JWT signing key,
// connection strings) come from. The identity core only ever sees the
// resolved value, never the source.
package secrets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Provider resolves a named secret at process start.
type Provider interface {
	Get(ctx context.Context, name string) (string, error)
}

// EnvProvider reads secrets from environment variables.
type EnvProvider struct{}

func (EnvProvider) Get(_ context.Context, name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("secret %q not set in environment", name)
	}
	return v, nil
}

// FileProvider reads secrets from files under Dir, one file per secret.
// This is the shape of a mounted parameter-store or secrets volume.
type FileProvider struct {
	Dir string
}

func (p FileProvider) Get(_ context.Context, name string) (string, error) {
	// Reject names that would escape the secrets directory.
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid secret name %q", name)
	}
	b, err := os.ReadFile(filepath.Join(p.Dir, name))
	if err != nil {
		return "", fmt.Errorf("read secret %q: %w", name, err)
	}
	v := strings.TrimSpace(string(b))
	if v == "" {
		return "", fmt.Errorf("secret %q is empty", name)
	}
	return v, nil
}

// FromSource returns the provider matching a config value ("env" or "file").
func FromSource(source, dir string) (Provider, error) {
	switch source {
	case "", "env":
		return EnvProvider{}, nil
	case "file":
		if dir == "" {
			return nil, fmt.Errorf("secrets source %q requires a directory", source)
		}
		return FileProvider{Dir: dir}, nil
	default:
		return nil, fmt.Errorf("unknown secrets source %q", source)
	}
}
