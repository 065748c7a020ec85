package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the connection settings spotctl needs to reach the
// TwinSync Spot backend.
type Config struct {
	ServerURL   string
	IngressPath string
	Token       string
	PollSeconds int
}

const (
	defaultConfigPath  = "~/.config/spotctl/config.toml"
	defaultServerURL   = "http://127.0.0.1:8099"
	defaultPollSeconds = 30
)

// Load locates and parses the spotctl config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{ServerURL: defaultServerURL, PollSeconds: defaultPollSeconds}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ServerURL   string `toml:"server_url"`
		IngressPath string `toml:"ingress_path"`
		Token       string `toml:"token"`
		PollSeconds int    `toml:"poll_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.ServerURL = strings.TrimSpace(raw.ServerURL)
	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}

	cfg.IngressPath = strings.TrimSpace(raw.IngressPath)
	cfg.Token = strings.TrimSpace(raw.Token)

	cfg.PollSeconds = raw.PollSeconds
	if cfg.PollSeconds <= 0 {
		cfg.PollSeconds = defaultPollSeconds
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
