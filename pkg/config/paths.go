package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
)

const homeDirName = ".termfolio"

// HomeDir returns the termfolio settings directory. TERMFOLIO_HOME wins over ~/.termfolio.
func HomeDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return homedir.Expand(dir)
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, homeDirName), nil
}

// EnsureHomeDir creates the settings directory if needed and returns it
func EnsureHomeDir() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, nil
}

// LoadDotEnv loads .env from the working directory and then from the settings
// directory. Variables already present in the environment are never overridden,
// so the working-directory file wins over the home one.
func LoadDotEnv() error {
	paths := []string{".env"}
	if dir, err := HomeDir(); err == nil {
		paths = append(paths, filepath.Join(dir, ".env"))
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}
