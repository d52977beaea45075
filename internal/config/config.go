package config

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/afero"

	"phosync/internal/domain"
	apperrors "phosync/internal/errors"
)

const (
	// DefaultPath is where the CLI looks for the configuration file
	// unless --config points elsewhere.
	DefaultPath = "~/.phosync.conf"

	defaultLogDir = "~/.phosync/logs"
)

// Config holds the sync settings. Loaded once at startup; immutable
// thereafter.
type Config struct {
	SourceRoot string
	DestRoot   string
	LogDir     string
	RsyncPath  string
	Catalogs   []domain.CatalogPair
}

// Load reads a key=value configuration file. Lines starting with # and
// blank lines are ignored; values may be single- or double-quoted.
// Unknown keys are ignored so older binaries tolerate newer files.
func Load(fs afero.Fs, path string) (Config, error) {
	file, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, apperrors.Wrap(apperrors.ConfigMissing, "load", path, err)
		}
		return Config{}, apperrors.Wrap(apperrors.IOFailure, "load", path, err)
	}
	defer file.Close()

	cfg := Config{LogDir: defaultLogDir}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		switch key {
		case "source_root":
			cfg.SourceRoot = value
		case "dest_root":
			cfg.DestRoot = value
		case "log_dir":
			if value != "" {
				cfg.LogDir = value
			}
		case "rsync_path":
			cfg.RsyncPath = value
		case "catalogs":
			cfg.Catalogs = parseCatalogs(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, apperrors.Wrap(apperrors.IOFailure, "load", path, err)
	}

	if cfg.SourceRoot == "" || cfg.DestRoot == "" {
		return Config{}, apperrors.Wrap(apperrors.ConfigIncomplete, "load", path,
			errors.New("source_root and dest_root are required"))
	}

	return cfg, nil
}

// parseCatalogs splits a comma-separated list of source:dest pairs,
// preserving order. A pair without a colon keeps an empty destination;
// the orchestrator skips it with a warning.
func parseCatalogs(value string) []domain.CatalogPair {
	var pairs []domain.CatalogPair
	for _, raw := range strings.Split(value, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		src, dst, _ := strings.Cut(raw, ":")
		pairs = append(pairs, domain.CatalogPair{Source: src, Dest: dst})
	}
	return pairs
}
