package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	swaperrors "github.com/arthur-debert/swap/pkg/errors"
)

// WriteDefault writes the default configuration as TOML to path, creating
// parent directories as needed. It refuses to clobber an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return swaperrors.Newf(swaperrors.ErrConfigLoad,
			"Config file already exists: '%s'", path)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return swaperrors.Wrap(err, swaperrors.ErrConfigParse,
			"failed to marshal default config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return swaperrors.Wrapf(err, swaperrors.ErrConfigLoad,
			"failed to create config directory for '%s'", path)
	}

	return os.WriteFile(path, data, 0644)
}
