package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	swaperrors "github.com/arthur-debert/swap/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the effective configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, swaperrors.Wrap(err, swaperrors.ErrConfigParse,
			"failed to load built-in defaults")
	}

	// 2. User config file, if one exists
	for _, rel := range []string{"swap/config.toml", "swap/config.yaml"} {
		path, err := xdg.SearchConfigFile(rel)
		if err != nil {
			continue
		}
		var parser koanf.Parser = toml.Parser()
		if strings.HasSuffix(path, ".yaml") {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, swaperrors.Wrapf(err, swaperrors.ErrConfigLoad,
				"failed to load config from %s", path)
		}
		break
	}

	// 3. Environment overrides: SWAP_TEMP_ATTEMPTS, SWAP_PROTECTED_PATHS
	if err := k.Load(env.Provider("SWAP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SWAP_"))
	}), nil); err != nil {
		return nil, swaperrors.Wrap(err, swaperrors.ErrConfigLoad,
			"failed to load environment overrides")
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, swaperrors.Wrap(err, swaperrors.ErrConfigParse,
			"failed to unmarshal configuration")
	}
	return &cfg, nil
}

// LoadFile parses a single config file, layered over the built-in
// defaults. Used by tests and by callers that bypass XDG discovery.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, swaperrors.Wrapf(err, swaperrors.ErrConfigLoad,
			"cannot read config file %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, swaperrors.Wrap(err, swaperrors.ErrConfigParse,
			"failed to load built-in defaults")
	}

	var parser koanf.Parser = toml.Parser()
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		parser = yaml.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, swaperrors.Wrapf(err, swaperrors.ErrConfigLoad,
			"failed to load config from %s", path)
	}

	return unmarshal(k)
}

// Default returns the built-in configuration with no user overrides.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults are compiled in; a parse failure here is
		// a build defect, not a runtime condition.
		panic(err)
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(err)
	}
	return cfg
}
