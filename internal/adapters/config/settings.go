package config

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/FloatyJellyfish/mod-updater/internal/build"
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/spf13/viper"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes every environment variable read by the settings.
const EnvPrefix = "MOD_UPDATER"

// ConfigEnvVar names an explicit settings file, overriding discovery.
const ConfigEnvVar = EnvPrefix + "_CONFIG"

// Settings holds the runtime configuration.
type Settings struct {
	RegistryURL  string        `mapstructure:"registry_url"`
	UserAgent    string        `mapstructure:"user_agent"`
	Concurrency  int           `mapstructure:"concurrency"`
	ManifestPath string        `mapstructure:"manifest_path"`
	PackPath     string        `mapstructure:"pack_path"`
	CatalogTTL   time.Duration `mapstructure:"catalog_ttl"`
	TraceFile    string        `mapstructure:"trace_file"`
	LogFormat    string        `mapstructure:"log_format"`
	// ConfigFile is the settings file that was read, if any.
	ConfigFile string `mapstructure:"-"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		RegistryURL:  domain.DefaultRegistryURL,
		UserAgent:    domain.UserAgent(build.Version),
		Concurrency:  runtime.NumCPU(),
		ManifestPath: domain.ManifestFileName,
		PackPath:     domain.PackFileName,
		CatalogTTL:   10 * time.Minute,
		LogFormat:    "pretty",
	}
}

// LoadSettings resolves settings from defaults, a settings file and MOD_UPDATER_* variables.
// The file is the one named by MOD_UPDATER_CONFIG, else mod-updater.yaml in dir,
// else mod-updater.yaml in the user config directory. A missing file is not an error.
func LoadSettings(dir string) (Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("registry_url", defaults.RegistryURL)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("concurrency", defaults.Concurrency)
	v.SetDefault("manifest_path", defaults.ManifestPath)
	v.SetDefault("pack_path", defaults.PackPath)
	v.SetDefault("catalog_ttl", defaults.CatalogTTL)
	v.SetDefault("trace_file", defaults.TraceFile)
	v.SetDefault("log_format", defaults.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if explicit := os.Getenv(ConfigEnvVar); explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", explicit)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(domain.SettingsFileName, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if userDir := domain.DefaultSettingsDir(); userDir != "" {
			v.AddConfigPath(userDir)
		}
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return Settings{}, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
	}
	s.ConfigFile = v.ConfigFileUsed()
	if s.Concurrency < 1 {
		s.Concurrency = 1
	}
	return s, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
