package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name used for configuration directories and the user agent.
	AppName = "mod-updater"

	// UserAgentOwner prefixes the user agent sent to the registry.
	UserAgentOwner = "FloatyJellyfish"

	// ManifestFileName is the default name of the installation manifest.
	ManifestFileName = "mods.lock.yaml"

	// PackFileName is the default name of the pack file.
	PackFileName = "pack.yaml"

	// SettingsFileName is the name of the settings file looked up in the working directory.
	SettingsFileName = "mod-updater.yaml"

	// DefaultRegistryURL is the base URL of the Modrinth v2 API.
	DefaultRegistryURL = "https://api.modrinth.com/v2"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// UserAgent returns the user agent for the given build version.
func UserAgent(version string) string {
	return UserAgentOwner + "/" + AppName + "/" + version
}

// DefaultSettingsDir returns the per-user settings directory.
// It joins the user config dir and mod-updater, or is empty when the config dir is unknown.
func DefaultSettingsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName)
}
