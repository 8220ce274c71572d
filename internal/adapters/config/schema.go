package config

// PackFile represents the structure of the pack.yaml file.
type PackFile struct {
	Loader      string   `yaml:"loader"`
	GameVersion string   `yaml:"game_version"`
	Mods        []string `yaml:"mods"`
}
