package config

// Optional TOML settings file support. File values sit between built-in
// defaults and explicit CLI flags:
//
//	min_duration = 30
//	template     = "{artist} - {title}"
//	default_ext  = ".flac"
//	probe_bin    = "ffprobe"
//	parallel     = true
//	playlist     = "/srv/music/all.m3u"

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// settingsKeys maps file keys to the flag that overrides them. A file value
// is skipped when its flag was passed on the command line.
var settingsKeys = []struct {
	key  string
	flag string
}{
	{"min_duration", "min-duration"},
	{"template", "fix-names"},
	{"default_ext", "default-ext"},
	{"probe_bin", "probe-bin"},
	{"parallel", "multi"},
	{"playlist", "output"},
}

// applySettings loads the TOML settings file named by cfg.SettingsFile and
// applies values for every key whose flag was not set explicitly.
func applySettings(cfg *Config, fs *pflag.FlagSet) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(cfg.SettingsFile), toml.Parser()); err != nil {
		return fmt.Errorf("settings file %q: %w", cfg.SettingsFile, err)
	}

	for _, s := range settingsKeys {
		if !k.Exists(s.key) || fs.Changed(s.flag) {
			continue
		}
		if s.key == "parallel" && fs.Changed("multithread") {
			continue
		}
		switch s.key {
		case "min_duration":
			cfg.MinDuration = k.Float64(s.key)
		case "template":
			cfg.RenameTemplate = k.String(s.key)
		case "default_ext":
			cfg.DefaultExt = k.String(s.key)
		case "probe_bin":
			cfg.ProbeBin = k.String(s.key)
		case "parallel":
			cfg.Parallel = k.Bool(s.key)
		case "playlist":
			cfg.PlaylistPath = k.String(s.key)
		}
	}
	return nil
}
