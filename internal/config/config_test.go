package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/library", "/media/library"},
		{"single trailing slash", "/media/library/", "/media/library"},
		{"multiple trailing slashes", "/media/library///", "/media/library"},
		{"root path", "/", "/"},
		{"relative path", "music", "music"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mp3", ".mp3"},
		{".mp3", ".mp3"},
		{".MP3", ".mp3"},
		{" flac ", ".flac"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeExt(tt.in); got != tt.want {
			t.Errorf("NormalizeExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate_RequiresScanRoot(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when the scan root is empty")
	}

	cfg.ScanRoot = "/music"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_CheckOnlySkipsScanRoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should pass with empty scan root in check mode, got: %v", err)
	}
}

func TestValidate_MinDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScanRoot = "/music"
	cfg.MinDuration = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject negative minimum duration")
	}
	cfg.MinDuration = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should accept zero minimum duration, got: %v", err)
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		scan    string
		dest    string
		wantErr bool
	}{
		{"separate directories", "/media/in", "/media/out", false},
		{"dest equals scan root", "/media/lib", "/media/lib", true},
		{"dest inside scan root", "/media/lib", "/media/lib/sorted", true},
		{"dest is parent of scan root", "/media/lib/sub", "/media/lib", false},
		{"similar prefix not nested", "/media/library", "/media/library2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.scan, tt.dest)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.scan, tt.dest, err, tt.wantErr)
			}
		})
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"/music"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.ScanRoot != "/music" {
		t.Errorf("ScanRoot = %q, want /music", cfg.ScanRoot)
	}
	if cfg.MinDuration != 20 {
		t.Errorf("MinDuration = %g, want 20", cfg.MinDuration)
	}
	if cfg.RenameTemplate != "" {
		t.Errorf("RenameTemplate = %q, want empty (renaming off by default)", cfg.RenameTemplate)
	}
	if cfg.CopyRequested {
		t.Error("CopyRequested should be false without --copy")
	}
}

func TestParseFlags_FixNamesBare(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"--fix-names", "/music"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.RenameTemplate != DefaultTemplate {
		t.Errorf("RenameTemplate = %q, want %q", cfg.RenameTemplate, DefaultTemplate)
	}
}

func TestParseFlags_FixNamesWithTemplate(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"--fix-names={artist} - {title}", "/music"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.RenameTemplate != "{artist} - {title}" {
		t.Errorf("RenameTemplate = %q", cfg.RenameTemplate)
	}
}

func TestParseFlags_CopyBareRequestsPrompt(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"--copy", "/music"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !cfg.CopyRequested {
		t.Error("CopyRequested should be true with bare --copy")
	}
	if cfg.CopyDest != "" {
		t.Errorf("CopyDest = %q, want empty (prompt pending)", cfg.CopyDest)
	}
}

func TestParseFlags_CopyWithDest(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"--copy=/srv/sorted/", "/music"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !cfg.CopyRequested || cfg.CopyDest != "/srv/sorted" {
		t.Errorf("CopyRequested=%v CopyDest=%q", cfg.CopyRequested, cfg.CopyDest)
	}
}

func TestParseFlags_CopySpaceSeparatedValueIsFolder(t *testing.T) {
	// With an optional-value flag the value must be attached with '=';
	// a space-separated value is read as the positional folder.
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"--copy", "/srv/sorted"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !cfg.CopyRequested || cfg.CopyDest != "" {
		t.Errorf("CopyRequested=%v CopyDest=%q, want bare-copy prompt pending", cfg.CopyRequested, cfg.CopyDest)
	}
	if cfg.ScanRoot != "/srv/sorted" {
		t.Errorf("ScanRoot = %q, want the space-separated value as folder", cfg.ScanRoot)
	}
}

func TestParseFlags_VerbosityCount(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"-vv", "/music"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}

func TestParseFlags_RejectsExtraPositionals(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"/music", "/other"}); err == nil {
		t.Error("ParseFlags should reject a second positional argument")
	}
}

func TestSettingsFile_AppliedUnderFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trackmaster.toml")
	content := "min_duration = 45\ntemplate = \"{artist} - {title}\"\ndefault_ext = \".flac\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	// Flag wins over file for min-duration; file fills the rest.
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{"--config", path, "-m", "10", "/music"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.MinDuration != 10 {
		t.Errorf("MinDuration = %g, want 10 (flag overrides file)", cfg.MinDuration)
	}
	if cfg.RenameTemplate != "{artist} - {title}" {
		t.Errorf("RenameTemplate = %q (file value expected)", cfg.RenameTemplate)
	}
	if cfg.DefaultExt != ".flac" {
		t.Errorf("DefaultExt = %q (file value expected)", cfg.DefaultExt)
	}
}
