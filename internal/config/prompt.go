package config

// Interactive prompts for arguments the user may omit: the scan folder and
// the bare --copy destination. In non-interactive runs the prompt fails and
// the missing value surfaces as an error before anything runs.

import (
	"github.com/AlecAivazis/survey/v2"
)

// PromptMissing fills ScanRoot and CopyDest interactively when they were
// omitted. It is a no-op for values already set.
func PromptMissing(cfg *Config) error {
	if cfg.ScanRoot == "" && !cfg.CheckOnly {
		var folder string
		prompt := &survey.Input{Message: "Folder to scan:"}
		if err := survey.AskOne(prompt, &folder, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
		cfg.ScanRoot = NormalizeDirArg(folder)
	}

	if cfg.CopyRequested && cfg.CopyDest == "" {
		var dest string
		prompt := &survey.Input{Message: "Copy destination:"}
		if err := survey.AskOne(prompt, &dest, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
		cfg.CopyDest = NormalizeDirArg(dest)
	}
	return nil
}
