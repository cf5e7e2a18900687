// Package detector inspects the host environment: the distribution it runs
// on and whether styled terminal output is appropriate.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how command output is rendered.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeStyled decorates output for an interactive terminal.
	ModeStyled
	// ModePlain writes undecorated output for pipes, files and CI logs.
	ModePlain
)

// DetectEnvironment returns the recommended output mode for w.
// Output that is not a terminal, CI runs and NO_COLOR all get plain output.
func DetectEnvironment(w any) OutputMode {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}

	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" || os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	return ModeStyled
}

// ResolveMode applies a user override to the auto-detected mode.
// userFlag should be one of: "auto", "styled", "plain", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "styled":
		return ModeStyled
	case "plain":
		return ModePlain
	default:
		return autoDetected
	}
}
