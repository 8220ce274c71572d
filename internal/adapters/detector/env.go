// Package detector decides whether the user can be prompted.
package detector

import (
	"os"

	"golang.org/x/term"
)

// PromptMode says how ambiguous choices are resolved.
type PromptMode int

const (
	// ModeInteractive asks the user on the terminal.
	ModeInteractive PromptMode = iota
	// ModeBatch picks the newest release and its primary file without asking.
	ModeBatch
)

// String returns the flag value that selects the mode.
func (m PromptMode) String() string {
	if m == ModeBatch {
		return "never"
	}
	return "always"
}

// DetectEnvironment returns ModeBatch when stdin is not a terminal or CI is set.
func DetectEnvironment() PromptMode {
	return detect(term.IsTerminal(int(os.Stdin.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) PromptMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModeBatch
	}
	return ModeInteractive
}

// ResolveMode applies the user's --prompt flag to the detected mode.
// userFlag is one of "auto", "always", "never", or empty.
func ResolveMode(autoDetected PromptMode, userFlag string) PromptMode {
	switch userFlag {
	case "always":
		return ModeInteractive
	case "never":
		return ModeBatch
	default:
		return autoDetected
	}
}
