// Package output builds termenv outputs that honour NO_COLOR.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns Ascii when NO_COLOR is set and fallback() otherwise.
func Profile(fallback func() termenv.Profile) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return fallback()
}

// ColorProfile detects the capabilities of the attached terminal.
func ColorProfile() termenv.Profile {
	return Profile(termenv.EnvColorProfile)
}

// ColorProfileANSI limits output to the 16 ANSI colors, which CI log viewers understand.
func ColorProfileANSI() termenv.Profile {
	return Profile(func() termenv.Profile { return termenv.ANSI })
}

// New creates an output for interactive use. A nil writer means stderr.
func New(w io.Writer) *termenv.Output {
	return NewWithProfile(w, ColorProfile)
}

// NewANSI creates an output for line-oriented, non-interactive use. A nil writer means stderr.
func NewANSI(w io.Writer) *termenv.Output {
	return NewWithProfile(w, ColorProfileANSI)
}

// NewWithProfile creates an output whose profile is chosen by profileFn.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profileFn()), termenv.WithTTY(true))
}
