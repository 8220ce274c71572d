package output_test

import (
	"bytes"
	"testing"

	"github.com/FloatyJellyfish/mod-updater/internal/ui/output"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
	assert.Equal(t, termenv.Ascii, output.ColorProfileANSI())
}

func TestColorProfileANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.ColorProfileANSI())
}

func TestProfile_Fallback(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.TrueColor, output.Profile(func() termenv.Profile { return termenv.TrueColor }))
}

func TestNewANSI_Styles(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	out := output.NewANSI(&buf)
	_, _ = out.WriteString(out.String("ok").Foreground(termenv.ANSIGreen).String())

	assert.Equal(t, "\x1b[32mok\x1b[0m", buf.String())
}

func TestNew_NoColorIsPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)
	_, _ = out.WriteString(out.String("plain").Foreground(termenv.ANSIRed).Bold().String())

	assert.Equal(t, "plain", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil))
	assert.NotNil(t, output.NewANSI(nil))
}
