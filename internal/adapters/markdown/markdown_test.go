package markdown_test

import (
	"strings"
	"testing"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Plain(t *testing.T) {
	r, err := markdown.New(80, true)
	require.NoError(t, err)

	out, err := r.Render("## Fixes\n\n- Fixed a crash with **Iris** shaders\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Fixes")
	assert.Contains(t, out, "Fixed a crash with")
	assert.NotContains(t, out, "\x1b[", "plain output has no escape sequences")
}

func TestRenderer_Wraps(t *testing.T) {
	r, err := markdown.New(20, true)
	require.NoError(t, err)

	out, err := r.Render(strings.Repeat("word ", 20))
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.LessOrEqual(t, len(strings.TrimRight(line, " ")), 20)
	}
}
