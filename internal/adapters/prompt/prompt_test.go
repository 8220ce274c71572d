package prompt_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/prompt"
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fileChoice = ports.Choice{
	Item:    "sodium",
	Subject: "file",
	Options: []string{"sodium-0.6.0.jar", "sodium-0.6.0-sources.jar"},
}

func TestChooser_Valid(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	c := prompt.New(strings.NewReader("1\n"), &out)

	index, err := c.Choose(context.Background(), fileChoice)
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t,
		"Available files for sodium:\n\t0 - sodium-0.6.0.jar\n\t1 - sodium-0.6.0-sources.jar\nSelect file (0-1): ",
		out.String())
}

func TestChooser_LastLineWithoutNewline(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	c := prompt.New(strings.NewReader(" 0 "), &bytes.Buffer{})

	index, err := c.Choose(context.Background(), fileChoice)
	require.NoError(t, err)
	assert.Equal(t, 0, index)
}

func TestChooser_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "out of range", input: "2\n"},
		{name: "negative", input: "-1\n"},
		{name: "not a number", input: "first\n"},
		{name: "empty line", input: "\n"},
		{name: "eof", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			c := prompt.New(strings.NewReader(tt.input), &bytes.Buffer{})

			_, err := c.Choose(context.Background(), fileChoice)
			require.ErrorIs(t, err, domain.ErrInvalidSelection)
			assert.Equal(t, domain.KindInvalidSelection, domain.ClassifyError(err))
		})
	}
}

func TestChooser_CancelledContext(t *testing.T) {
	c := prompt.New(strings.NewReader("0\n"), &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Choose(ctx, fileChoice)
	require.ErrorIs(t, err, context.Canceled)
}

func TestChooser_Serialised(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	c := prompt.New(strings.NewReader("0\n1\n"), &out)

	var wg sync.WaitGroup
	results := make(chan int, 2)
	for _, item := range []string{"sodium", "iris"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			choice := fileChoice
			choice.Item = item
			index, err := c.Choose(context.Background(), choice)
			assert.NoError(t, err)
			results <- index
		}()
	}
	wg.Wait()
	close(results)

	var got []int
	for r := range results {
		got = append(got, r)
	}
	assert.ElementsMatch(t, []int{0, 1}, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Available files for"))
	assert.Equal(t, 1, strings.Count(out.String(), "Available files for sodium:\n\t0 - sodium-0.6.0.jar\n\t1 - sodium-0.6.0-sources.jar\nSelect file (0-1): "))
}

func TestChooser_WaitingCallerCanBeCancelled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	pr, pw := io.Pipe()
	c := prompt.New(pr, io.Discard)

	first := make(chan int, 1)
	go func() {
		index, err := c.Choose(context.Background(), fileChoice)
		assert.NoError(t, err)
		first <- index
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	choice := fileChoice
	choice.Item = "iris"
	_, err := c.Choose(ctx, choice)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		_, _ = pw.Write([]byte("0\n1\n"))
	}()

	select {
	case index := <-first:
		assert.Contains(t, []int{0, 1}, index)
	case <-time.After(5 * time.Second):
		t.Fatal("first caller never answered")
	}
}
