package ports

import "context"

// Choice describes a selection the user has to make for one item.
type Choice struct {
	// Item is the item the selection belongs to.
	Item string
	// Subject names what is being chosen, e.g. "version" or "file".
	Subject string
	// Options are the labels shown to the user, in order.
	Options []string
}

// Chooser picks one of several candidates.
// It returns an index into Choice.Options or an error wrapping domain.ErrInvalidSelection.
//
//go:generate mockgen -source=chooser.go -destination=mocks/mock_chooser.go -package=mocks
type Chooser interface {
	Choose(ctx context.Context, choice Choice) (int, error)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(ctx context.Context, choice Choice) (int, error)

// Choose calls f.
func (f ChooserFunc) Choose(ctx context.Context, choice Choice) (int, error) {
	return f(ctx, choice)
}
