package ports

// MarkdownRenderer turns markdown into terminal output.
//
//go:generate mockgen -source=markdown.go -destination=mocks/mock_markdown.go -package=mocks
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}
