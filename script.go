package jsembed

import (
	"context"

	"github.com/caiorcferreira/jsembed/internal/embedder"
	"github.com/caiorcferreira/jsembed/internal/jsliteral"
)

// New returns an Embedder that writes fileContent.js next to the running
// executable unless embedder.WithOutputDir says otherwise.
func New(opts ...embedder.Option) (*embedder.Embedder, error) {
	return embedder.New(opts...)
}

// Embed is a convenience method that parses arg as a possibly
// percent-encoded file path and embeds that file.
//
// Parameters:
//   - ctx: Context for execution control and cancellation
//   - arg: Input file path, as given on a command line
//   - opts: Embedder options
//
// Returns:
//   - string: The path of the generated script
//   - error: An *embedder.Error describing the failure
//
// Example:
//
//	out, err := jsembed.Embed(ctx, "notes%20v2.txt")
func Embed(ctx context.Context, arg string, opts ...embedder.Option) (string, error) {
	path, err := embedder.ParsePath(arg)
	if err != nil {
		return "", err
	}

	e, err := New(opts...)
	if err != nil {
		return "", err
	}

	return e.Embed(ctx, path)
}

// Quote returns s as a string literal safe to place inside a <script>
// element.
func Quote(s string) string {
	return jsliteral.Quote(s)
}
