// Package embedder converts a text file into fileContent.js, a script that
// binds the file's text to the constant fileContent.
package embedder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caiorcferreira/jsembed/internal/jsliteral"
	"github.com/caiorcferreira/jsembed/internal/pipeline"
	"github.com/caiorcferreira/jsembed/internal/routines"
	"github.com/caiorcferreira/jsembed/internal/routines/filesystem"
)

const (
	// Identifier is the name of the generated constant.
	Identifier = "fileContent"
	// OutputName is the file name of the generated script.
	OutputName = Identifier + ".js"
)

type Embedder struct {
	outputDir string
}

type Option func(*Embedder)

// WithOutputDir writes the generated script into dir instead of the
// directory of the running executable.
func WithOutputDir(dir string) Option {
	return func(e *Embedder) {
		e.outputDir = dir
	}
}

func New(opts ...Option) (*Embedder, error) {
	e := &Embedder{}
	for _, opt := range opts {
		opt(e)
	}

	if e.outputDir == "" {
		dir, err := ExecutableDir()
		if err != nil {
			return nil, &Error{Kind: KindWriteFailure, Err: err}
		}
		e.outputDir = dir
	}

	return e, nil
}

// OutputPath is where Embed writes, whatever the input path.
func (e *Embedder) OutputPath() string {
	return filepath.Join(e.outputDir, OutputName)
}

// Embed reads the file at input and writes its quoted content to OutputPath.
// The output file is only opened once the input has been read completely.
func (e *Embedder) Embed(ctx context.Context, input Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("embed %s: %w", input, err)
	}

	output := e.OutputPath()

	slog.Debug("embedding file", "input", input.String(), "output", output)

	err := pipeline.New().
		In(filesystem.File(input.String()).Read().WithTextCodec()).
		Chain(routines.Transform(jsliteral.Quote)).
		Out(filesystem.File(output).Write().WithDeclarationCodec(Identifier)).
		Run(ctx)
	if err != nil {
		return "", classify(err, input, output)
	}

	return output, nil
}

func classify(err error, input Path, output string) error {
	var opErr *filesystem.OpError
	if errors.As(err, &opErr) && opErr.Op == filesystem.OpRead {
		return &Error{Kind: KindReadFailure, Path: input.String(), Err: opErr.Err}
	}

	if errors.As(err, &opErr) {
		return &Error{Kind: KindWriteFailure, Path: output, Err: opErr.Err}
	}

	// neither file was at fault, e.g. a transform rejected the payload
	return fmt.Errorf("embed %s: %w", input, err)
}

// ExecutableDir returns the directory holding the running executable, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exePath)
	if err != nil {
		// continue with the unresolved path
		resolved = filepath.Clean(exePath)
	}

	return filepath.Dir(resolved), nil
}
