// Build:
// go build -o dist/embedder ./cmd/embedder
//
// Run:
// ./dist/embedder path/to/book.txt
//
// The script is always written to dist/fileContent.js, next to the binary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caiorcferreira/jsembed/internal/embedder"
)

// outputDir resolves the destination directory. Tests replace it.
var outputDir = embedder.ExecutableDir

func main() {
	exitCode := run(os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("embedder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Verbose output")
	fs.Usage = func() {
		printUsage(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(positionalAfterUnknownFlag(fs, args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	setupLogging(stderr, *verbose)

	path, err := embedder.ParsePath(fs.Arg(0))
	if err != nil {
		return fail(stderr, err)
	}

	if fs.NArg() > 1 {
		slog.Warn("ignoring extra arguments", "args", fs.Args()[1:])
	}

	dir, err := outputDir()
	if err != nil {
		return fail(stderr, &embedder.Error{Kind: embedder.KindWriteFailure, Err: err})
	}

	e, err := embedder.New(embedder.WithOutputDir(dir))
	if err != nil {
		return fail(stderr, err)
	}

	output, err := e.Embed(context.Background(), path)
	if err != nil {
		return fail(stderr, err)
	}

	fmt.Fprintf(stdout, "JS file generated: %s\n", output)
	return 0
}

// positionalAfterUnknownFlag ends flag parsing at the first dash-prefixed
// argument that is not a defined flag, so "-notes.txt" is read as a path.
func positionalAfterUnknownFlag(fs *flag.FlagSet, args []string) []string {
	for i, arg := range args {
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			return args
		}

		name, _, _ := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name == "h" || name == "help" || fs.Lookup(name) != nil {
			continue
		}

		rewritten := make([]string, 0, len(args)+1)
		rewritten = append(rewritten, args[:i]...)
		rewritten = append(rewritten, "--")
		return append(rewritten, args[i:]...)
	}

	return args
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, err)
	return embedder.ExitCode(err)
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: embedder [-v] <input-file-path>")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Writes %s next to the embedder binary, declaring\n", embedder.OutputName)
	fmt.Fprintf(w, "const %s with the escaped text of the input file.\n", embedder.Identifier)
	fmt.Fprintln(w, "Percent-encoded characters in the path are decoded.")
	fmt.Fprintln(w, "Use -- before a path that could be mistaken for a flag, such as -v.")
	fmt.Fprintln(w)
}
