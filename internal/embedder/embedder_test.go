package embedder_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caiorcferreira/jsembed/internal/embedder"
	"github.com/caiorcferreira/jsembed/internal/jsliteral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, name, content string) embedder.Path {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := embedder.ParsePath(path)
	require.NoError(t, err)

	return p
}

func newEmbedder(t *testing.T) (*embedder.Embedder, string) {
	t.Helper()

	outDir := t.TempDir()
	e, err := embedder.New(embedder.WithOutputDir(outDir))
	require.NoError(t, err)

	return e, outDir
}

func TestEmbedder_Embed(t *testing.T) {
	t.Run("escapes markup", func(t *testing.T) {
		e, outDir := newEmbedder(t)
		input := writeInput(t, t.TempDir(), "page.txt", "Hello <b>World</b>")

		output, err := e.Embed(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(outDir, "fileContent.js"), output)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, `const fileContent = "Hello \u003cb\u003eWorld\u003c/b\u003e";`, string(content))
	})

	t.Run("embeds empty file", func(t *testing.T) {
		e, _ := newEmbedder(t)
		input := writeInput(t, t.TempDir(), "empty.txt", "")

		output, err := e.Embed(context.Background(), input)
		require.NoError(t, err)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, `const fileContent = "";`, string(content))
	})

	t.Run("round trips arbitrary text", func(t *testing.T) {
		inputs := []string{
			"",
			"<script>alert('x')</script>",
			`quotes " and backslashes \ \\`,
			"multi\nline\r\ntext\n",
			"unicode: ça va? 你好 🚀",
			"</SCRIPT><!--",
		}

		for _, text := range inputs {
			e, _ := newEmbedder(t)
			input := writeInput(t, t.TempDir(), "input.txt", text)

			output, err := e.Embed(context.Background(), input)
			require.NoError(t, err)

			content, err := os.ReadFile(output)
			require.NoError(t, err)

			assert.False(t, strings.ContainsAny(string(content), "<>"), "raw angle bracket in %q", content)

			name, value, err := jsliteral.ParseDeclaration(string(content))
			require.NoError(t, err)
			assert.Equal(t, embedder.Identifier, name)
			assert.Equal(t, text, value)
		}
	})

	t.Run("overwrites previous output", func(t *testing.T) {
		e, _ := newEmbedder(t)
		require.NoError(t, os.WriteFile(e.OutputPath(), []byte(strings.Repeat("x", 4096)), 0644))

		input := writeInput(t, t.TempDir(), "short.txt", "ok")

		output, err := e.Embed(context.Background(), input)
		require.NoError(t, err)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, `const fileContent = "ok";`, string(content))
	})

	t.Run("decodes percent encoded input path", func(t *testing.T) {
		e, _ := newEmbedder(t)
		dir := t.TempDir()
		writeInput(t, dir, "my notes.txt", "spaced")

		input, err := embedder.ParsePath(filepath.Join(dir, "my%20notes.txt"))
		require.NoError(t, err)

		output, err := e.Embed(context.Background(), input)
		require.NoError(t, err)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, `const fileContent = "spaced";`, string(content))
	})
}

func TestEmbedder_FixedDestination(t *testing.T) {
	e, outDir := newEmbedder(t)
	want := filepath.Join(outDir, embedder.OutputName)

	first := writeInput(t, t.TempDir(), "a.txt", "first")
	second := writeInput(t, t.TempDir(), "b.md", "second")

	t.Chdir(t.TempDir())

	out1, err := e.Embed(context.Background(), first)
	require.NoError(t, err)

	t.Chdir(t.TempDir())

	out2, err := e.Embed(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, want, out1)
	assert.Equal(t, want, out2)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(first.String()), embedder.OutputName))
	assert.NoFileExists(t, filepath.Join(filepath.Dir(second.String()), embedder.OutputName))

	content, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, `const fileContent = "second";`, string(content))
}

func TestEmbedder_Errors(t *testing.T) {
	t.Run("missing input is a read failure", func(t *testing.T) {
		e, _ := newEmbedder(t)

		input, err := embedder.ParsePath(filepath.Join(t.TempDir(), "missing.txt"))
		require.NoError(t, err)

		_, err = e.Embed(context.Background(), input)
		require.Error(t, err)

		var embedErr *embedder.Error
		require.ErrorAs(t, err, &embedErr)
		assert.Equal(t, embedder.KindReadFailure, embedErr.Kind)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "error reading file")
		assert.Equal(t, 4, embedder.ExitCode(err))
	})

	t.Run("read failure leaves existing output untouched", func(t *testing.T) {
		e, _ := newEmbedder(t)
		require.NoError(t, os.WriteFile(e.OutputPath(), []byte("previous"), 0644))

		input, err := embedder.ParsePath(filepath.Join(t.TempDir(), "missing.txt"))
		require.NoError(t, err)

		_, err = e.Embed(context.Background(), input)
		require.Error(t, err)

		content, err := os.ReadFile(e.OutputPath())
		require.NoError(t, err)
		assert.Equal(t, "previous", string(content))
	})

	t.Run("directory input is a read failure", func(t *testing.T) {
		e, _ := newEmbedder(t)

		input, err := embedder.ParsePath(t.TempDir())
		require.NoError(t, err)

		_, err = e.Embed(context.Background(), input)
		assert.Equal(t, embedder.ExitCode(err), embedder.KindReadFailure.ExitCode())
		assert.NoFileExists(t, e.OutputPath())
	})

	t.Run("unwritable destination is a write failure", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("file"), 0644))

		e, err := embedder.New(embedder.WithOutputDir(filepath.Join(blocker, "out")))
		require.NoError(t, err)

		input := writeInput(t, t.TempDir(), "in.txt", "data")

		_, err = e.Embed(context.Background(), input)
		require.Error(t, err)

		var embedErr *embedder.Error
		require.ErrorAs(t, err, &embedErr)
		assert.Equal(t, embedder.KindWriteFailure, embedErr.Kind)
		assert.Contains(t, err.Error(), "error writing JS file")
		assert.Equal(t, 5, embedder.ExitCode(err))
	})

	t.Run("cancelled context fails", func(t *testing.T) {
		e, _ := newEmbedder(t)
		input := writeInput(t, t.TempDir(), "in.txt", "data")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := e.Embed(ctx, input)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, embedder.ExitCode(err))
		assert.NoFileExists(t, e.OutputPath())
	})
}

func TestNew_DefaultsToExecutableDir(t *testing.T) {
	e, err := embedder.New()
	require.NoError(t, err)

	dir, err := embedder.ExecutableDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "fileContent.js"), e.OutputPath())
}
