package filesystem

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caiorcferreira/jsembed/internal/pipeline"
)

// Op names the file operation that failed.
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// OpError records a failed file routine together with the operation and path.
type OpError struct {
	Op   Op
	Path string
	Err  error
}

func (e *OpError) Error() string { return e.Err.Error() }
func (e *OpError) Unwrap() error { return e.Err }

func File(path string) FileRoutineBuilder {
	return FileRoutineBuilder{path: path}
}

type FileRoutineBuilder struct {
	path       string
	readCodec  ReadCodec
	writeCodec WriteCodec
}

func (f FileRoutineBuilder) Read() *ReadFileRoutineBuilder {
	readCodec := f.readCodec
	if readCodec == nil {
		readCodec = NewTextCodec()
	}
	return &ReadFileRoutineBuilder{path: f.path, readCodec: readCodec}
}

// Write truncates the file before the first write.
func (f FileRoutineBuilder) Write() *WriteFileRoutineBuilder {
	return f.writer(modeWrite)
}

func (f FileRoutineBuilder) Append() *WriteFileRoutineBuilder {
	return f.writer(modeAppend)
}

func (f FileRoutineBuilder) writer(mode int) *WriteFileRoutineBuilder {
	writeCodec := f.writeCodec
	if writeCodec == nil {
		writeCodec = NewTextCodec()
	}
	return &WriteFileRoutineBuilder{path: f.path, writeCodec: writeCodec, mode: mode}
}

// ReadFileRoutineBuilder methods

// WithCodec sets the codec for reading files
func (r *ReadFileRoutineBuilder) WithCodec(codec ReadCodec) *ReadFileRoutineBuilder {
	r.readCodec = codec
	return r
}

// WithTextCodec sets the codec to TextCodec, reading the whole file as one string
func (r *ReadFileRoutineBuilder) WithTextCodec() *ReadFileRoutineBuilder {
	r.readCodec = NewTextCodec()
	return r
}

// WriteFileRoutineBuilder methods

// WithCodec sets the codec for writing files
func (w *WriteFileRoutineBuilder) WithCodec(codec WriteCodec) *WriteFileRoutineBuilder {
	w.writeCodec = codec
	return w
}

// WithTextCodec sets the codec to TextCodec for plain text writing
func (w *WriteFileRoutineBuilder) WithTextCodec() *WriteFileRoutineBuilder {
	w.writeCodec = NewTextCodec()
	return w
}

// WithDeclarationCodec sets the codec to DeclarationCodec binding name
func (w *WriteFileRoutineBuilder) WithDeclarationCodec(name string) *WriteFileRoutineBuilder {
	w.writeCodec = NewDeclarationCodec(name)
	return w
}

const (
	modeRead   = os.O_RDONLY
	modeWrite  = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	modeAppend = os.O_WRONLY | os.O_CREATE | os.O_APPEND
)

// ReadFileRoutineBuilder builds and executes file reading operations
type ReadFileRoutineBuilder struct {
	path      string
	readCodec ReadCodec
}

// Start executes the file reading operation directly
func (r *ReadFileRoutineBuilder) Start(ctx context.Context, pipe pipeline.Pipe) error {
	defer pipe.Close()

	slog.Debug("reading file", "path", r.path)

	file, err := os.OpenFile(r.path, modeRead, 0)
	if err != nil {
		return &OpError{Op: OpRead, Path: r.path, Err: fmt.Errorf("failed to open file for read: %w", err)}
	}

	defer file.Close()

	// Use codec to parse file content and write to pipe with context support
	err = r.readCodec.Parse(ctx, file, pipe)
	if err != nil {
		return &OpError{Op: OpRead, Path: r.path, Err: fmt.Errorf("failed to parse file with codec: %w", err)}
	}

	slog.Debug("finished reading file", "path", r.path)

	return nil
}

// WriteFileRoutineBuilder builds and executes file writing operations
type WriteFileRoutineBuilder struct {
	path       string
	writeCodec WriteCodec
	mode       int
}

// Start executes the file writing operation directly. The file is opened on
// the first write, so a pipe that closes without data leaves the file
// untouched.
func (w *WriteFileRoutineBuilder) Start(ctx context.Context, pipe pipeline.Pipe) error {
	defer pipe.Close()

	slog.Debug("writing file", "path", w.path)

	file := &lazyFile{path: w.path, mode: w.mode}

	// Use writeCodec to encode messages and write to file
	err := w.writeCodec.Encode(ctx, pipe, file)
	closeErr := file.Close()

	if err != nil {
		return &OpError{Op: OpWrite, Path: w.path, Err: fmt.Errorf("failed to encode messages with codec: %w", err)}
	}

	if closeErr != nil {
		return &OpError{Op: OpWrite, Path: w.path, Err: fmt.Errorf("failed to close file: %w", closeErr)}
	}

	slog.Debug("finished writing file", "path", w.path, "written", file.file != nil)

	return nil
}

// lazyFile defers opening the file at path until the first Write.
type lazyFile struct {
	path string
	mode int
	file *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.file == nil {
		file, err := openWritingFile(l.path, l.mode)
		if err != nil {
			return 0, err
		}
		l.file = file
	}

	return l.file.Write(p)
}

func (l *lazyFile) Close() error {
	if l.file == nil {
		return nil
	}

	return l.file.Close()
}

func openWritingFile(path string, mode int) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(path, mode, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	return file, nil
}
