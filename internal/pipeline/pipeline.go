package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// ErrIncomplete is returned by Run when the pipeline has no source or no sink.
var ErrIncomplete = errors.New("pipeline: source and sink routines are required")

// Pipeline connects routines so the output of each one feeds the next.
type Pipeline struct {
	source   Routine
	sink     Routine
	routines []Routine
}

// New creates an empty Pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// In sets the routine producing the first messages of the pipeline.
func (s *Pipeline) In(r Routine) *Pipeline {
	s.source = r

	return s
}

// Out sets the routine consuming the last messages of the pipeline.
func (s *Pipeline) Out(r Routine) *Pipeline {
	s.sink = r

	return s
}

// Chain appends a routine between the source and the sink.
func (s *Pipeline) Chain(r Routine) *Pipeline {
	s.routines = append(s.routines, r)

	return s
}

// Run executes source, chained routines and sink concurrently and blocks until
// all of them return. The first error cancels the remaining routines and is
// returned.
func (s *Pipeline) Run(ctx context.Context) error {
	if s.source == nil || s.sink == nil {
		return ErrIncomplete
	}

	stages := make([]Routine, 0, len(s.routines)+2)
	stages = append(stages, s.source)
	stages = append(stages, s.routines...)
	stages = append(stages, s.sink)

	pipes := chainPipes(len(stages))

	// the source produces messages, it never receives any
	close(pipes[0].In())

	g, ctx := errgroup.WithContext(ctx)
	for i, routine := range stages {
		pipe := pipes[i]

		g.Go(func() error {
			return routine.Start(ctx, pipe)
		})
	}

	return g.Wait()
}

// Start runs the chained routines as a single routine: messages received on
// pipe.In go through every chained routine and come out on pipe.Out. Source
// and sink are ignored.
func (s *Pipeline) Start(ctx context.Context, pipe Pipe) error {
	defer pipe.Close()

	pipes := chainPipes(len(s.routines) + 1)
	head, tail := pipes[0], pipes[len(pipes)-1]

	g, ctx := errgroup.WithContext(ctx)
	for i, routine := range s.routines {
		stepPipe := pipes[i+1]

		g.Go(func() error {
			return routine.Start(ctx, stepPipe)
		})
	}

	g.Go(func() error {
		defer head.Close()

		for {
			select {
			case <-ctx.Done():
				return nil
			case msg, open := <-pipe.In():
				if !open {
					return nil
				}

				slog.Debug("pipeline received message", "id", msg.ID)

				select {
				case <-ctx.Done():
					return nil
				case head.Out() <- msg:
				}
			}
		}
	})

	g.Go(func() error {
		for msg := range tail.Out() {
			slog.Debug("pipeline forwarding message", "id", msg.ID)

			select {
			case <-ctx.Done():
				return nil
			case pipe.Out() <- msg:
			}
		}

		return nil
	})

	return g.Wait()
}

// chainPipes returns n pipes where the output of pipe i is the input of
// pipe i+1.
func chainPipes(n int) []*ChannelPipe {
	pipes := make([]*ChannelPipe, n)
	for i := range pipes {
		pipes[i] = NewChanPipe()
	}

	for i := 0; i < n-1; i++ {
		pipes[i].Chain(pipes[i+1])
	}

	return pipes
}
