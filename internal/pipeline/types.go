package pipeline

import (
	"context"
	"io"
)

// Msg is the unit of data flowing between routines.
type Msg struct {
	ID   string
	Data any
}

type Pipe interface {
	In() chan Msg
	Out() chan Msg
	Done() <-chan struct{}
	Chain(p Pipe)
	io.Closer
}

// Routine consumes messages from pipe.In and produces messages on pipe.Out.
// A routine must close its pipe before returning so downstream routines
// observe the end of the stream.
//
//go:generate go tool mockgen -source=$GOFILE -destination=mocks/mock_routine.go -package=mocks
type Routine interface {
	Start(ctx context.Context, pipe Pipe) error
}
