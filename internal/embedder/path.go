package embedder

import (
	"net/url"
)

// Path is a validated, percent-decoded input file path.
type Path struct {
	raw     string
	decoded string
}

// ParsePath validates the command line argument and decodes any percent
// escapes in it. It performs no I/O.
func ParsePath(arg string) (Path, error) {
	if arg == "" {
		return Path{}, &Error{Kind: KindMissingArgument, Err: ErrMissingArgument}
	}

	decoded, err := url.PathUnescape(arg)
	if err != nil {
		return Path{}, &Error{Kind: KindInvalidPath, Path: arg, Err: err}
	}

	if decoded == "" {
		return Path{}, &Error{Kind: KindMissingArgument, Err: ErrMissingArgument}
	}

	return Path{raw: arg, decoded: decoded}, nil
}

// Raw returns the argument as given.
func (p Path) Raw() string { return p.raw }

func (p Path) String() string { return p.decoded }
