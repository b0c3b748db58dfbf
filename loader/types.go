// Package loader parses the line-oriented edge-list format into a core.Adjacency.
//
// Input format:
//
//	N              ← vertex count, first line
//	u v w          ← one edge per line: source, destination, non-negative weight
//	...            ← end of stream ends the edge list (no trailer)
//
// Fields are separated by any run of whitespace. Blank lines are skipped.
// Malformed lines fail fast with a *ParseError naming the line; nothing is
// returned on failure.
package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortest/core"
)

// Sentinel errors wrapped by ParseError.
var (
	// ErrBadVertexCount indicates the first line is not a non-negative integer.
	ErrBadVertexCount = errors.New("loader: bad vertex count")

	// ErrFieldCount indicates an edge line without exactly three fields.
	ErrFieldCount = errors.New("loader: edge line must have 3 fields")

	// ErrBadNumber indicates an edge field that is not a decimal integer.
	ErrBadNumber = errors.New("loader: bad number")

	// ErrVertexOutOfRange indicates an endpoint outside [1, N].
	ErrVertexOutOfRange = errors.New("loader: vertex out of range")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("loader: negative edge weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loader: invalid option supplied")
)

// ParseError reports the offending line of a failed load.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error  // one of the sentinels above
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// defaultMaxLineBytes mirrors bufio.MaxScanTokenSize.
const defaultMaxLineBytes = 64 * 1024

// DefaultMaxVertices is the vertex-count ceiling unless WithMaxVertices says otherwise.
const DefaultMaxVertices = 1 << 24

// Options configures a Load call.
type Options struct {
	// LenientCount parses the header like C atoi: leading integer prefix, 0 on garbage.
	LenientCount bool

	// MaxVertices bounds the declared vertex count; larger headers are rejected.
	MaxVertices int

	// OnEdgesBegin fires once, after the header and before the first edge line.
	OnEdgesBegin func()

	// MaxLineBytes bounds a single line; longer lines fail the scan.
	MaxLineBytes int

	err error
}

// Option configures Load via functional arguments.
type Option func(*Options)

// DefaultOptions returns strict parsing, a no-op hook, a 64 KiB line limit
// and DefaultMaxVertices.
func DefaultOptions() Options {
	return Options{
		MaxVertices:  DefaultMaxVertices,
		OnEdgesBegin: func() {},
		MaxLineBytes: defaultMaxLineBytes,
	}
}

// WithLenientCount accepts any header, reading its leading integer or 0.
func WithLenientCount() Option {
	return func(o *Options) { o.LenientCount = true }
}

// WithOnEdgesBegin registers fn to run just before edge lines are consumed.
func WithOnEdgesBegin(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEdgesBegin = fn
		}
	}
}

// WithMaxLineBytes raises or lowers the per-line size limit (n > 0).
func WithMaxLineBytes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxLineBytes must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLineBytes = n
	}
}

// WithMaxVertices sets the largest accepted vertex count, in [1, core.MaxVertexCount].
func WithMaxVertices(n int) Option {
	return func(o *Options) {
		if n < 1 || n > core.MaxVertexCount {
			o.err = fmt.Errorf("%w: MaxVertices must be in [1,%d] (%d)", ErrOptionViolation, core.MaxVertexCount, n)
			return
		}
		o.MaxVertices = n
	}
}
