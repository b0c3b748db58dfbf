package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/shortest/core"
)

// Load reads a vertex count and an edge list from r and returns the frozen
// adjacency. An empty stream yields an empty adjacency with N = 0.
//
// Errors:
//   - *ParseError wrapping ErrBadVertexCount, ErrFieldCount, ErrBadNumber,
//     ErrVertexOutOfRange or ErrNegativeWeight.
//   - ErrOptionViolation for invalid options.
//   - any read error from r, wrapped.
//
// Complexity: O(V + E) time and space.
func Load(r io.Reader, opts ...Option) (*core.Adjacency, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, cfg.MaxLineBytes)), cfg.MaxLineBytes)

	// 1) Header: vertex count.
	n := 0
	if sc.Scan() {
		header := sc.Text()
		var err error
		if cfg.LenientCount {
			n, err = parseCountLenient(header)
		} else {
			n, err = parseCountStrict(header)
		}
		if err != nil {
			return nil, &ParseError{Line: 1, Text: header, Err: err}
		}
		if n > cfg.MaxVertices {
			return nil, &ParseError{Line: 1, Text: header,
				Err: fmt.Errorf("%w: %d exceeds limit %d", ErrBadVertexCount, n, cfg.MaxVertices)}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read header: %w", err)
	}

	adj, err := core.NewAdjacency(n)
	if err != nil {
		return nil, &ParseError{Line: 1, Text: strconv.Itoa(n), Err: ErrBadVertexCount}
	}

	// 2) Edge lines until end of stream.
	cfg.OnEdgesBegin()
	line := 1
	for sc.Scan() {
		line++
		text := sc.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		e, err := parseEdge(fields, n)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		if err = adj.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: fmt.Errorf("%w: %v", ErrVertexOutOfRange, err)}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read line %d: %w", line+1, err)
	}

	adj.Freeze()

	return adj, nil
}

// parseEdge converts three fields into an edge, validating range and sign.
func parseEdge(fields []string, n int) (core.Edge, error) {
	if len(fields) != 3 {
		return core.Edge{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}

	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: source %q", ErrBadNumber, fields[0])
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: destination %q", ErrBadNumber, fields[1])
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: weight %q", ErrBadNumber, fields[2])
	}

	if from < 1 || from > n {
		return core.Edge{}, fmt.Errorf("%w: source %d not in [1,%d]", ErrVertexOutOfRange, from, n)
	}
	if to < 1 || to > n {
		return core.Edge{}, fmt.Errorf("%w: destination %d not in [1,%d]", ErrVertexOutOfRange, to, n)
	}
	if w < 0 {
		return core.Edge{}, fmt.Errorf("%w: %d", ErrNegativeWeight, w)
	}

	return core.Edge{From: core.VertexID(from), To: core.VertexID(to), Weight: w}, nil
}

func parseCountStrict(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, ErrBadVertexCount
	}

	return n, nil
}

// parseCountLenient follows atoi: skip leading space, optional sign, then digits.
// No digits gives 0; a negative count is clamped to 0.
func parseCountLenient(s string) (int, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || neg {
		return 0, nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadVertexCount, err)
	}

	return n, nil
}
