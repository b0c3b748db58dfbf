package sssp_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/shortest/builder"
	"github.com/katalvlaran/shortest/core"
	"github.com/katalvlaran/shortest/loader"
	"github.com/katalvlaran/shortest/sssp"
	"github.com/katalvlaran/shortest/timing"
)

// stepClock advances by step on every Now call and counts the calls.
type stepClock struct {
	now   time.Time
	step  time.Duration
	calls int
}

func (c *stepClock) Now() time.Time {
	c.calls++
	c.now = c.now.Add(c.step)
	return c.now
}

type ComputeSuite struct {
	suite.Suite
	ctx context.Context
}

func TestComputeSuite(t *testing.T) {
	suite.Run(t, new(ComputeSuite))
}

func (s *ComputeSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ComputeSuite) compute(in string, opts ...sssp.Option) *sssp.Report {
	rep, err := sssp.Compute(s.ctx, strings.NewReader(in), opts...)
	s.Require().NoError(err)
	return rep
}

func (s *ComputeSuite) TestScenarioA() {
	rep := s.compute("1\n")
	s.Require().Len(rep.Entries, 1)
	s.Equal(sssp.Entry{Vertex: 1, Cost: 0, Reachable: true, Path: core.Path{1}}, rep.Entries[0])
	s.Equal(1, rep.Reachable)
}

func (s *ComputeSuite) TestScenarioB() {
	rep := s.compute("3\n1 2 5\n2 3 2\n1 3 10\n")
	s.Equal(3, rep.VertexCount)
	s.Equal(3, rep.EdgeCount)
	s.Equal(int64(5), rep.Entries[1].Cost)
	s.Equal(int64(7), rep.Entries[2].Cost)
	s.Equal(core.Path{1, 2, 3}, rep.Entries[2].Path)
}

func (s *ComputeSuite) TestScenarioC() {
	rep := s.compute("3\n1 2 5\n")
	s.False(rep.Entries[2].Reachable)
	s.Equal(core.Infinity, rep.Entries[2].Cost)
	s.Nil(rep.Entries[2].Path)
	s.Equal(2, rep.Reachable)
}

func (s *ComputeSuite) TestEmptyGraph() {
	rep := s.compute("0\n")
	s.Empty(rep.Entries)
	s.Zero(rep.Reachable)

	rep = s.compute("")
	s.Empty(rep.Entries)
}

func (s *ComputeSuite) TestMalformedInputPropagates() {
	_, err := sssp.Compute(s.ctx, strings.NewReader("3\n1 2\n"))
	s.Require().Error(err)
	s.ErrorIs(err, loader.ErrFieldCount)

	_, err = sssp.Compute(s.ctx, strings.NewReader("zz\n"))
	s.ErrorIs(err, loader.ErrBadVertexCount)

	_, err = sssp.Compute(s.ctx, strings.NewReader("9223372036854775807\n"))
	s.ErrorIs(err, loader.ErrBadVertexCount)

	rep, err := sssp.Compute(s.ctx, strings.NewReader("zz\n"), sssp.WithLenientCount())
	s.Require().NoError(err)
	s.Zero(rep.VertexCount)
}

func (s *ComputeSuite) TestInvalidOptions() {
	_, err := sssp.Compute(s.ctx, strings.NewReader("1\n"), sssp.WithSource(0))
	s.ErrorIs(err, sssp.ErrOptionViolation)

	_, err = sssp.Compute(s.ctx, strings.NewReader("1\n"), sssp.WithRegion("bogus"))
	s.ErrorIs(err, sssp.ErrOptionViolation)
}

func (s *ComputeSuite) TestTimingUsesClock() {
	clock := &stepClock{now: time.Unix(0, 0), step: 250 * time.Microsecond}
	rep := s.compute("2\n1 2 1\n", sssp.WithClock(clock))

	// one Now at start, one at stop
	s.Equal(2, clock.calls)
	s.Equal(250*time.Microsecond, rep.Elapsed)
	s.Equal(int64(250), rep.Micros)
	s.Equal(timing.RegionLoadAndSolve, rep.Region)
}

func (s *ComputeSuite) TestSolveOnlyRegion() {
	clock := &stepClock{now: time.Unix(0, 0), step: time.Millisecond}
	rep := s.compute("2\n1 2 1\n", sssp.WithClock(clock), sssp.WithRegion(timing.RegionSolveOnly))
	s.Equal(timing.RegionSolveOnly, rep.Region)
	s.Equal(int64(1000), rep.Micros)
}

func (s *ComputeSuite) TestIdempotent() {
	edges, err := builder.Random(80, 3, builder.WithSeed(5))
	s.Require().NoError(err)
	var buf bytes.Buffer
	s.Require().NoError(builder.Write(&buf, 80, edges))
	in := buf.String()

	a := s.compute(in)
	b := s.compute(in)
	s.Equal(a.Entries, b.Entries)
	s.NotEqual(a.RunID, b.RunID)
}

func (s *ComputeSuite) TestCustomSource() {
	rep := s.compute("3\n1 2 5\n3 1 1\n", sssp.WithSource(3))
	s.Equal(core.VertexID(3), rep.Source)
	s.Equal(core.Path{3, 1, 2}, rep.Entries[1].Path)
}

func (s *ComputeSuite) TestLogsRunSummary() {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rep := s.compute("2\n1 2 3\n", sssp.WithLogger(log))

	out := buf.String()
	s.Contains(out, `"msg":"computation finished"`)
	s.Contains(out, `"run_id":"`+rep.RunID.String()+`"`)
	s.Contains(out, `"reachable":2`)
}

func (s *ComputeSuite) TestComputeFile() {
	name := filepath.Join(s.T().TempDir(), "g.txt")
	s.Require().NoError(os.WriteFile(name, []byte("2\n1 2 4\n"), 0o644))

	rep, err := sssp.ComputeFile(s.ctx, name)
	s.Require().NoError(err)
	s.Equal(name, rep.Input)
	s.Equal(int64(4), rep.Entries[1].Cost)

	_, err = sssp.ComputeFile(s.ctx, filepath.Join(s.T().TempDir(), "missing.txt"))
	s.ErrorIs(err, os.ErrNotExist)
}
