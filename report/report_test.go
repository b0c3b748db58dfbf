package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortest/report"
	"github.com/katalvlaran/shortest/sssp"
)

type frozenClock struct{ t time.Time }

func (c frozenClock) Now() time.Time { return c.t }

func scenarioC(t *testing.T) *sssp.Report {
	t.Helper()
	rep, err := sssp.Compute(context.Background(), strings.NewReader("3\n1 2 5\n"),
		sssp.WithClock(frozenClock{t: time.Unix(1, 0)}))
	require.NoError(t, err)

	return rep
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"":     report.FormatText,
		"text": report.FormatText,
		"json": report.FormatJSON,
		"yaml": report.FormatYAML,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := report.ParseFormat("xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, scenarioC(t), report.FormatText))

	want := "Min Costs:\n" +
		"    Vertex 1:          0 Path: 1\n" +
		"    Vertex 2:          5 Path: 1 2\n" +
		"    Vertex 3:        n/a Path: unreachable\n" +
		"\n" +
		"The algorithm took 0 microseconds to perform.\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_JSON(t *testing.T) {
	rep := scenarioC(t)
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, rep, report.FormatJSON))

	var doc struct {
		RunID   string `json:"run_id"`
		Results []struct {
			Vertex   int    `json:"vertex"`
			Cost     *int64 `json:"cost"`
			Path     []int  `json:"path"`
			Rendered string `json:"rendered"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, rep.RunID.String(), doc.RunID)
	require.Len(t, doc.Results, 3)
	require.NotNil(t, doc.Results[1].Cost)
	assert.Equal(t, int64(5), *doc.Results[1].Cost)
	assert.Equal(t, []int{1, 2}, doc.Results[1].Path)
	assert.Nil(t, doc.Results[2].Cost)
	assert.Empty(t, doc.Results[2].Path)
	assert.Equal(t, "unreachable", doc.Results[2].Rendered)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, scenarioC(t), report.FormatYAML))

	var doc struct {
		Vertices  int `yaml:"vertices"`
		Reachable int `yaml:"reachable"`
		Results   []struct {
			Vertex int    `yaml:"vertex"`
			Cost   *int64 `yaml:"cost"`
			Path   []int  `yaml:"path"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 3, doc.Vertices)
	assert.Equal(t, 2, doc.Reachable)
	require.Len(t, doc.Results, 3)
	assert.Equal(t, []int{1, 2}, doc.Results[1].Path)
	assert.Nil(t, doc.Results[2].Cost)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := report.Write(&bytes.Buffer{}, scenarioC(t), report.Format("csv"))
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestWriteAdjacency(t *testing.T) {
	rep, err := sssp.Compute(context.Background(), strings.NewReader("3\n2 3 2\n1 2 5\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteAdjacency(&buf, rep.Adjacency))
	want := "Graph:\n" +
		" Start_Vertex Dest_Vertex Cost\n" +
		"      1           2          5\n" +
		"      2           3          2\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestAppendTiming(t *testing.T) {
	name := filepath.Join(t.TempDir(), "times.txt")
	require.NoError(t, report.AppendTiming(name, 120))
	require.NoError(t, report.AppendTiming(name, 7))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "120 7 ", string(data))
}

func TestAppendTiming_BadPath(t *testing.T) {
	err := report.AppendTiming(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), 1)
	require.Error(t, err)
}
