package report

import (
	"github.com/katalvlaran/shortest/path"
	"github.com/katalvlaran/shortest/sssp"
)

// document is the machine-readable shape shared by json and yaml.
type document struct {
	RunID     string     `json:"run_id" yaml:"run_id"`
	Input     string     `json:"input,omitempty" yaml:"input,omitempty"`
	Source    int        `json:"source" yaml:"source"`
	Vertices  int        `json:"vertices" yaml:"vertices"`
	Edges     int        `json:"edges" yaml:"edges"`
	Reachable int        `json:"reachable" yaml:"reachable"`
	Micros    int64      `json:"micros" yaml:"micros"`
	Region    string     `json:"region" yaml:"region"`
	Stats     statsDoc   `json:"stats" yaml:"stats"`
	Results   []entryDoc `json:"results" yaml:"results"`
}

type statsDoc struct {
	Pops        int `json:"pops" yaml:"pops"`
	StalePops   int `json:"stale_pops" yaml:"stale_pops"`
	Pushes      int `json:"pushes" yaml:"pushes"`
	Relaxations int `json:"relaxations" yaml:"relaxations"`
}

type entryDoc struct {
	Vertex    int    `json:"vertex" yaml:"vertex"`
	Cost      *int64 `json:"cost" yaml:"cost"` // nil when unreachable
	Reachable bool   `json:"reachable" yaml:"reachable"`
	Path      []int  `json:"path" yaml:"path,flow"`
	Rendered  string `json:"rendered" yaml:"rendered"`
}

func newDocument(rep *sssp.Report) document {
	doc := document{
		RunID:     rep.RunID.String(),
		Input:     rep.Input,
		Source:    int(rep.Source),
		Vertices:  rep.VertexCount,
		Edges:     rep.EdgeCount,
		Reachable: rep.Reachable,
		Micros:    rep.Micros,
		Region:    string(rep.Region),
		Stats: statsDoc{
			Pops:        rep.Stats.Pops,
			StalePops:   rep.Stats.StalePops,
			Pushes:      rep.Stats.Pushes,
			Relaxations: rep.Stats.Relaxations,
		},
		Results: make([]entryDoc, 0, len(rep.Entries)),
	}
	for _, e := range rep.Entries {
		ed := entryDoc{Vertex: int(e.Vertex), Reachable: e.Reachable, Path: []int{}, Rendered: path.Unreachable}
		if e.Reachable {
			c := e.Cost
			ed.Cost = &c
			ed.Path = e.Path.Ints()
			ed.Rendered = e.Path.String()
		}
		doc.Results = append(doc.Results, ed)
	}

	return doc
}
