// Package shortest computes single-source shortest paths over weighted
// directed graphs read from a plain edge-list stream, and measures how long
// the computation takes.
//
// What is shortest?
//
//	A small, dependency-light engine built around one algorithm:
//		• Loader: "N" header then "from to cost" lines, with line-numbered errors
//		• Dijkstra: binary heap with lazy deletion, settle-once, saturating costs
//		• Paths: parent-chain reconstruction with explicit unreachable results
//		• Timing: monotonic stopwatch, OpenTelemetry span and histogram
//		• Reports: text, JSON and YAML, plus an append-only timing log
//
// Packages:
//
//	core/      VertexID, Edge, Path, tagged Parent, frozen Adjacency
//	loader/    edge-list parser (strict or lenient vertex count)
//	dijkstra/  the engine, with OnSettle/OnRelax hooks and run Stats
//	path/      Reconstruct and Render
//	timing/    Stopwatch, Region, Instrument
//	sssp/      Compute: load → solve → reconstruct, one call
//	report/    output formats and the timing log
//	builder/   seeded random graphs in the input format
//	config/    YAML file + SHORTEST_* environment
//	metrics/   Prometheus textfile export for batch runs
//	cmd/shortest  the CLI: run, batch, gen
//
// Quick example:
//
//	3
//	1 2 5
//	2 3 2
//	1 3 10
//
//	yields cost 7 and path "1 2 3" for vertex 3.
//
//	go install github.com/katalvlaran/shortest/cmd/shortest@latest
package shortest
