// Command shortest computes single-source shortest paths over edge-list files.
//
//	shortest run graph.txt [timing-log]
//	shortest batch --workers 4 a.txt b.txt c.txt
//	shortest gen 1000 4 100 7 -o graph.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
