package main

import (
	"fmt"

	"github.com/healthroute/priorityroute/core"
	"github.com/healthroute/priorityroute/dataset"
)

// loadDataset returns the dataset selected by --data, falling back to
// the embedded sample network.
func loadDataset() (*dataset.Dataset, error) {
	if dataPath != "" {
		return dataset.LoadFile(dataPath)
	}

	return dataset.Default()
}

// loadGraph loads the selected dataset and builds its graph.
func loadGraph() (*dataset.Dataset, *core.Graph, error) {
	ds, err := loadDataset()
	if err != nil {
		return nil, nil, err
	}
	g, err := ds.BuildGraph()
	if err != nil {
		return nil, nil, err
	}

	return ds, g, nil
}

// joinPath renders a path as "A -> B -> C".
func joinPath(path []core.NodeID) string {
	out := ""
	for i, id := range path {
		if i > 0 {
			out += " -> "
		}
		out += string(id)
	}

	return out
}

// printResultHeader prints the totals shared by every solver outcome.
func printResultTotals(distance, cost float64) {
	fmt.Printf("Total distance: %.2f km\n", distance)
	fmt.Printf("Priority score: %.4f\n", cost)
}
