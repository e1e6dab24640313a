package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/healthroute/priorityroute/core"
	"github.com/healthroute/priorityroute/route"
)

var (
	tourFrom     string
	tourStrategy string

	tourCmd = &cobra.Command{
		Use:   "tour",
		Short: "Compute a greedy whole-network tour from a starting city",
		Long: `Walks the network greedily from --from, visiting one unvisited direct
neighbor per step. Strategy "nearest-cost" always takes the cheapest
edge under the priority-weighted cost; "greedy-priority" maximizes
(avgPrevalence * urgency) / distance instead. Cities with no unvisited
direct neighbor from the current position are omitted: a partial tour
is a valid outcome.`,
		RunE: runTour,
	}
)

func init() {
	tourCmd.Flags().StringVar(&tourFrom, "from", "", "starting city (required)")
	tourCmd.Flags().StringVar(&tourStrategy, "strategy", "nearest-cost",
		"tour strategy: nearest-cost or greedy-priority")
	_ = tourCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(tourCmd)
}

func runTour(cmd *cobra.Command, args []string) error {
	_, g, err := loadGraph()
	if err != nil {
		return err
	}

	var res route.Result
	switch tourStrategy {
	case "nearest-cost":
		res, err = route.NearestCostTour(g, core.NodeID(tourFrom), urgency)
	case "greedy-priority":
		res, err = route.GreedyPriorityTour(g, core.NodeID(tourFrom), urgency)
	default:
		return fmt.Errorf("unknown strategy %q (want nearest-cost or greedy-priority)", tourStrategy)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Tour: %s\n", joinPath(res.Path))
	fmt.Printf("Cities visited: %d/%d\n", len(res.Path), g.NodeCount())
	printResultTotals(res.TotalDistance, res.TotalCost)

	return nil
}
