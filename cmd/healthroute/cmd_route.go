package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/healthroute/priorityroute/core"
	"github.com/healthroute/priorityroute/route"
)

var (
	routeFrom string
	routeTo   string

	routeCmd = &cobra.Command{
		Use:   "route",
		Short: "Compute the priority-weighted route between two cities",
		Long: `Computes the cost-minimal path from --from to --to under the given
--urgency. The cost of a road is distance / (avgPrevalence * urgency):
at high urgency the route diverts toward high-prevalence cities even
when that costs raw kilometers.`,
		RunE: runRoute,
	}
)

func init() {
	routeCmd.Flags().StringVar(&routeFrom, "from", "", "source city (required)")
	routeCmd.Flags().StringVar(&routeTo, "to", "", "destination city (required)")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	_, g, err := loadGraph()
	if err != nil {
		return err
	}

	res, err := route.ShortestPath(g, core.NodeID(routeFrom), core.NodeID(routeTo), urgency)
	if err != nil {
		return err
	}

	if res.Unreachable() {
		fmt.Printf("No route connects %s to %s.\n", routeFrom, routeTo)
		return nil
	}

	fmt.Printf("Route: %s\n", joinPath(res.Path))
	printResultTotals(res.TotalDistance, res.TotalCost)

	return nil
}
