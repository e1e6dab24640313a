package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	citiesState string

	citiesCmd = &cobra.Command{
		Use:   "cities",
		Short: "List the cities in the dataset",
		RunE:  runCities,
	}
)

func init() {
	citiesCmd.Flags().StringVar(&citiesState, "state", "", "only list cities in this state")
	rootCmd.AddCommand(citiesCmd)
}

func runCities(cmd *cobra.Command, args []string) error {
	ds, g, err := loadGraph()
	if err != nil {
		return err
	}

	if citiesState != "" {
		for _, id := range ds.CitiesInState(citiesState) {
			fmt.Println(id)
		}
		return nil
	}

	for _, id := range g.NodeIDs() {
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		fmt.Printf("%-16s state=%-10s prevalence=%.2f\n", n.ID, n.State, n.Priority)
	}
	fmt.Printf("\n%d cities, %d roads\n", g.NodeCount(), g.EdgeCount())

	return nil
}
