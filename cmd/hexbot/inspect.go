package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/paq1/spring-challenge-2023/internal/config"
	"github.com/paq1/spring-challenge-2023/pkg/hive"
	"github.com/paq1/spring-challenge-2023/pkg/protocol"
)

func newInspectCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <map-file>",
		Short: "Print the cells of a recorded init block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return inspectMap(f, cmd.OutOrStdout())
		},
	}
}

// inspectMap reads an init block from r and prints one row per cell with
// its distance from the first own base.
func inspectMap(r io.Reader, w io.Writer) error {
	setup, err := protocol.NewDecoder(r).ReadInit()
	if err != nil {
		return err
	}
	g, err := hive.NewGraph(setup.Cells)
	if err != nil {
		return err
	}
	base := setup.MyBase()
	if !g.Contains(base) {
		return fmt.Errorf("%w: %d", hive.ErrUnknownBase, base)
	}
	dist := hive.NewDistanceIndex(g, base)

	title := color.New(color.FgCyan, color.Bold)
	title.Fprintf(w, "Map: %d cells, base %d, opponent base %d\n", g.Len(), base, setup.OppBase())

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Cell", "Kind", "Resources", "Distance", "Neighbors"}),
	)
	for i := 0; i < g.Len(); i++ {
		id := hive.CellID(i)
		distance := "-"
		if d := hive.DistanceTo(g, base, id); d >= 0 {
			distance = strconv.Itoa(d)
		}
		table.Append([]string{
			strconv.Itoa(i),
			g.Kind(id).String(),
			strconv.Itoa(g.InitialResources(id)),
			distance,
			formatNeighbors(g.Neighbors(id)),
		})
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Eggs: %d cells, %d total\n", len(g.CellsOfKind(hive.Egg)), total(g, hive.Egg))
	fmt.Fprintf(w, "Crystals: %d cells, %d total\n", len(g.CellsOfKind(hive.Crystal)), total(g, hive.Crystal))
	fmt.Fprintf(w, "Reachable resource cells: %d\n", len(dist.Cells()))
	return nil
}

func formatNeighbors(nbs [hive.NeighborCount]hive.CellID) string {
	var parts []string
	for _, nb := range nbs {
		if nb != hive.NoCell {
			parts = append(parts, strconv.Itoa(int(nb)))
		}
	}
	return strings.Join(parts, " ")
}

func total(g *hive.Graph, k hive.Kind) int {
	n := 0
	for _, id := range g.CellsOfKind(k) {
		n += g.InitialResources(id)
	}
	return n
}
