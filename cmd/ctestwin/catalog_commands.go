package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ctestwin/internal/catalog"
)

func newBandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "List the band table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(catalog.Bands()))
			for _, b := range catalog.Bands() {
				rows = append(rows, []string{strconv.Itoa(int(b.Code)), b.Label})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRows(
				[]string{"Code", "Band"}, rows,
				[]columnAlignment{alignRight, alignLeft},
			))
			return nil
		},
	}
}

func newModesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the mode table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(catalog.Modes()))
			for _, m := range catalog.Modes() {
				rows = append(rows, []string{strconv.Itoa(int(m.Code)), m.Label})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRows(
				[]string{"Code", "Mode"}, rows,
				[]columnAlignment{alignRight, alignLeft},
			))
			return nil
		},
	}
}

func newContestsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contests",
		Short: "List the contest table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(catalog.Contests()))
			for _, c := range catalog.Contests() {
				kind := "md"
				if c.KindKnown {
					kind = strconv.Itoa(int(c.Kind))
				}
				rows = append(rows, []string{c.Name, c.Key, kind})
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRows(
				[]string{"Contest", "Key", "Kind"}, rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}
