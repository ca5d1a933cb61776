package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ctestwin/internal/lg8"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.lg8>",
		Short: "Show the settings stored in a log container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read container: %w", err)
			}
			sum, err := lg8.Decode(data)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "QSO count:     %d\n", sum.QSOCount)
			fmt.Fprintf(out, "Band:          %s\n", sum.BandLabel)
			fmt.Fprintf(out, "Mode:          %s\n", sum.ModeLabel)
			fmt.Fprintf(out, "Contest kind:  %d\n", sum.ContestKind)
			fmt.Fprintf(out, "001 style:     %v\n", sum.Is001Style)
			fmt.Fprintf(out, "Dupe policy:   %d\n", sum.DupePolicy)
			fmt.Fprintf(out, "Twice-1:       %v\n", sum.TwiceMinusOne)
			if len(sum.ClubOps) > 0 {
				fmt.Fprintf(out, "Club ops:      %s\n", strings.Join(sum.ClubOps, ", "))
			}
			if sum.MultiPath != "" {
				fmt.Fprintf(out, "Multi path:    %s\n", sum.MultiPath)
			}
			fmt.Fprintf(out, "Trailer at:    %d (0x%02X)\n", sum.TrailerOffset, sum.TrailerOffset)
			return nil
		},
	}
}
