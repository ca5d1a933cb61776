package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ctestwin/internal/contestmeta"
)

func newMetaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "meta <file.md>",
		Short: "Show contest metadata extracted from a contest description",
		Long: `Show the metadata a user-defined contest description would contribute to
container creation, plus the identity that results once defaults are applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := contestmeta.ExtractFile(args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Provenance:   %s\n", meta.Provenance)
			if meta.KindSet {
				fmt.Fprintf(out, "ContestKind:  %d\n", meta.Kind)
			} else {
				fmt.Fprintln(out, "ContestKind:  (absent)")
			}
			fmt.Fprintf(out, "ContestKey:   %s\n", orAbsent(meta.Key))
			fmt.Fprintf(out, "ContestName:  %s\n", orAbsent(meta.Name))

			identity := contestmeta.Resolve(contestmeta.Metadata{}, meta)
			fmt.Fprintf(out, "\nResolved identity: key=%s kind=%d\n", identity.Key, identity.Kind)
			return nil
		},
	}
}

func orAbsent(value string) string {
	if value == "" {
		return "(absent)"
	}
	return value
}
