package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the knowledge base rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := loadKnowledge(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-18s  %-58s  %s\n", "Disease", "Symptoms", "Treatment")
		fmt.Fprintln(out, strings.Repeat("─", 130))

		for _, e := range kb.Entries() {
			fmt.Fprintf(out, "%-18s  %-58s  %s\n",
				e.Disease, strings.Join(e.Symptoms, ", "), e.Treatment)
		}

		fmt.Fprintf(out, "\n%d rules\n", kb.Len())
		return nil
	},
}
