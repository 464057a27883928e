package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/medexpert/internal/diagnosis"
	"github.com/abhisek/medexpert/internal/patientlog"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <symptoms...>",
	Short: "Diagnose comma-separated symptoms without the UI",
	Example: `  medexpert diagnose "cough, fever, congestion"
  medexpert diagnose sneezing, runny nose, itchy eyes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := loadKnowledge(cmd)
		if err != nil {
			return err
		}

		svc := diagnosis.NewService(kb, patientlog.New(logPath(cmd)))
		res, err := svc.Diagnose(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Symptoms: %s\n", strings.Join(res.Symptoms, ", "))
		if !res.Found() {
			fmt.Fprintln(out, "No diagnosis could be made.")
			return nil
		}
		for _, f := range res.Findings {
			fmt.Fprintf(out, "\nDiagnosis: %s\nTreatment: %s\n", f.Disease, f.Treatment)
		}
		return nil
	},
}
