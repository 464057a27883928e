package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/medexpert/internal/app"
	"github.com/abhisek/medexpert/internal/diagnosis"
	"github.com/abhisek/medexpert/internal/knowledge"
	"github.com/abhisek/medexpert/internal/patientlog"
)

var rootCmd = &cobra.Command{
	Use:   "medexpert",
	Short: "Rule-based symptom checker",
	Long:  "medexpert — terminal expert system that maps comma-separated symptoms to candidate diseases and treatment advice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := loadKnowledge(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{
			Knowledge: kb,
			Service:   diagnosis.NewService(kb, patientlog.New(logPath(cmd))),
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log", patientlog.DefaultPath, "Path to the patient log file")
	rootCmd.PersistentFlags().String("rules", "", "Path to a YAML knowledge base (default: built-in rules)")

	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadKnowledge returns the knowledge base named by --rules, or the
// built-in one when the flag is empty.
func loadKnowledge(cmd *cobra.Command) (*knowledge.Base, error) {
	p, _ := cmd.Flags().GetString("rules")
	if p == "" {
		return knowledge.Default(), nil
	}
	kb, err := knowledge.LoadFile(p)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return kb, nil
}

func logPath(cmd *cobra.Command) string {
	p, _ := cmd.Flags().GetString("log")
	return p
}
