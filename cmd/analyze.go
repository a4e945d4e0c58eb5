package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/CrewWing/internal/analyze"
	"github.com/josephgoksu/CrewWing/internal/ui"
)

var (
	analyzeRosterPath string
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [message]",
	Short: "Show the context analysis for a message",
	Long: `Analyze runs the five context analyzers over a message without creating
any tasks: urgency indicators, assignee suggestions, deadline resolution,
project references, and dependency relationships. Supplying a roster file
sharpens assignee and project matching.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeRosterPath, "roster", "", "roster file (JSON or YAML) for context-aware analysis")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit the result as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	message, err := readMessage(args)
	if err != nil {
		return err
	}

	ros, err := loadRoster(analyzeRosterPath)
	if err != nil {
		PrintError("Failed to load roster file.", err)
		return err
	}

	clues := analyze.NewAnalyzer().AnalyzeContext(message, ros.ReferenceData())

	if analyzeJSON {
		return printJSON(clues)
	}
	fmt.Print(ui.RenderContextAnalysis(clues))
	return nil
}
