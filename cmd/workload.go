package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/CrewWing/internal/assign"
	"github.com/josephgoksu/CrewWing/internal/ui"
)

var (
	workloadRosterPath string
	workloadJSON       bool
)

var workloadCmd = &cobra.Command{
	Use:   "workload",
	Short: "Summarize team workload",
	Long: `Workload aggregates roster utilization into a dashboard-style summary:
per-member status bands plus team-wide averages, overload counts, and
available capacity.`,
	RunE: runWorkload,
}

func init() {
	rootCmd.AddCommand(workloadCmd)

	workloadCmd.Flags().StringVar(&workloadRosterPath, "roster", "", "roster file (JSON or YAML), required")
	workloadCmd.Flags().BoolVar(&workloadJSON, "json", false, "emit the result as JSON")
}

func runWorkload(cmd *cobra.Command, args []string) error {
	ros, err := loadRoster(workloadRosterPath)
	if err != nil {
		PrintError("Failed to load roster file.", err)
		return err
	}
	if ros == nil {
		return fmt.Errorf("a roster file is required (--roster or project.rosterFile)")
	}

	summary := assign.GetTeamWorkloadSummary(ros.TeamMembers)

	if workloadJSON {
		return printJSON(summary)
	}
	fmt.Print(ui.RenderWorkloadSummary(summary))
	return nil
}
