package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/CrewWing/internal/analyze"
	"github.com/josephgoksu/CrewWing/internal/assign"
	"github.com/josephgoksu/CrewWing/internal/ui"
	"github.com/josephgoksu/CrewWing/models"
)

var (
	recommendRosterPath  string
	recommendJSON        bool
	recommendTitle       string
	recommendDescription string
	recommendSkills      []string
	recommendRole        string
	recommendPriority    string
	recommendHours       float64
	recommendDeadline    string
	recommendComplexity  string
	recommendCollab      bool
	recommendClient      bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend team members for a task",
	Long: `Recommend filters the roster for eligibility (role, skills, availability,
utilization headroom), scores the remaining members on eight weighted
factors, and prints up to three ranked recommendations with reasoning, risk
factors, and workload impact.

The deadline accepts either a date (2024-01-19) or a natural phrase like
"friday" or "in 3 days".`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVar(&recommendRosterPath, "roster", "", "roster file (JSON or YAML), required")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "emit the result as JSON")
	recommendCmd.Flags().StringVar(&recommendTitle, "title", "", "task title (required)")
	recommendCmd.Flags().StringVar(&recommendDescription, "description", "", "task description")
	recommendCmd.Flags().StringSliceVar(&recommendSkills, "skills", nil, "required skills (comma-separated)")
	recommendCmd.Flags().StringVar(&recommendRole, "role", "", "required role")
	recommendCmd.Flags().StringVar(&recommendPriority, "priority", "medium", "task priority (low|medium|high|urgent)")
	recommendCmd.Flags().Float64Var(&recommendHours, "hours", 4, "estimated hours")
	recommendCmd.Flags().StringVar(&recommendDeadline, "deadline", "", "task deadline (date or phrase)")
	recommendCmd.Flags().StringVar(&recommendComplexity, "complexity", "medium", "task complexity (simple|medium|complex)")
	recommendCmd.Flags().BoolVar(&recommendCollab, "collaboration", false, "task requires collaboration")
	recommendCmd.Flags().BoolVar(&recommendClient, "client-facing", false, "task is client-facing")

	_ = recommendCmd.MarkFlagRequired("title")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ros, err := loadRoster(recommendRosterPath)
	if err != nil {
		PrintError("Failed to load roster file.", err)
		return err
	}
	if ros == nil || len(ros.TeamMembers) == 0 {
		return fmt.Errorf("a roster file with team members is required (--roster or project.rosterFile)")
	}

	task := models.TaskRequirements{
		Title:                 recommendTitle,
		Description:           recommendDescription,
		SkillsRequired:        recommendSkills,
		RoleRequired:          models.UserRole(recommendRole),
		Priority:              models.NormalizePriority(recommendPriority),
		EstimatedHours:        models.ClampHours(recommendHours),
		Complexity:            models.TaskComplexity(recommendComplexity),
		RequiresCollaboration: recommendCollab,
		ClientFacing:          recommendClient,
	}
	if recommendDeadline != "" {
		deadline, err := parseDeadlineFlag(recommendDeadline)
		if err != nil {
			return err
		}
		task.Deadline = &deadline
	}

	recs, err := assign.NewEngine().GetAssignmentRecommendations(task, ros.TeamMembers)
	if err != nil {
		if errors.Is(err, assign.ErrNoEligibleMembers) {
			PrintError("Cannot auto-assign this task: no eligible team members.", err)
		} else {
			PrintError("Failed to compute recommendations.", err)
		}
		return err
	}

	if recommendJSON {
		return printJSON(recs)
	}
	fmt.Print(ui.RenderRecommendations(recs))
	return nil
}

// parseDeadlineFlag accepts an explicit date or any phrase the deadline
// resolver understands.
func parseDeadlineFlag(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, ok := analyze.ResolveDeadlineText(s, time.Now()); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("cannot parse deadline %q", s)
}
