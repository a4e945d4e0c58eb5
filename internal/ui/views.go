// Package ui renders engine results for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/josephgoksu/CrewWing/models"
)

// RenderParseResult formats an extraction outcome.
func RenderParseResult(result models.ParseResult) string {
	var sb strings.Builder

	sb.WriteString(StyleSectionTitle.Render("Extracted Tasks"))
	sb.WriteString("\n")
	if len(result.Tasks) == 0 {
		sb.WriteString(StyleSubtle.Render("No tasks detected."))
		sb.WriteString("\n")
	}
	for i, task := range result.Tasks {
		sb.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, StyleTitle.Render(task.Title), priorityBadge(task.Priority)))
		if task.Description != "" {
			sb.WriteString("   " + StyleSubtle.Render(task.Description) + "\n")
		}
		var details []string
		if task.EstimatedHours > 0 {
			details = append(details, fmt.Sprintf("%.1fh", task.EstimatedHours))
		}
		if task.DueDate != nil {
			details = append(details, "due "+task.DueDate.Format("Mon Jan 2 15:04"))
		}
		if task.AssigneeID != "" {
			details = append(details, "assignee: "+task.AssigneeID)
		}
		if task.ProjectID != "" {
			details = append(details, "project: "+task.ProjectID)
		}
		if len(task.Tags) > 0 {
			details = append(details, "tags: "+strings.Join(task.Tags, ", "))
		}
		details = append(details, fmt.Sprintf("confidence %.0f%%", task.Confidence*100))
		sb.WriteString("   " + StyleText.Render(strings.Join(details, " | ")) + "\n")
	}

	sb.WriteString(StyleSubtle.Render(fmt.Sprintf("Overall confidence: %.0f%%", result.Confidence*100)))
	sb.WriteString("\n")
	for _, s := range result.Suggestions {
		sb.WriteString(StyleSubtle.Render("- "+s) + "\n")
	}
	return sb.String()
}

// RenderContextAnalysis formats the five context clues.
func RenderContextAnalysis(clues models.ContextAnalysis) string {
	var sb strings.Builder

	sb.WriteString(StyleSectionTitle.Render("Context Analysis"))
	sb.WriteString("\n")

	sb.WriteString(StyleTitle.Render("Urgency: "))
	sb.WriteString(fmt.Sprintf("%s (%.0f%%)\n", clues.Urgency.Level, clues.Urgency.Confidence*100))
	if len(clues.Urgency.Indicators) > 0 {
		sb.WriteString(StyleSubtle.Render("  indicators: "+strings.Join(clues.Urgency.Indicators, ", ")) + "\n")
	}

	sb.WriteString(StyleTitle.Render("Assignees: "))
	sb.WriteString(fmt.Sprintf("%.0f%%\n", clues.Assignees.Confidence*100))
	for _, s := range clues.Assignees.Suggestions {
		sb.WriteString(StyleSubtle.Render(fmt.Sprintf("  %s (%s, %.0f%%)", s.Value, s.Type, s.Confidence*100)) + "\n")
	}

	sb.WriteString(StyleTitle.Render("Deadline: "))
	if clues.Deadlines.ExtractedDate != nil {
		sb.WriteString(fmt.Sprintf("%s (%s, %.0f%%)\n", clues.Deadlines.ExtractedDate.Format("Mon Jan 2 15:04"), clues.Deadlines.Type, clues.Deadlines.Confidence*100))
	} else {
		sb.WriteString(StyleSubtle.Render("none detected") + "\n")
	}

	sb.WriteString(StyleTitle.Render("Projects: "))
	sb.WriteString(fmt.Sprintf("%.0f%%\n", clues.Projects.Confidence*100))
	for _, s := range clues.Projects.Suggestions {
		sb.WriteString(StyleSubtle.Render(fmt.Sprintf("  %s (%s, %.0f%%)", s.Value, s.Type, s.Confidence*100)) + "\n")
	}

	sb.WriteString(StyleTitle.Render("Dependencies: "))
	sb.WriteString(fmt.Sprintf("%.0f%%\n", clues.Dependencies.Confidence*100))
	for _, s := range clues.Dependencies.Suggestions {
		sb.WriteString(StyleSubtle.Render(fmt.Sprintf("  %s: %s", s.Type, s.Description)) + "\n")
	}

	return sb.String()
}

// RenderRecommendations formats ranked assignment recommendations.
func RenderRecommendations(recs []models.AssignmentRecommendation) string {
	var sb strings.Builder

	sb.WriteString(StyleSectionTitle.Render("Assignment Recommendations"))
	sb.WriteString("\n")
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, StyleTitle.Render(rec.MemberName), StyleHighlight.Render(fmt.Sprintf("%.0f%%", rec.Confidence*100))))
		for _, reason := range rec.Reasoning {
			sb.WriteString("   " + StyleSuccess.Render("+ "+reason) + "\n")
		}
		for _, risk := range rec.RiskFactors {
			sb.WriteString("   " + StyleWarning.Render("! "+risk) + "\n")
		}
		impact := rec.WorkloadImpact
		sb.WriteString("   " + StyleSubtle.Render(fmt.Sprintf("impact: %.0f%% utilization (+%.0f%%), delivery %s",
			impact.NewUtilization, impact.TaskLoadIncrease, impact.EstimatedDeliveryDate.Format("Mon Jan 2"))) + "\n")
		for _, alt := range rec.AlternativeOptions {
			sb.WriteString("   " + StyleSubtle.Render(fmt.Sprintf("alt: %s (%.0f%%, %s)", alt.MemberName, alt.Confidence*100, alt.Reason)) + "\n")
		}
	}
	return sb.String()
}

// RenderWorkloadSummary formats the team workload dashboard.
func RenderWorkloadSummary(summary models.WorkloadSummary) string {
	var sb strings.Builder

	sb.WriteString(StyleSectionTitle.Render("Team Workload"))
	sb.WriteString("\n")
	sb.WriteString(StyleText.Render(fmt.Sprintf("%d members | avg utilization %.0f%% | %d overloaded | %.0f%% capacity available | %d urgent tasks",
		summary.TotalMembers, summary.AverageUtilization, summary.OverloadedMembers, summary.AvailableCapacity, summary.UrgentTasksCount)))
	sb.WriteString("\n")

	for _, m := range summary.MemberSummaries {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			StyleTitle.Render(m.Name),
			statusStyle(m.Status).Render(fmt.Sprintf("%.0f%% (%s, %d active)", m.Utilization, m.Status, m.ActiveTasks))))
	}
	return sb.String()
}

func priorityBadge(p models.TaskPriority) string {
	switch p {
	case models.PriorityUrgent:
		return StyleError.Render("[urgent]")
	case models.PriorityHigh:
		return StyleWarning.Render("[high]")
	case models.PriorityLow:
		return StyleSubtle.Render("[low]")
	default:
		return StyleText.Render("[medium]")
	}
}

func statusStyle(s models.MemberStatus) lipgloss.Style {
	switch s {
	case models.StatusOverloaded:
		return StyleError
	case models.StatusBusy:
		return StyleWarning
	case models.StatusAvailable:
		return StyleSuccess
	default:
		return StyleText
	}
}
