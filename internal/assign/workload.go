package assign

import (
	"math"

	"github.com/josephgoksu/CrewWing/models"
)

// Utilization bands for member status labels.
const (
	availableBelow  = 65
	optimalBelow    = 85
	busyUpTo        = 95
	overloadedAbove = 95
)

// GetTeamWorkloadSummary aggregates roster utilization for dashboard-style
// reporting. An empty roster yields a zero summary rather than an error.
func GetTeamWorkloadSummary(roster []models.TeamMember) models.WorkloadSummary {
	summaries := make([]models.MemberWorkloadSummary, 0, len(roster))
	totalUtilization := 0.0
	overloaded := 0
	availableCapacity := 0.0
	urgentTasks := 0

	for _, member := range roster {
		util := member.CurrentWorkload.UtilizationPercentage
		summaries = append(summaries, models.MemberWorkloadSummary{
			ID:          member.ID,
			Name:        member.Name,
			Utilization: util,
			ActiveTasks: member.CurrentWorkload.ActiveTasks,
			Status:      memberStatus(util),
		})

		totalUtilization += util
		if util > overloadedAbove {
			overloaded++
		}
		availableCapacity += math.Max(0, 100-util)
		urgentTasks += member.CurrentWorkload.UrgentTasks
	}

	average := 0.0
	if len(roster) > 0 {
		average = totalUtilization / float64(len(roster))
	}

	return models.WorkloadSummary{
		TotalMembers:       len(roster),
		AverageUtilization: average,
		OverloadedMembers:  overloaded,
		AvailableCapacity:  availableCapacity,
		UrgentTasksCount:   urgentTasks,
		MemberSummaries:    summaries,
	}
}

func memberStatus(utilization float64) models.MemberStatus {
	switch {
	case utilization < availableBelow:
		return models.StatusAvailable
	case utilization < optimalBelow:
		return models.StatusOptimal
	case utilization <= busyUpTo:
		return models.StatusBusy
	default:
		return models.StatusOverloaded
	}
}
