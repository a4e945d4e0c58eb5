package assign

import (
	"fmt"
	"math"
	"time"

	"github.com/josephgoksu/CrewWing/models"
)

// buildRecommendation assembles the user-facing explanation for one scored
// member: reasoning for the strongest factors, risk flags, runner-up
// alternatives, and a workload projection.
func (e *Engine) buildRecommendation(task models.TaskRequirements, s scoredMember, allScored []scoredMember, now time.Time) models.AssignmentRecommendation {
	member := s.member
	scores := s.scores

	var reasoning []string
	if scores.skillMatch > 0.8 {
		reasoning = append(reasoning, fmt.Sprintf("Excellent skill match (%.0f%% alignment)", math.Round(scores.skillMatch*100)))
	}
	if scores.workloadBalance > 0.8 {
		reasoning = append(reasoning, fmt.Sprintf("Good workload balance (%.0f%% utilization)", math.Round(member.CurrentWorkload.UtilizationPercentage)))
	}
	if scores.performance > 0.8 {
		reasoning = append(reasoning, fmt.Sprintf("Strong performance history (%.0f%% completion rate)", math.Round(member.Performance.TaskCompletionRate*100)))
	}
	if scores.roleAlignment > 0.7 {
		reasoning = append(reasoning, "Role aligns well with task requirements")
	}

	var riskFactors []string
	if member.CurrentWorkload.UtilizationPercentage > 85 {
		riskFactors = append(riskFactors, fmt.Sprintf("High current workload (%.0f%% utilized)", math.Round(member.CurrentWorkload.UtilizationPercentage)))
	}
	if member.CurrentWorkload.OverdueTasks > 0 {
		riskFactors = append(riskFactors, fmt.Sprintf("Has %d overdue task(s)", member.CurrentWorkload.OverdueTasks))
	}
	if scores.availability < 0.5 {
		riskFactors = append(riskFactors, "Limited availability for task timeline")
	}

	alternatives := make([]models.AlternativeOption, 0, 2)
	for _, other := range allScored {
		if other.member.ID == member.ID {
			continue
		}
		if len(alternatives) == 2 {
			break
		}
		reason := "Available capacity"
		if other.scores.skillMatch > 0.7 {
			reason = "Good skill match"
		}
		alternatives = append(alternatives, models.AlternativeOption{
			MemberID:   other.member.ID,
			MemberName: other.member.Name,
			Confidence: models.ClampConfidence(other.scores.total),
			Reason:     reason,
		})
	}

	return models.AssignmentRecommendation{
		MemberID:           member.ID,
		MemberName:         member.Name,
		Confidence:         models.ClampConfidence(scores.total),
		Reasoning:          reasoning,
		RiskFactors:        riskFactors,
		AlternativeOptions: alternatives,
		WorkloadImpact:     projectWorkloadImpact(task, member, now),
	}
}

// projectWorkloadImpact estimates how the assignment changes the member's
// load and when the task would land.
func projectWorkloadImpact(task models.TaskRequirements, member models.TeamMember, now time.Time) models.WorkloadImpact {
	loadIncrease := 0.0
	if member.CurrentWorkload.WeeklyCapacity > 0 {
		loadIncrease = task.EstimatedHours / member.CurrentWorkload.WeeklyCapacity * 100
	}

	hoursPerDay := 8.0
	if len(member.Availability) > 0 && member.Availability[0].HoursPerDay > 0 {
		hoursPerDay = member.Availability[0].HoursPerDay
	}
	deliveryDays := int(math.Ceil(task.EstimatedHours / hoursPerDay))

	return models.WorkloadImpact{
		NewUtilization:        math.Round(member.CurrentWorkload.UtilizationPercentage + loadIncrease),
		TaskLoadIncrease:      math.Round(loadIncrease),
		EstimatedDeliveryDate: now.AddDate(0, 0, deliveryDays),
	}
}
