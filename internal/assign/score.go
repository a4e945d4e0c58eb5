package assign

import (
	"math"
	"strings"
	"time"

	"github.com/josephgoksu/CrewWing/models"
)

// Factor weights. They sum to 1.0 and are deliberately skewed toward skill
// and workload: the two signals that most often decide real assignments.
const (
	weightSkillMatch      = 0.25
	weightWorkloadBalance = 0.20
	weightRoleAlignment   = 0.15
	weightPerformance     = 0.15
	weightAvailability    = 0.10
	weightPreferences     = 0.08
	weightCollaboration   = 0.05
	weightUrgencyFit      = 0.02
)

// factorScores holds the per-factor breakdown plus the weighted total.
type factorScores struct {
	skillMatch      float64
	workloadBalance float64
	roleAlignment   float64
	performance     float64
	availability    float64
	preferences     float64
	collaboration   float64
	urgencyFit      float64
	total           float64
}

// roleTaskKeywords associates each role with the kinds of work it tends to
// absorb. Clients never get assigned work, hence the empty set.
var roleTaskKeywords = map[models.UserRole][]string{
	models.RoleProjectManager: {"planning", "coordination", "management", "communication"},
	models.RoleTeamMember:     {"development", "design", "implementation", "execution"},
	models.RoleAgencyAdmin:    {"strategy", "oversight", "planning"},
	models.RoleClient:         {},
	models.RoleSuperAdmin:     {"technical", "complex", "urgent"},
}

func calculateScores(task models.TaskRequirements, member models.TeamMember, now, deadline time.Time) factorScores {
	s := factorScores{
		skillMatch:      skillMatchScore(task, member),
		workloadBalance: workloadScore(member),
		roleAlignment:   roleAlignmentScore(task, member),
		performance:     performanceScore(member),
		availability:    availabilityScore(task, member, now, deadline),
		preferences:     preferenceScore(task, member),
		collaboration:   collaborationScore(task, member),
		urgencyFit:      urgencyFitScore(task, member),
	}
	s.total = s.skillMatch*weightSkillMatch +
		s.workloadBalance*weightWorkloadBalance +
		s.roleAlignment*weightRoleAlignment +
		s.performance*weightPerformance +
		s.availability*weightAvailability +
		s.preferences*weightPreferences +
		s.collaboration*weightCollaboration +
		s.urgencyFit*weightUrgencyFit
	return s
}

// skillMatchScore is 0.8 neutral when the task names no skills. Otherwise the
// matched fraction, plus 0.1 per member skill mentioned in the description,
// capped at 1.0.
func skillMatchScore(task models.TaskRequirements, member models.TeamMember) float64 {
	if len(task.SkillsRequired) == 0 {
		return 0.8
	}

	matched := 0
	for _, req := range task.SkillsRequired {
		if skillsMatch(req, member.Skills) {
			matched++
		}
	}
	base := float64(matched) / float64(len(task.SkillsRequired))

	description := strings.ToLower(task.Description)
	bonus := 0
	for _, skill := range member.Skills {
		if skill != "" && strings.Contains(description, strings.ToLower(skill)) {
			bonus++
		}
	}

	return math.Min(base+float64(bonus)*0.1, 1.0)
}

// workloadScore peaks at 1.0 in the 75-85% utilization band, with a gentle
// penalty for underutilization and a steep one above the band.
func workloadScore(member models.TeamMember) float64 {
	utilization := member.CurrentWorkload.UtilizationPercentage / 100

	switch {
	case utilization <= 0.75:
		return 1.0 - (0.75-utilization)*0.5
	case utilization <= 0.85:
		return 1.0
	default:
		return math.Max(0.1, 1.0-(utilization-0.85)*4)
	}
}

func roleAlignmentScore(task models.TaskRequirements, member models.TeamMember) float64 {
	keywords := roleTaskKeywords[member.Role]
	taskText := strings.ToLower(task.Title + " " + task.Description)

	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(taskText, keyword) {
			matches++
		}
	}

	base := 0.5
	if len(keywords) > 0 {
		base = float64(matches) / float64(len(keywords))
	}
	if matches > 0 {
		return math.Max(base, 0.6)
	}
	return base
}

func performanceScore(member models.TeamMember) float64 {
	m := member.Performance
	return m.TaskCompletionRate*0.3 +
		m.OnTimeDeliveryRate*0.25 +
		(m.QualityScore/10)*0.2 +
		(m.ClientSatisfactionScore/10)*0.15 +
		(m.CollaborationScore/10)*0.1
}

// availabilityScore compares hours available before the deadline against
// hours required, in bands. No covering window scores a flat 0.1.
func availabilityScore(task models.TaskRequirements, member models.TeamMember, now, deadline time.Time) float64 {
	var window *models.AvailabilityWindow
	for i := range member.Availability {
		w := &member.Availability[i]
		if !w.StartDate.After(now) && !w.EndDate.Before(deadline) {
			window = w
			break
		}
	}
	if window == nil {
		return 0.1
	}

	daysUntilDeadline := math.Max(1, math.Ceil(deadline.Sub(now).Hours()/24))
	availableHours := window.HoursPerDay * daysUntilDeadline
	requiredHours := task.EstimatedHours

	switch {
	case availableHours >= requiredHours*2:
		return 1.0
	case availableHours >= requiredHours*1.5:
		return 0.9
	case availableHours >= requiredHours:
		return 0.7
	default:
		return 0.3
	}
}

func preferenceScore(task models.TaskRequirements, member models.TeamMember) float64 {
	prefs := member.Preferences
	score := 0.5

	title := strings.ToLower(task.Title)
	description := strings.ToLower(task.Description)
	for _, taskType := range prefs.PreferredTaskTypes {
		t := strings.ToLower(taskType)
		if strings.Contains(title, t) || strings.Contains(description, t) {
			score += 0.3
			break
		}
	}

	for _, level := range prefs.PreferredUrgencyLevels {
		if level == task.Priority {
			score += 0.2
			break
		}
	}

	if member.CurrentWorkload.ActiveTasks < prefs.MaxConcurrentTasks {
		score += 0.1
	}

	return math.Min(score, 1.0)
}

func collaborationScore(task models.TaskRequirements, member models.TeamMember) float64 {
	if !task.RequiresCollaboration {
		return 0.8
	}
	return member.Performance.CollaborationScore / 10
}

// urgencyFitScore only differentiates on urgent tasks, where members with a
// clean overdue record and reliable delivery win out.
func urgencyFitScore(task models.TaskRequirements, member models.TeamMember) float64 {
	if task.Priority != models.PriorityUrgent {
		return 0.8
	}

	activeTasks := math.Max(float64(member.CurrentWorkload.ActiveTasks), 1)
	overdueRatio := float64(member.CurrentWorkload.OverdueTasks) / activeTasks
	return math.Max(0.1, 1.0-overdueRatio) * member.Performance.OnTimeDeliveryRate
}
