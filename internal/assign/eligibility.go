package assign

import (
	"strings"
	"time"

	"github.com/josephgoksu/CrewWing/models"
)

// filterEligibleMembers applies the hard requirements: role, skills,
// availability over the task window, and a utilization ceiling of 95%.
func filterEligibleMembers(task models.TaskRequirements, roster []models.TeamMember, now, deadline time.Time) []models.TeamMember {
	var eligible []models.TeamMember
	for _, member := range roster {
		if task.RoleRequired != "" && member.Role != task.RoleRequired {
			continue
		}
		if !hasRequiredSkills(task.SkillsRequired, member.Skills) {
			continue
		}
		if !isAvailableForWindow(member, now, deadline) {
			continue
		}
		if member.CurrentWorkload.UtilizationPercentage > 95 {
			continue
		}
		eligible = append(eligible, member)
	}
	return eligible
}

// hasRequiredSkills requires every needed skill to substring-match at least
// one member skill, case-insensitively and in either direction ("figma"
// satisfies "figma design" and vice versa).
func hasRequiredSkills(required, memberSkills []string) bool {
	for _, req := range required {
		if !skillsMatch(req, memberSkills) {
			return false
		}
	}
	return true
}

func skillsMatch(required string, memberSkills []string) bool {
	req := strings.ToLower(required)
	for _, skill := range memberSkills {
		s := strings.ToLower(skill)
		if strings.Contains(s, req) || strings.Contains(req, s) {
			return true
		}
	}
	return false
}

// isAvailableForWindow checks for at least one fully-available window
// spanning [now, deadline].
func isAvailableForWindow(member models.TeamMember, now, deadline time.Time) bool {
	for _, window := range member.Availability {
		if window.IsFullyAvailable && !window.StartDate.After(now) && !window.EndDate.Before(deadline) {
			return true
		}
	}
	return false
}
