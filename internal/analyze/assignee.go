package analyze

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/josephgoksu/CrewWing/models"
)

type assigneeRule struct {
	pattern *regexp.Regexp
	kind    models.AssigneeSuggestionType
	weight  float64
}

// assigneeRules covers generic lexical evidence: @handles, capitalized
// names, role nouns, and team-wide words. Roster-aware matching happens
// separately against the supplied team members.
var assigneeRules = []assigneeRule{
	// Direct mentions
	{regexp.MustCompile(`@(\w+)`), models.SuggestionMention, 1.0},
	{regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+)\b`), models.SuggestionName, 0.8},

	// Role-based assignments
	{regexp.MustCompile(`(?i)\b(designer|design team|creative team)\b`), models.SuggestionRole, 0.9},
	{regexp.MustCompile(`(?i)\b(developer|dev team|engineering|tech team)\b`), models.SuggestionRole, 0.9},
	{regexp.MustCompile(`(?i)\b(project manager|pm|account manager|am)\b`), models.SuggestionRole, 0.9},
	{regexp.MustCompile(`(?i)\b(copywriter|content team|writer)\b`), models.SuggestionRole, 0.9},
	{regexp.MustCompile(`(?i)\b(qa|quality assurance|tester|testing team)\b`), models.SuggestionRole, 0.9},
	{regexp.MustCompile(`(?i)\b(marketing team|social media team|seo team)\b`), models.SuggestionRole, 0.8},

	// Team assignments
	{regexp.MustCompile(`(?i)\b(team|everyone|all hands|group)\b`), models.SuggestionTeam, 0.6},
	{regexp.MustCompile(`(?i)\b(assign to|give to|have (\w+) do|(\w+) should handle)\b`), models.SuggestionName, 0.7},
}

func analyzeAssignees(message string, members []models.MemberRef) models.AssigneeAnalysis {
	var suggestions []models.AssigneeSuggestion

	for _, rule := range assigneeRules {
		for _, m := range rule.pattern.FindAllStringSubmatch(message, -1) {
			value := m[0]
			if len(m) > 1 && m[1] != "" {
				value = m[1]
			}
			suggestions = append(suggestions, models.AssigneeSuggestion{
				Type:       rule.kind,
				Value:      strings.ToLower(value),
				Confidence: rule.weight,
				Context:    m[0],
			})
		}
	}

	// Roster-aware matching: known members beat lexical guesses.
	for _, member := range members {
		firstName := strings.ToLower(strings.Fields(member.Name)[0])
		mentionRE := regexp.MustCompile(`(?i)@` + regexp.QuoteMeta(firstName) + `\b`)
		if mentionRE.MatchString(message) {
			suggestions = append(suggestions, models.AssigneeSuggestion{
				Type:       models.SuggestionMention,
				Value:      member.ID,
				Confidence: 1.0,
				Context:    fmt.Sprintf("@mention match: %s", member.Name),
			})
		}

		if re := wordPattern(member.Name); re != nil && re.MatchString(message) {
			suggestions = append(suggestions, models.AssigneeSuggestion{
				Type:       models.SuggestionName,
				Value:      member.ID,
				Confidence: 0.95,
				Context:    fmt.Sprintf("Named assignment: %s", member.Name),
			})
		}

		if re := wordPattern(member.Role); re != nil && re.MatchString(message) {
			suggestions = append(suggestions, models.AssigneeSuggestion{
				Type:       models.SuggestionRole,
				Value:      member.ID,
				Confidence: 0.8,
				Context:    fmt.Sprintf("Role-based assignment: %s", member.Role),
			})
		}

		for _, skill := range member.Skills {
			if re := wordPattern(skill); re != nil && re.MatchString(message) {
				suggestions = append(suggestions, models.AssigneeSuggestion{
					Type:       models.SuggestionRole,
					Value:      member.ID,
					Confidence: 0.7,
					Context:    fmt.Sprintf("Skill-based assignment: %s", skill),
				})
			}
		}
	}

	if len(suggestions) == 0 {
		return models.AssigneeAnalysis{
			Suggestions: []models.AssigneeSuggestion{},
			Confidence:  0.2,
			Reasoning:   "No clear assignee indicators found",
		}
	}

	maxConfidence := 0.0
	for _, s := range suggestions {
		if s.Confidence > maxConfidence {
			maxConfidence = s.Confidence
		}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	return models.AssigneeAnalysis{
		Suggestions: suggestions,
		Confidence:  models.ClampConfidence(maxConfidence + float64(len(suggestions))*0.05),
		Reasoning:   fmt.Sprintf("Found %d potential assignee reference(s)", len(suggestions)),
	}
}
