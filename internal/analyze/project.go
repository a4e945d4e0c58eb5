package analyze

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/josephgoksu/CrewWing/models"
)

type projectRule struct {
	pattern *regexp.Regexp
	kind    models.ProjectSuggestionType
	weight  float64
}

// projectRules covers generic lexical evidence for project references;
// roster-aware matching against known projects happens separately.
var projectRules = []projectRule{
	// Direct project names (commonly capitalized)
	{regexp.MustCompile(`\b([A-Z][A-Za-z]*\s+(?:project|campaign|website|app|brand|identity))\b`), models.ProjectByName, 0.9},
	{regexp.MustCompile(`(?i)\b(project\s+[A-Z][A-Za-z]*)\b`), models.ProjectByName, 0.9},

	// Client names
	{regexp.MustCompile(`(?i)\b([A-Z][A-Za-z]*\s+(?:inc|llc|corp|ltd|company|co)\b)`), models.ProjectByClient, 0.8},
	{regexp.MustCompile(`(?i)\b(client\s+[A-Z][A-Za-z]*)\b`), models.ProjectByClient, 0.8},
	{regexp.MustCompile(`\bfor\s+([A-Z][A-Za-z]+)\b`), models.ProjectByClient, 0.6},

	// Project type keywords
	{regexp.MustCompile(`(?i)\b(website|web development|web design|mobile app|brand identity|logo design|marketing campaign|social media|seo|content strategy)\b`), models.ProjectByKeyword, 0.7},
}

func analyzeProjects(message string, projects []models.ProjectRef) models.ProjectAnalysis {
	var suggestions []models.ProjectSuggestion

	for _, rule := range projectRules {
		for _, m := range rule.pattern.FindAllStringSubmatch(message, -1) {
			value := m[0]
			if len(m) > 1 && m[1] != "" {
				value = m[1]
			}
			suggestions = append(suggestions, models.ProjectSuggestion{
				Type:       rule.kind,
				Value:      strings.TrimSpace(value),
				Confidence: rule.weight,
				Context:    m[0],
			})
		}
	}

	for _, project := range projects {
		if re := wordPattern(project.Name); re != nil && re.MatchString(message) {
			suggestions = append(suggestions, models.ProjectSuggestion{
				Type:       models.ProjectByName,
				Value:      project.ID,
				Confidence: 0.95,
				Context:    fmt.Sprintf("Project name match: %s", project.Name),
			})
		}

		if re := wordPattern(project.Client); re != nil && re.MatchString(message) {
			suggestions = append(suggestions, models.ProjectSuggestion{
				Type:       models.ProjectByClient,
				Value:      project.ID,
				Confidence: 0.9,
				Context:    fmt.Sprintf("Client name match: %s", project.Client),
			})
		}

		for _, keyword := range project.Keywords {
			if re := wordPattern(keyword); re != nil && re.MatchString(message) {
				suggestions = append(suggestions, models.ProjectSuggestion{
					Type:       models.ProjectByKeyword,
					Value:      project.ID,
					Confidence: 0.7,
					Context:    fmt.Sprintf("Keyword match: %s", keyword),
				})
			}
		}
	}

	if len(suggestions) == 0 {
		return models.ProjectAnalysis{
			Suggestions: []models.ProjectSuggestion{},
			Confidence:  0.3,
			Reasoning:   "No clear project indicators found",
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

	return models.ProjectAnalysis{
		Suggestions: suggestions,
		Confidence:  models.ClampConfidence(maxConfidence + float64(len(suggestions))*0.05),
		Reasoning:   fmt.Sprintf("Found %d potential project reference(s)", len(suggestions)),
	}
}
