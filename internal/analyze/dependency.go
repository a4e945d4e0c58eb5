package analyze

import (
	"fmt"
	"regexp"

	"github.com/josephgoksu/CrewWing/models"
)

type dependencyRule struct {
	pattern    *regexp.Regexp
	kind       models.DependencyType
	confidence float64
}

// dependencyRules has no aggregation: every matching rule contributes an
// independent suggestion and the overall confidence is the max contributor.
var dependencyRules = []dependencyRule{
	{regexp.MustCompile(`(?i)\b(after|once|when|following|depends on|requires|needs)\b`), models.DependencyPrerequisite, 0.8},
	{regexp.MustCompile(`(?i)\b(before|prior to|ahead of|in advance of)\b`), models.DependencyBlocking, 0.8},
	{regexp.MustCompile(`(?i)\b(then|next|subsequently|followed by)\b`), models.DependencySequence, 0.7},
	{regexp.MustCompile(`(?i)\b(blocks|blocking|prevents|stops)\b`), models.DependencyBlocking, 0.9},
	{regexp.MustCompile(`(?i)\b(waiting for|pending|on hold until)\b`), models.DependencyPrerequisite, 0.8},
}

func analyzeDependencies(message string, existingTasks []models.TaskRef) models.DependencyAnalysis {
	var suggestions []models.DependencySuggestion

	for _, rule := range dependencyRules {
		if rule.pattern.MatchString(message) {
			suggestions = append(suggestions, models.DependencySuggestion{
				Type:        rule.kind,
				Description: fmt.Sprintf("Detected %s dependency indicator in message", rule.kind),
				Confidence:  rule.confidence,
			})
		}
	}

	for _, task := range existingTasks {
		if re := wordPattern(task.Title); re != nil && re.MatchString(message) {
			suggestions = append(suggestions, models.DependencySuggestion{
				Type:        models.DependencyPrerequisite,
				Description: fmt.Sprintf("References existing task: %s", task.Title),
				Confidence:  0.8,
			})
		}
	}

	if len(suggestions) == 0 {
		return models.DependencyAnalysis{
			Suggestions: []models.DependencySuggestion{},
			Confidence:  0.2,
			Reasoning:   "No clear dependency relationships detected",
		}
	}

	maxConfidence := 0.0
	for _, s := range suggestions {
		if s.Confidence > maxConfidence {
			maxConfidence = s.Confidence
		}
	}

	return models.DependencyAnalysis{
		Suggestions: suggestions,
		Confidence:  models.ClampConfidence(maxConfidence),
		Reasoning:   fmt.Sprintf("Found %d potential dependency indicator(s)", len(suggestions)),
	}
}
