package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/josephgoksu/CrewWing/models"
)

type urgencyRule struct {
	pattern *regexp.Regexp
	level   models.TaskPriority
	weight  float64
}

// urgencyRules is evaluated in full against every message; all matches
// contribute their weight to the per-level totals. The table is read-only.
var urgencyRules = []urgencyRule{
	// Urgent level
	{regexp.MustCompile(`(?i)\b(urgent|emergency|critical|asap|immediately|right now|drop everything)\b`), models.PriorityUrgent, 1.0},
	{regexp.MustCompile(`(?i)\b(due today|needed today|must be done today|end of day)\b`), models.PriorityUrgent, 0.9},
	{regexp.MustCompile(`(?i)\b(crisis|blocker|blocking|show stopper)\b`), models.PriorityUrgent, 0.8},

	// High priority
	{regexp.MustCompile(`(?i)\b(high priority|important|priority|soon|quickly|fast track)\b`), models.PriorityHigh, 0.8},
	{regexp.MustCompile(`(?i)\b(due (tomorrow|this week)|needed (tomorrow|this week)|by (tomorrow|this week))\b`), models.PriorityHigh, 0.7},
	{regexp.MustCompile(`(?i)\b(client (wants|needs|requesting)|for the client|deadline approaching)\b`), models.PriorityHigh, 0.7},
	{regexp.MustCompile(`(?i)\b(time sensitive|time critical|rush job)\b`), models.PriorityHigh, 0.6},

	// Medium priority
	{regexp.MustCompile(`(?i)\b(should|ought to|need to|when possible|next week)\b`), models.PriorityMedium, 0.5},
	{regexp.MustCompile(`(?i)\b(scheduled|planned|routine|regular)\b`), models.PriorityMedium, 0.4},

	// Low priority
	{regexp.MustCompile(`(?i)\b(eventually|someday|when you can|low priority|nice to have)\b`), models.PriorityLow, 0.3},
	{regexp.MustCompile(`(?i)\b(backlog|future|later|down the road)\b`), models.PriorityLow, 0.2},
}

// urgencyLevels orders tie-breaking: the most urgent level wins a tie.
var urgencyLevels = []models.TaskPriority{
	models.PriorityUrgent,
	models.PriorityHigh,
	models.PriorityMedium,
	models.PriorityLow,
}

func analyzeUrgency(message string) models.UrgencyAnalysis {
	type urgencyMatch struct {
		level     models.TaskPriority
		weight    float64
		indicator string
	}

	var matches []urgencyMatch
	for _, rule := range urgencyRules {
		for _, m := range rule.pattern.FindAllString(message, -1) {
			matches = append(matches, urgencyMatch{level: rule.level, weight: rule.weight, indicator: m})
		}
	}

	if len(matches) == 0 {
		return models.UrgencyAnalysis{
			Level:      models.PriorityMedium,
			Confidence: 0.5,
			Indicators: []string{},
			Reasoning:  "No explicit urgency indicators found, defaulting to medium priority",
		}
	}

	scores := map[models.TaskPriority]float64{}
	totalWeight := 0.0
	indicators := make([]string, 0, len(matches))
	for _, m := range matches {
		scores[m.level] += m.weight
		totalWeight += m.weight
		indicators = append(indicators, m.indicator)
	}
	for level := range scores {
		scores[level] /= totalWeight
	}

	best := urgencyLevels[0]
	for _, level := range urgencyLevels[1:] {
		if scores[level] > scores[best] {
			best = level
		}
	}

	// The sum can exceed 1.0 when many low-weight rules fire; clamp here
	// rather than relying on the formula to self-limit.
	confidence := models.ClampConfidence(scores[best] + float64(len(matches))*0.1)

	return models.UrgencyAnalysis{
		Level:      best,
		Confidence: confidence,
		Indicators: indicators,
		Reasoning:  fmt.Sprintf("Detected %d urgency indicator(s): %s", len(matches), strings.Join(indicators, ", ")),
	}
}
