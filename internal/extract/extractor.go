// Package extract turns free-text messages and inbound email into draft
// tasks. The pattern-based path here is fully deterministic; a language-model
// path that falls back to it lives in llm.go.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/josephgoksu/CrewWing/internal/analyze"
	"github.com/josephgoksu/CrewWing/models"
)

// Extractor is the deterministic first-pass segmenter. The zero value is not
// usable; construct with NewExtractor.
type Extractor struct {
	now func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides the time source, used by tests and by callers that
// need reproducible due dates.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor returns an Extractor backed by the wall clock unless
// overridden.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// titlePatterns is tried in order; the first capture wins.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)need to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)should (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)must (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)have to (.+?)(?:\.|$)`),
}

type tagRule struct {
	keywords []string
	tag      string
}

var tagRules = []tagRule{
	{[]string{"design", "mockup"}, "design"},
	{[]string{"development", "code"}, "development"},
	{[]string{"meeting", "call"}, "meeting"},
	{[]string{"client"}, "client"},
	{[]string{"review", "feedback"}, "review"},
	{[]string{"test", "qa"}, "testing"},
	{[]string{"content", "copy"}, "content"},
}

var (
	explicitHoursRE = regexp.MustCompile(`(?i)(\d+)\s*hour`)
	explicitDaysRE  = regexp.MustCompile(`(?i)(\d+)\s*day`)
)

// longMessageThreshold marks messages verbose enough to warrant a follow-up
// task beyond whatever triggers matched.
const longMessageThreshold = 100

// ExtractTasks segments a message into zero or more draft tasks. A message
// with no recognized trigger yields an empty task list with low confidence
// and a hint suggestion rather than an error.
func (e *Extractor) ExtractTasks(message string) models.ParseResult {
	lower := strings.ToLower(message)

	var tasks []models.ExtractedTask
	confidence := 0.8
	var suggestions []string

	if strings.Contains(lower, "need to") || strings.Contains(lower, "should") {
		tasks = append(tasks, models.ExtractedTask{
			Title:          extractTitle(message),
			Description:    fmt.Sprintf("Task extracted from: %q", truncate(message, 50)),
			Priority:       determinePriority(lower),
			Tags:           extractTags(lower),
			EstimatedHours: estimateHours(lower),
			Confidence:     0.85,
		})
	}

	if strings.Contains(lower, "deadline") || strings.Contains(lower, "due") {
		clue := analyze.DetectDeadline(message, e.now())
		if len(tasks) > 0 {
			tasks[0].DueDate = clue.ExtractedDate
		} else {
			tasks = append(tasks, models.ExtractedTask{
				Title:       "Deadline-based task",
				Description: "Task with identified deadline",
				Priority:    models.PriorityHigh,
				DueDate:     clue.ExtractedDate,
				Tags:        []string{"deadline"},
				Confidence:  0.75,
			})
		}
	}

	if len(lower) > longMessageThreshold {
		tasks = append(tasks, models.ExtractedTask{
			Title:          "Follow up on discussion",
			Description:    "Additional context from longer message",
			Priority:       models.PriorityMedium,
			Tags:           []string{"follow-up"},
			EstimatedHours: 1,
			Confidence:     0.65,
		})
	}

	if len(tasks) == 0 {
		suggestions = append(suggestions, "I didn't detect specific tasks. Try phrases like 'I need to...' or 'We should...'")
		confidence = 0.3
	} else {
		plural := ""
		if len(tasks) > 1 {
			plural = "s"
		}
		suggestions = append(suggestions, fmt.Sprintf("Found %d potential task%s", len(tasks), plural))
		if anyTask(tasks, func(t models.ExtractedTask) bool { return t.AssigneeID == "" }) {
			suggestions = append(suggestions, "Consider specifying who should handle these tasks")
		}
		if anyTask(tasks, func(t models.ExtractedTask) bool { return t.DueDate == nil }) {
			suggestions = append(suggestions, "Add deadlines for better priority management")
		}
	}

	return models.ParseResult{
		Tasks:       tasks,
		Confidence:  confidence,
		Suggestions: suggestions,
	}
}

func extractTitle(message string) string {
	for _, pattern := range titlePatterns {
		if m := pattern.FindStringSubmatch(message); m != nil {
			title := strings.TrimSpace(m[1])
			if title != "" {
				return strings.ToUpper(title[:1]) + title[1:]
			}
		}
	}

	words := strings.Fields(message)
	if len(words) > 6 {
		words = words[:6]
	}
	return strings.TrimRight(strings.Join(words, " "), ".,!?")
}

func determinePriority(lower string) models.TaskPriority {
	switch {
	case containsAny(lower, "urgent", "asap", "critical"):
		return models.PriorityUrgent
	case containsAny(lower, "important", "priority", "soon"):
		return models.PriorityHigh
	case containsAny(lower, "eventually", "when you can", "low priority"):
		return models.PriorityLow
	default:
		return models.PriorityMedium
	}
}

func extractTags(lower string) []string {
	var tags []string
	for _, rule := range tagRules {
		if containsAny(lower, rule.keywords...) {
			tags = append(tags, rule.tag)
		}
	}
	if len(tags) == 0 {
		return []string{"general"}
	}
	return tags
}

// estimateHours returns 0 when no estimate can be derived.
func estimateHours(lower string) float64 {
	if m := explicitHoursRE.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return models.ClampHours(float64(n))
	}
	if m := explicitDaysRE.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return models.ClampHours(float64(n) * 8)
	}

	switch {
	case containsAny(lower, "quick", "small"):
		return 1
	case containsAny(lower, "complex", "major"):
		return 8
	case containsAny(lower, "review", "check"):
		return 2
	}
	return 0
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func anyTask(tasks []models.ExtractedTask, pred func(models.ExtractedTask) bool) bool {
	for _, t := range tasks {
		if pred(t) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
