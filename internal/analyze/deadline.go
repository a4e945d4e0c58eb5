package analyze

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/josephgoksu/CrewWing/models"
)

type deadlineRule struct {
	pattern *regexp.Regexp
	kind    models.DeadlineType
	weight  float64
}

// deadlineRules is evaluated in order; the first rule that both matches and
// resolves to a concrete date wins. Rules that match but cannot be resolved
// (e.g. "in 3 months") fall through to later rules.
var deadlineRules = []deadlineRule{
	// Explicit dates
	{regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`), models.DeadlineExplicit, 1.0},
	{regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\b`), models.DeadlineExplicit, 1.0},
	{regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}`), models.DeadlineExplicit, 0.9},
	{regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+\d{1,2}`), models.DeadlineExplicit, 0.9},

	// Relative dates
	{regexp.MustCompile(`(?i)\b(today|tonight|end of day|eod)\b`), models.DeadlineRelative, 1.0},
	{regexp.MustCompile(`(?i)\b(tomorrow|next day)\b`), models.DeadlineRelative, 1.0},
	{regexp.MustCompile(`(?i)\b(this week|end of week|eow|by friday)\b`), models.DeadlineRelative, 0.9},
	{regexp.MustCompile(`(?i)\b(next week|following week)\b`), models.DeadlineRelative, 0.9},
	{regexp.MustCompile(`(?i)\b(this month|end of month|eom)\b`), models.DeadlineRelative, 0.8},
	{regexp.MustCompile(`(?i)\b(in (\d+) (days?|weeks?|months?))\b`), models.DeadlineRelative, 0.8},
	{regexp.MustCompile(`(?i)\b(\d+) (days?|weeks?|months?) from now\b`), models.DeadlineRelative, 0.8},

	// Day references
	{regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`), models.DeadlineRelative, 0.7},
	{regexp.MustCompile(`(?i)\b(mon|tue|wed|thu|fri|sat|sun)\b`), models.DeadlineRelative, 0.7},

	// Implied deadlines
	{regexp.MustCompile(`(?i)\b(before (the )?(meeting|call|presentation|launch|deadline))\b`), models.DeadlineImplied, 0.6},
	{regexp.MustCompile(`(?i)\b(after (the )?(review|approval|feedback))\b`), models.DeadlineImplied, 0.5},
}

var (
	inDaysRE       = regexp.MustCompile(`in (\d+) days?`)
	inWeeksRE      = regexp.MustCompile(`in (\d+) weeks?`)
	explicitDateRE = regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)
)

// dayNames is indexed by time.Weekday (Sunday = 0).
var dayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func (a *Analyzer) analyzeDeadlines(message string) models.DeadlineAnalysis {
	return DetectDeadline(message, a.now())
}

// DetectDeadline scans a message against the deadline rule table and resolves
// the first match. It is shared with the pattern extractor so both paths
// agree on what counts as a deadline.
func DetectDeadline(message string, now time.Time) models.DeadlineAnalysis {
	for _, rule := range deadlineRules {
		match := rule.pattern.FindString(message)
		if match == "" {
			continue
		}
		if resolved, ok := ResolveDeadlineText(match, now); ok {
			return models.DeadlineAnalysis{
				ExtractedDate: &resolved,
				Confidence:    rule.weight,
				Type:          rule.kind,
				OriginalText:  match,
				Reasoning:     fmt.Sprintf("Extracted %s deadline from: %q", rule.kind, match),
			}
		}
	}

	return models.DeadlineAnalysis{
		Confidence:   0.1,
		Type:         models.DeadlineImplied,
		OriginalText: "",
		Reasoning:    "No clear deadline indicators found",
	}
}

// ResolveDeadlineText converts a matched date phrase into a concrete point
// in time relative to base. End-of-business is fixed at 17:00 local time.
// The second return value is false when the phrase cannot be resolved.
func ResolveDeadlineText(text string, base time.Time) (time.Time, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if strings.Contains(normalized, "today") || strings.Contains(normalized, "eod") {
		return atFivePM(base), true
	}

	if strings.Contains(normalized, "tomorrow") {
		return atFivePM(base.AddDate(0, 0, 1)), true
	}

	if strings.Contains(normalized, "this week") || strings.Contains(normalized, "end of week") ||
		strings.Contains(normalized, "eow") || strings.Contains(normalized, "friday") {
		// Upcoming Friday; if today is Friday, still today.
		daysUntilFriday := (int(time.Friday) - int(base.Weekday()) + 7) % 7
		return atFivePM(base.AddDate(0, 0, daysUntilFriday)), true
	}

	if strings.Contains(normalized, "next week") {
		return atFivePM(base.AddDate(0, 0, 7)), true
	}

	if m := inDaysRE.FindStringSubmatch(normalized); m != nil {
		days, _ := strconv.Atoi(m[1])
		return base.AddDate(0, 0, days), true
	}

	if m := inWeeksRE.FindStringSubmatch(normalized); m != nil {
		weeks, _ := strconv.Atoi(m[1])
		return base.AddDate(0, 0, weeks*7), true
	}

	if m := explicitDateRE.FindStringSubmatch(normalized); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := base.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			// Two-digit years pivot at 50: 00-49 => 2000s, 50-99 => 1900s.
			if year < 100 {
				if year < 50 {
					year += 2000
				} else {
					year += 1900
				}
			}
		}
		return time.Date(year, time.Month(month), day, 17, 0, 0, 0, base.Location()), true
	}

	for idx, day := range dayNames {
		if !strings.Contains(normalized, day) {
			continue
		}
		daysUntil := (idx - int(base.Weekday()) + 7) % 7
		if daysUntil == 0 {
			// Same weekday means next week, not today.
			daysUntil = 7
		}
		return atFivePM(base.AddDate(0, 0, daysUntil)), true
	}

	return time.Time{}, false
}

func atFivePM(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 17, 0, 0, 0, t.Location())
}
