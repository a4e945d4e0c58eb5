// Package analyze scores free-text messages along five independent axes
// (urgency, assignee, deadline, project, dependency) using declarative,
// read-only rule tables. Every call is a pure function of its inputs; the
// analyzer holds no mutable state beyond an injectable clock.
package analyze

import (
	"regexp"
	"strings"
	"time"

	"github.com/josephgoksu/CrewWing/models"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Analyzer derives context clues from natural-language messages.
type Analyzer struct {
	now func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock overrides the time source used for deadline resolution.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// NewAnalyzer returns an Analyzer with the default clock.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeContext runs all five sub-analyzers against the message. Reference
// data is optional; when present it sharpens assignee, project and
// dependency matching.
func (a *Analyzer) AnalyzeContext(message string, ref *models.ReferenceData) models.ContextAnalysis {
	normalized := normalizeMessage(message)

	var members []models.MemberRef
	var projects []models.ProjectRef
	var tasks []models.TaskRef
	if ref != nil {
		members = ref.TeamMembers
		projects = ref.Projects
		tasks = ref.ExistingTasks
	}

	return models.ContextAnalysis{
		Urgency:      analyzeUrgency(normalized),
		Assignees:    analyzeAssignees(normalized, members),
		Deadlines:    a.analyzeDeadlines(normalized),
		Projects:     analyzeProjects(normalized, projects),
		Dependencies: analyzeDependencies(normalized, tasks),
	}
}

func normalizeMessage(message string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(message), " ")
}

// wordPattern compiles a case-insensitive whole-phrase pattern for a literal
// value, tolerating flexible whitespace between words. Used for roster-aware
// matching where names, roles and keywords come from caller data.
func wordPattern(value string) *regexp.Regexp {
	words := strings.Fields(value)
	if len(words) == 0 {
		return nil
	}
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(escaped, `\s+`) + `\b`)
}
