// Package assign recommends which team member should take a task. Candidates
// pass a hard eligibility filter, get scored on eight weighted factors, and
// the top three come back as auditable recommendations.
package assign

import (
	"errors"
	"sort"
	"time"

	"github.com/josephgoksu/CrewWing/models"
)

// ErrNoEligibleMembers is returned when the eligibility filter leaves nobody
// to score. It is fatal to the single request and never retried internally.
var ErrNoEligibleMembers = errors.New("no eligible team members found for this task")

// defaultDeadlineDays is assumed when a task carries no deadline.
const defaultDeadlineDays = 7

// maxRecommendations caps how many scored members become recommendations.
const maxRecommendations = 3

// Engine scores and ranks team members for task assignment. Construct with
// NewEngine.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine returns an Engine backed by the wall clock unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type scoredMember struct {
	member models.TeamMember
	scores factorScores
}

// GetAssignmentRecommendations ranks the roster for a task and returns up to
// three recommendations, best first. It fails with ErrNoEligibleMembers when
// the filter empties the roster; no partial work is performed in that case.
func (e *Engine) GetAssignmentRecommendations(task models.TaskRequirements, roster []models.TeamMember) ([]models.AssignmentRecommendation, error) {
	now := e.now()
	deadline := taskDeadline(task, now)

	eligible := filterEligibleMembers(task, roster, now, deadline)
	if len(eligible) == 0 {
		return nil, ErrNoEligibleMembers
	}

	scored := make([]scoredMember, 0, len(eligible))
	for _, member := range eligible {
		scored = append(scored, scoredMember{
			member: member,
			scores: calculateScores(task, member, now, deadline),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].scores.total > scored[j].scores.total
	})
	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}

	recommendations := make([]models.AssignmentRecommendation, 0, len(scored))
	for _, s := range scored {
		recommendations = append(recommendations, e.buildRecommendation(task, s, scored, now))
	}
	return recommendations, nil
}

// taskDeadline resolves the effective deadline for availability checks.
func taskDeadline(task models.TaskRequirements, now time.Time) time.Time {
	if task.Deadline != nil {
		return *task.Deadline
	}
	return now.AddDate(0, 0, defaultDeadlineDays)
}
