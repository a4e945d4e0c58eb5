package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskPriority represents the priority levels of a task. Urgency analysis
// produces the same closed set, so the two share one type.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// NormalizePriority coerces an arbitrary string to a known priority.
// Unrecognized values default to medium rather than failing.
func NormalizePriority(s string) TaskPriority {
	switch TaskPriority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow
	case PriorityMedium:
		return PriorityMedium
	case PriorityHigh:
		return PriorityHigh
	case PriorityUrgent:
		return PriorityUrgent
	default:
		return PriorityMedium
	}
}

// ClampConfidence bounds a confidence value to [0, 1].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// ClampHours bounds an hour estimate to [0.5, 100] and rounds it to the
// nearest half hour. Zero means "no estimate" and passes through untouched.
func ClampHours(h float64) float64 {
	if h == 0 {
		return 0
	}
	if h < 0.5 {
		h = 0.5
	}
	if h > 100 {
		h = 100
	}
	return math.Round(h*2) / 2
}

// ExtractedTask is a candidate unit of work pulled out of a message or email.
// It is created by the extractor, optionally enriched once by the context
// enhancer, and never mutated afterwards.
type ExtractedTask struct {
	Title          string       `json:"title" validate:"required"`
	Description    string       `json:"description,omitempty"`
	Priority       TaskPriority `json:"priority" validate:"required,oneof=low medium high urgent"`
	AssigneeID     string       `json:"assigneeId,omitempty"`
	ProjectID      string       `json:"projectId,omitempty"`
	DueDate        *time.Time   `json:"dueDate,omitempty"`
	Tags           []string     `json:"tags"`
	EstimatedHours float64      `json:"estimatedHours,omitempty" validate:"omitempty,gte=0.5,lte=100"`
	Dependencies   []string     `json:"dependencies,omitempty"`
	Confidence     float64      `json:"confidence" validate:"gte=0,lte=1"`
}

// ParseResult is the outcome of extracting tasks from a single message.
type ParseResult struct {
	Tasks       []ExtractedTask `json:"tasks"`
	Confidence  float64         `json:"confidence" validate:"gte=0,lte=1"`
	Suggestions []string        `json:"suggestions"`
}

// DedupeTags removes duplicate tags while preserving first-seen order.
func DedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
