package models

import "time"

// ContextAnalysis bundles the five independent context clues derived from a
// single message. It is created fresh per analysis call and never persisted.
type ContextAnalysis struct {
	Urgency      UrgencyAnalysis    `json:"urgency"`
	Assignees    AssigneeAnalysis   `json:"assignees"`
	Deadlines    DeadlineAnalysis   `json:"deadlines"`
	Projects     ProjectAnalysis    `json:"projects"`
	Dependencies DependencyAnalysis `json:"dependencies"`
}

// UrgencyAnalysis reports the weighted urgency level detected in a message.
type UrgencyAnalysis struct {
	Level      TaskPriority `json:"level"`
	Confidence float64      `json:"confidence"`
	Indicators []string     `json:"indicators"`
	Reasoning  string       `json:"reasoning"`
}

// AssigneeSuggestionType classifies how an assignee candidate was detected.
type AssigneeSuggestionType string

const (
	SuggestionMention AssigneeSuggestionType = "mention"
	SuggestionName    AssigneeSuggestionType = "name"
	SuggestionRole    AssigneeSuggestionType = "role"
	SuggestionTeam    AssigneeSuggestionType = "team"
)

// AssigneeSuggestion is a single assignee candidate with its evidence.
type AssigneeSuggestion struct {
	Type       AssigneeSuggestionType `json:"type"`
	Value      string                 `json:"value"`
	Confidence float64                `json:"confidence"`
	Context    string                 `json:"context"`
}

// AssigneeAnalysis collects assignee candidates sorted by confidence.
type AssigneeAnalysis struct {
	Suggestions []AssigneeSuggestion `json:"suggestions"`
	Confidence  float64              `json:"confidence"`
	Reasoning   string               `json:"reasoning"`
}

// DeadlineType classifies how a deadline was expressed.
type DeadlineType string

const (
	DeadlineExplicit     DeadlineType = "explicit"
	DeadlineRelative     DeadlineType = "relative"
	DeadlineImplied      DeadlineType = "implied"
	DeadlineBusinessRule DeadlineType = "business_rule"
)

// DeadlineAnalysis reports a resolved deadline, if any.
type DeadlineAnalysis struct {
	ExtractedDate *time.Time   `json:"extractedDate,omitempty"`
	Confidence    float64      `json:"confidence"`
	Type          DeadlineType `json:"type"`
	OriginalText  string       `json:"originalText"`
	Reasoning     string       `json:"reasoning"`
}

// ProjectSuggestionType classifies how a project candidate was detected.
type ProjectSuggestionType string

const (
	ProjectByName    ProjectSuggestionType = "name"
	ProjectByClient  ProjectSuggestionType = "client"
	ProjectByKeyword ProjectSuggestionType = "keyword"
	ProjectByContext ProjectSuggestionType = "context"
)

// ProjectSuggestion is a single project candidate with its evidence.
type ProjectSuggestion struct {
	Type       ProjectSuggestionType `json:"type"`
	Value      string                `json:"value"`
	Confidence float64               `json:"confidence"`
	Context    string                `json:"context"`
}

// ProjectAnalysis collects project candidates sorted by confidence.
type ProjectAnalysis struct {
	Suggestions []ProjectSuggestion `json:"suggestions"`
	Confidence  float64             `json:"confidence"`
	Reasoning   string              `json:"reasoning"`
}

// DependencyType classifies the relationship a dependency clue implies.
type DependencyType string

const (
	DependencyBlocking     DependencyType = "blocking"
	DependencyPrerequisite DependencyType = "prerequisite"
	DependencySequence     DependencyType = "sequence"
)

// DependencySuggestion is a single dependency clue.
type DependencySuggestion struct {
	Type        DependencyType `json:"type"`
	Description string         `json:"description"`
	Confidence  float64        `json:"confidence"`
}

// DependencyAnalysis collects dependency clues from a message.
type DependencyAnalysis struct {
	Suggestions []DependencySuggestion `json:"suggestions"`
	Confidence  float64                `json:"confidence"`
	Reasoning   string                 `json:"reasoning"`
}

// MemberRef is the lightweight roster view the analyzers match against.
type MemberRef struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Role   string   `json:"role"`
	Skills []string `json:"skills"`
}

// ProjectRef is the lightweight project view the analyzers match against.
type ProjectRef struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Client   string   `json:"client"`
	Keywords []string `json:"keywords"`
}

// TaskRef identifies an existing task for dependency matching.
type TaskRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ReferenceData carries optional caller-supplied rosters that sharpen the
// analyzers. All fields may be empty; analysis degrades gracefully.
type ReferenceData struct {
	TeamMembers   []MemberRef  `json:"teamMembers,omitempty"`
	Projects      []ProjectRef `json:"projects,omitempty"`
	ExistingTasks []TaskRef    `json:"existingTasks,omitempty"`
}
