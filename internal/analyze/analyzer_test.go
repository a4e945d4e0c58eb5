package analyze

import (
	"strings"
	"testing"
	"time"

	"github.com/josephgoksu/CrewWing/models"
)

// fixedClock pins "now" to a Wednesday for deterministic deadline tests.
var wednesday = time.Date(2024, 1, 17, 10, 30, 0, 0, time.UTC)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(WithClock(func() time.Time { return wednesday }))
}

func TestAnalyzeUrgency_UrgentIndicators(t *testing.T) {
	a := newTestAnalyzer()
	clues := a.AnalyzeContext("This is urgent! Critical bug ASAP.", nil)

	if clues.Urgency.Level != models.PriorityUrgent {
		t.Errorf("level = %q, want urgent", clues.Urgency.Level)
	}
	if clues.Urgency.Confidence <= 0.8 {
		t.Errorf("confidence = %v, want > 0.8", clues.Urgency.Confidence)
	}
	if len(clues.Urgency.Indicators) != 3 {
		t.Fatalf("expected 3 indicators, got %v", clues.Urgency.Indicators)
	}
	for _, want := range []string{"urgent", "Critical", "ASAP"} {
		found := false
		for _, ind := range clues.Urgency.Indicators {
			if ind == want {
				found = true
			}
		}
		if !found {
			t.Errorf("indicators %v missing %q", clues.Urgency.Indicators, want)
		}
	}
}

func TestAnalyzeUrgency_LowPriority(t *testing.T) {
	a := newTestAnalyzer()
	clues := a.AnalyzeContext("Eventually we should update this when you can.", nil)

	if clues.Urgency.Level != models.PriorityLow {
		t.Errorf("level = %q, want low", clues.Urgency.Level)
	}
}

func TestAnalyzeUrgency_DefaultMedium(t *testing.T) {
	a := newTestAnalyzer()
	clues := a.AnalyzeContext("Hello there, just checking in.", nil)

	if clues.Urgency.Level != models.PriorityMedium {
		t.Errorf("level = %q, want medium", clues.Urgency.Level)
	}
	if clues.Urgency.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", clues.Urgency.Confidence)
	}
	if len(clues.Urgency.Indicators) != 0 {
		t.Errorf("expected no indicators, got %v", clues.Urgency.Indicators)
	}
}

func TestAnalyzeUrgency_ConfidenceClamped(t *testing.T) {
	a := newTestAnalyzer()
	msg := "urgent critical asap emergency immediately blocker crisis important soon quickly"
	clues := a.AnalyzeContext(msg, nil)

	if clues.Urgency.Confidence > 1 {
		t.Errorf("confidence %v exceeds 1.0", clues.Urgency.Confidence)
	}
}

func TestAnalyzeAssignees_RosterMatching(t *testing.T) {
	ref := &models.ReferenceData{
		TeamMembers: []models.MemberRef{
			{ID: "member-1", Name: "Sarah Chen", Role: "designer", Skills: []string{"figma", "branding"}},
			{ID: "member-2", Name: "Mike Jones", Role: "developer", Skills: []string{"react"}},
		},
	}
	a := newTestAnalyzer()

	tests := []struct {
		name           string
		message        string
		wantValue      string
		wantConfidence float64
	}{
		{"full name match", "Sarah Chen can take the logo work", "member-1", 0.95},
		{"role match", "hand this to the developer please", "member-2", 0.8},
		{"skill match", "we need the figma file updated", "member-1", 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clues := a.AnalyzeContext(tt.message, ref)
			if len(clues.Assignees.Suggestions) == 0 {
				t.Fatal("expected at least one suggestion")
			}
			found := false
			for _, s := range clues.Assignees.Suggestions {
				if s.Value == tt.wantValue && s.Confidence == tt.wantConfidence {
					found = true
				}
			}
			if !found {
				t.Errorf("no suggestion with value %q at confidence %v in %+v", tt.wantValue, tt.wantConfidence, clues.Assignees.Suggestions)
			}
		})
	}
}

func TestAnalyzeAssignees_MentionOutranksSkill(t *testing.T) {
	ref := &models.ReferenceData{
		TeamMembers: []models.MemberRef{
			{ID: "member-1", Name: "Sarah Chen", Role: "designer", Skills: []string{"figma"}},
		},
	}
	a := newTestAnalyzer()
	clues := a.AnalyzeContext("@sarah please review the figma mockups", ref)

	if clues.Assignees.Suggestions[0].Confidence != 1.0 {
		t.Errorf("top suggestion confidence = %v, want 1.0", clues.Assignees.Suggestions[0].Confidence)
	}
	if clues.Assignees.Confidence != 1.0 {
		t.Errorf("overall confidence = %v, want 1.0", clues.Assignees.Confidence)
	}
}

func TestAnalyzeAssignees_Default(t *testing.T) {
	a := newTestAnalyzer()
	clues := a.AnalyzeContext("nothing actionable in here", nil)

	if clues.Assignees.Confidence != 0.2 {
		t.Errorf("confidence = %v, want 0.2", clues.Assignees.Confidence)
	}
	if !strings.Contains(strings.ToLower(clues.Assignees.Reasoning), "no clear assignee") {
		t.Errorf("unexpected reasoning %q", clues.Assignees.Reasoning)
	}
}

func TestAnalyzeProjects_RosterMatching(t *testing.T) {
	ref := &models.ReferenceData{
		Projects: []models.ProjectRef{
			{ID: "proj-1", Name: "Acme Redesign", Client: "Acme Corp", Keywords: []string{"seo"}},
		},
	}
	a := newTestAnalyzer()

	clues := a.AnalyzeContext("The Acme Redesign needs a new hero section", ref)
	top := clues.Projects.Suggestions[0]
	if top.Value != "proj-1" || top.Confidence != 0.95 {
		t.Errorf("top suggestion = %+v, want proj-1 at 0.95", top)
	}

	clues = a.AnalyzeContext("quick seo pass on the landing page", ref)
	found := false
	for _, s := range clues.Projects.Suggestions {
		if s.Value == "proj-1" && s.Confidence == 0.7 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected keyword match for proj-1 in %+v", clues.Projects.Suggestions)
	}
}

func TestAnalyzeProjects_Default(t *testing.T) {
	a := newTestAnalyzer()
	clues := a.AnalyzeContext("nothing here", nil)
	if clues.Projects.Confidence != 0.3 {
		t.Errorf("confidence = %v, want 0.3", clues.Projects.Confidence)
	}
}

func TestAnalyzeDependencies(t *testing.T) {
	a := newTestAnalyzer()
	ref := &models.ReferenceData{
		ExistingTasks: []models.TaskRef{{ID: "t1", Title: "logo approval"}},
	}

	clues := a.AnalyzeContext("start this after the logo approval, then publish", ref)
	if clues.Dependencies.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8 (max contributor)", clues.Dependencies.Confidence)
	}

	foundTaskRef := false
	for _, s := range clues.Dependencies.Suggestions {
		if strings.Contains(s.Description, "logo approval") {
			foundTaskRef = true
			if s.Type != models.DependencyPrerequisite {
				t.Errorf("task reference type = %q, want prerequisite", s.Type)
			}
		}
	}
	if !foundTaskRef {
		t.Errorf("expected existing-task suggestion in %+v", clues.Dependencies.Suggestions)
	}
}

func TestAnalyzeDependencies_Default(t *testing.T) {
	a := newTestAnalyzer()
	clues := a.AnalyzeContext("hello", nil)
	if clues.Dependencies.Confidence != 0.2 {
		t.Errorf("confidence = %v, want 0.2", clues.Dependencies.Confidence)
	}
	if clues.Dependencies.Reasoning != "No clear dependency relationships detected" {
		t.Errorf("unexpected reasoning %q", clues.Dependencies.Reasoning)
	}
}

func TestAnalyzeContext_ConfidencesInRange(t *testing.T) {
	a := newTestAnalyzer()
	messages := []string{
		"",
		"urgent asap critical emergency immediately right now due today blocker crisis",
		"@sam and @alex and the design team and Mike Jones should handle the Acme website for BigCo Inc by friday after the review",
		"plain text with nothing in it",
	}
	for _, msg := range messages {
		clues := a.AnalyzeContext(msg, nil)
		for name, c := range map[string]float64{
			"urgency":    clues.Urgency.Confidence,
			"assignees":  clues.Assignees.Confidence,
			"deadlines":  clues.Deadlines.Confidence,
			"projects":   clues.Projects.Confidence,
			"dependency": clues.Dependencies.Confidence,
		} {
			if c < 0 || c > 1 {
				t.Errorf("message %q: %s confidence %v out of [0,1]", msg, name, c)
			}
		}
	}
}
