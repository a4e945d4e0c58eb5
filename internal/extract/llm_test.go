package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/josephgoksu/CrewWing/models"
)

// stubChatModel returns a fixed response or error.
type stubChatModel struct {
	content string
	err     error
}

func (s *stubChatModel) Generate(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return schema.AssistantMessage(s.content, nil), nil
}

func (s *stubChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func newLLMExtractorWithStub(t *testing.T, stub *stubChatModel) *LLMExtractor {
	t.Helper()
	x, err := NewLLMExtractor(stub, newTestExtractor(), "")
	if err != nil {
		t.Fatalf("NewLLMExtractor: %v", err)
	}
	return x
}

func TestLLMExtractor_ParsesModelResponse(t *testing.T) {
	stub := &stubChatModel{content: `{
		"tasks": [{
			"title": "  Review homepage mockups  ",
			"description": "Look at the new mockups",
			"priority": "HIGH",
			"assigneeId": "member-1",
			"projectId": "proj-1",
			"estimatedHours": 250,
			"dueDate": "2024-01-19T17:00:00Z",
			"tags": ["design", "review", "design"],
			"dependencies": [],
			"confidence": 1.4
		}],
		"confidence": 0.9,
		"suggestions": ["Assign the copy task"]
	}`}

	result := newLLMExtractorWithStub(t, stub).ExtractTasks(context.Background(), "please review the mockups", nil)

	if len(result.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(result.Tasks))
	}
	task := result.Tasks[0]
	if task.Title != "Review homepage mockups" {
		t.Errorf("title = %q, want trimmed", task.Title)
	}
	if task.Priority != models.PriorityHigh {
		t.Errorf("priority = %q, want high (case-normalized)", task.Priority)
	}
	if task.EstimatedHours != 100 {
		t.Errorf("estimatedHours = %v, want clamped to 100", task.EstimatedHours)
	}
	if task.Confidence != 1 {
		t.Errorf("confidence = %v, want clamped to 1", task.Confidence)
	}
	if len(task.Tags) != 2 {
		t.Errorf("tags = %v, want deduped", task.Tags)
	}
	want := time.Date(2024, 1, 19, 17, 0, 0, 0, time.UTC)
	if task.DueDate == nil || !task.DueDate.Equal(want) {
		t.Errorf("dueDate = %v, want %v", task.DueDate, want)
	}
	if result.Confidence != 0.9 {
		t.Errorf("overall confidence = %v, want 0.9", result.Confidence)
	}
}

func TestLLMExtractor_StripsMarkdownFences(t *testing.T) {
	stub := &stubChatModel{content: "```json\n{\"tasks\":[{\"title\":\"Ship it\",\"priority\":\"medium\",\"confidence\":0.8}],\"confidence\":0.8,\"suggestions\":[]}\n```"}

	result := newLLMExtractorWithStub(t, stub).ExtractTasks(context.Background(), "ship it", nil)

	if len(result.Tasks) != 1 || result.Tasks[0].Title != "Ship it" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestLLMExtractor_SkipsUntitledTasks(t *testing.T) {
	stub := &stubChatModel{content: `{"tasks":[{"title":"  "},{"title":"Real task","priority":"low"}],"confidence":0.7,"suggestions":[]}`}

	result := newLLMExtractorWithStub(t, stub).ExtractTasks(context.Background(), "whatever", nil)

	if len(result.Tasks) != 1 || result.Tasks[0].Title != "Real task" {
		t.Fatalf("unexpected tasks %+v", result.Tasks)
	}
}

func TestLLMExtractor_FallbackOnTransportError(t *testing.T) {
	stub := &stubChatModel{err: errors.New("connection refused")}

	result := newLLMExtractorWithStub(t, stub).ExtractTasks(context.Background(), "We need to fix the login page", nil)

	// Deterministic path output, not an error.
	if len(result.Tasks) != 1 {
		t.Fatalf("expected fallback task, got %+v", result)
	}
	if result.Tasks[0].Title != "Fix the login page" {
		t.Errorf("title = %q, want pattern-extracted title", result.Tasks[0].Title)
	}
}

func TestLLMExtractor_FallbackOnMalformedJSON(t *testing.T) {
	stub := &stubChatModel{content: "Sure! Here are the tasks you asked for:"}

	result := newLLMExtractorWithStub(t, stub).ExtractTasks(context.Background(), "We need to fix the login page", nil)

	if len(result.Tasks) != 1 || result.Tasks[0].Title != "Fix the login page" {
		t.Fatalf("expected fallback extraction, got %+v", result)
	}
}

func TestLLMExtractor_FallbackOnEmptyResponse(t *testing.T) {
	stub := &stubChatModel{content: ""}

	result := newLLMExtractorWithStub(t, stub).ExtractTasks(context.Background(), "nothing actionable", nil)

	if len(result.Tasks) != 0 {
		t.Fatalf("expected empty fallback result, got %+v", result.Tasks)
	}
	if result.Confidence != 0.3 {
		t.Errorf("confidence = %v, want 0.3 from fallback", result.Confidence)
	}
}

func TestBuildUserPrompt_IncludesReferenceData(t *testing.T) {
	ref := &models.ReferenceData{
		TeamMembers:   []models.MemberRef{{ID: "m1", Name: "Sarah Chen", Role: "designer", Skills: []string{"figma"}}},
		Projects:      []models.ProjectRef{{ID: "p1", Name: "Acme Redesign", Client: "Acme Corp"}},
		ExistingTasks: []models.TaskRef{{ID: "t1", Title: "Logo approval"}},
	}

	prompt := buildUserPrompt("do the thing", ref)

	for _, want := range []string{"do the thing", "m1", "Sarah Chen", "p1", "Acme Corp", "Logo approval"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
