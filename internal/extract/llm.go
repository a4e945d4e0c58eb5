package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/josephgoksu/CrewWing/models"
	"github.com/josephgoksu/CrewWing/prompts"
)

// LLMExtractor delegates extraction to a chat model and falls back to the
// deterministic pattern path when the model misbehaves in any way: transport
// error, malformed JSON, or an empty response. Callers always get a
// well-formed result.
type LLMExtractor struct {
	chatModel model.BaseChatModel
	fallback  *Extractor
	prompt    string
}

// NewLLMExtractor wires a chat model in front of the given deterministic
// extractor. templatesDir may be empty; it allows prompt overrides from disk.
func NewLLMExtractor(chatModel model.BaseChatModel, fallback *Extractor, templatesDir string) (*LLMExtractor, error) {
	prompt, err := prompts.GetPrompt(prompts.KeyExtractTasks, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load extraction prompt: %w", err)
	}
	return &LLMExtractor{
		chatModel: chatModel,
		fallback:  fallback,
		prompt:    prompt,
	}, nil
}

// wireTask is the JSON shape the model is instructed to return. Field types
// are loose on purpose; normalization happens after decode.
type wireTask struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	AssigneeID     string   `json:"assigneeId"`
	ProjectID      string   `json:"projectId"`
	EstimatedHours float64  `json:"estimatedHours"`
	DueDate        string   `json:"dueDate"`
	Tags           []string `json:"tags"`
	Dependencies   []string `json:"dependencies"`
	Confidence     float64  `json:"confidence"`
}

type wireResult struct {
	Tasks       []wireTask `json:"tasks"`
	Confidence  float64    `json:"confidence"`
	Suggestions []string   `json:"suggestions"`
}

// ExtractTasks asks the chat model to extract tasks from message, enriching
// the prompt with whatever reference data is available. Any failure falls
// back to the pattern-based extractor; the error is never surfaced.
func (x *LLMExtractor) ExtractTasks(ctx context.Context, message string, ref *models.ReferenceData) models.ParseResult {
	resp, err := x.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(x.prompt),
		schema.UserMessage(buildUserPrompt(message, ref)),
	})
	if err != nil || resp == nil || resp.Content == "" {
		return x.fallback.ExtractTasks(message)
	}

	var wire wireResult
	if err := json.Unmarshal([]byte(stripMarkdownFences(resp.Content)), &wire); err != nil {
		return x.fallback.ExtractTasks(message)
	}

	tasks := make([]models.ExtractedTask, 0, len(wire.Tasks))
	for _, wt := range wire.Tasks {
		if strings.TrimSpace(wt.Title) == "" {
			continue
		}
		task := models.ExtractedTask{
			Title:          strings.TrimSpace(wt.Title),
			Description:    wt.Description,
			Priority:       models.NormalizePriority(wt.Priority),
			AssigneeID:     wt.AssigneeID,
			ProjectID:      wt.ProjectID,
			EstimatedHours: models.ClampHours(wt.EstimatedHours),
			Tags:           models.DedupeTags(wt.Tags),
			Dependencies:   wt.Dependencies,
			Confidence:     models.ClampConfidence(wt.Confidence),
		}
		if due, ok := parseWireDate(wt.DueDate); ok {
			task.DueDate = &due
		}
		tasks = append(tasks, task)
	}

	return models.ParseResult{
		Tasks:       tasks,
		Confidence:  models.ClampConfidence(wire.Confidence),
		Suggestions: wire.Suggestions,
	}
}

func buildUserPrompt(message string, ref *models.ReferenceData) string {
	var sb strings.Builder
	sb.WriteString("Message:\n")
	sb.WriteString(message)

	if ref == nil {
		return sb.String()
	}

	if len(ref.TeamMembers) > 0 {
		sb.WriteString("\n\nTeam roster:\n")
		for _, m := range ref.TeamMembers {
			fmt.Fprintf(&sb, "- %s: %s (%s; skills: %s)\n", m.ID, m.Name, m.Role, strings.Join(m.Skills, ", "))
		}
	}
	if len(ref.Projects) > 0 {
		sb.WriteString("\nProjects:\n")
		for _, p := range ref.Projects {
			fmt.Fprintf(&sb, "- %s: %s (client: %s)\n", p.ID, p.Name, p.Client)
		}
	}
	if len(ref.ExistingTasks) > 0 {
		sb.WriteString("\nExisting tasks:\n")
		for _, t := range ref.ExistingTasks {
			fmt.Fprintf(&sb, "- %s: %s\n", t.ID, t.Title)
		}
	}
	return sb.String()
}

// stripMarkdownFences removes a surrounding ```json ... ``` block if the
// model wrapped its response despite instructions.
func stripMarkdownFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// parseWireDate accepts RFC 3339 timestamps and bare dates.
func parseWireDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
