package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/josephgoksu/CrewWing/models"
)

// EmailMetadata carries the envelope fields the extractor keys its heuristics
// off. IsClient may be forced by the caller; otherwise a "client" substring
// in the sender address marks the email as client-originated.
type EmailMetadata struct {
	From     string    `json:"from" validate:"required"`
	Subject  string    `json:"subject"`
	Date     time.Time `json:"date"`
	IsClient bool      `json:"isClient"`
}

var emailUrgentKeywords = []string{"urgent", "asap", "critical", "emergency", "immediate"}
var emailHighKeywords = []string{"important", "priority", "soon", "deadline"}

// ExtractFromEmail derives draft tasks from an inbound email. Client email
// gets richer treatment (feedback review, revision work, meeting scheduling)
// than internal team email.
func (e *Extractor) ExtractFromEmail(content string, meta EmailMetadata) models.ParseResult {
	isClient := meta.IsClient || strings.Contains(meta.From, "client")
	lower := strings.ToLower(content)
	urgency := determineEmailUrgency(content, meta.Subject)

	var tasks []models.ExtractedTask

	if isClient {
		if containsAny(lower, "review", "feedback") {
			due := e.now().AddDate(0, 0, 2)
			sender := meta.From
			if at := strings.Index(sender, "@"); at >= 0 {
				sender = sender[:at]
			}
			tasks = append(tasks, models.ExtractedTask{
				Title:          fmt.Sprintf("Review feedback from %s", sender),
				Description:    fmt.Sprintf("Client feedback received: %s", meta.Subject),
				Priority:       urgency,
				Tags:           []string{"client", "review", "feedback"},
				EstimatedHours: 2,
				DueDate:        &due,
				Confidence:     0.9,
			})
		}

		if containsAny(lower, "change", "revisions") {
			tasks = append(tasks, models.ExtractedTask{
				Title:          "Implement client revisions",
				Description:    "Client has requested changes to current deliverables",
				Priority:       models.PriorityHigh,
				Tags:           []string{"client", "revisions", "changes"},
				EstimatedHours: 4,
				Confidence:     0.85,
			})
		}

		if containsAny(lower, "meeting", "call") {
			due := e.now().AddDate(0, 0, 1)
			tasks = append(tasks, models.ExtractedTask{
				Title:          "Schedule client meeting",
				Description:    fmt.Sprintf("Meeting request from %s", meta.From),
				Priority:       models.PriorityMedium,
				Tags:           []string{"client", "meeting", "scheduling"},
				EstimatedHours: 0.5,
				DueDate:        &due,
				Confidence:     0.8,
			})
		}
	} else if containsAny(lower, "status", "update") {
		tasks = append(tasks, models.ExtractedTask{
			Title:          "Provide project status update",
			Description:    "Team member requesting project status",
			Priority:       models.PriorityMedium,
			Tags:           []string{"internal", "status", "communication"},
			EstimatedHours: 1,
			Confidence:     0.75,
		})
	}

	confidence := 0.3
	if len(tasks) > 0 {
		confidence = 0.8
	}

	source := "team"
	if isClient {
		source = "client"
	}
	actionHint := "Consider assigning team members"
	if len(tasks) == 0 {
		actionHint = "No clear action items detected"
	}

	return models.ParseResult{
		Tasks:      tasks,
		Confidence: confidence,
		Suggestions: []string{
			fmt.Sprintf("Parsed %d tasks from %s email", len(tasks), source),
			actionHint,
			"Email context preserved for reference",
		},
	}
}

func determineEmailUrgency(content, subject string) models.TaskPriority {
	text := strings.ToLower(content + " " + subject)

	if containsAny(text, emailUrgentKeywords...) {
		return models.PriorityUrgent
	}
	if containsAny(text, emailHighKeywords...) {
		return models.PriorityHigh
	}
	// Client email defaults a notch above low.
	return models.PriorityMedium
}
