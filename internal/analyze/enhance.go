package analyze

import (
	"github.com/josephgoksu/CrewWing/models"
)

// Confidence thresholds a context clue must clear before it may overwrite a
// field on an extracted task.
const (
	urgencyThreshold  = 0.6
	assigneeThreshold = 0.7
	deadlineThreshold = 0.6
	projectThreshold  = 0.7

	deadlineTagThreshold   = 0.5
	dependencyTagThreshold = 0.6
)

// EnhanceTask folds a context analysis into a previously-extracted task.
// Fields are only overwritten when the corresponding clue clears its
// threshold; tags are appended and de-duplicated, never replaced. The input
// task is not mutated.
func EnhanceTask(task models.ExtractedTask, clues models.ContextAnalysis) models.ExtractedTask {
	enhanced := task

	if clues.Urgency.Confidence > urgencyThreshold {
		enhanced.Priority = clues.Urgency.Level
	}

	if clues.Assignees.Confidence > assigneeThreshold && len(clues.Assignees.Suggestions) > 0 {
		enhanced.AssigneeID = clues.Assignees.Suggestions[0].Value
	}

	if clues.Deadlines.Confidence > deadlineThreshold && clues.Deadlines.ExtractedDate != nil {
		due := *clues.Deadlines.ExtractedDate
		enhanced.DueDate = &due
	}

	if clues.Projects.Confidence > projectThreshold && len(clues.Projects.Suggestions) > 0 {
		enhanced.ProjectID = clues.Projects.Suggestions[0].Value
	}

	contextTags := make([]string, 0, 3)
	if clues.Urgency.Level == models.PriorityUrgent {
		contextTags = append(contextTags, "urgent")
	}
	if clues.Deadlines.Confidence > deadlineTagThreshold {
		contextTags = append(contextTags, "deadline")
	}
	if clues.Dependencies.Confidence > dependencyTagThreshold {
		contextTags = append(contextTags, "dependency")
	}
	enhanced.Tags = models.DedupeTags(append(append([]string{}, task.Tags...), contextTags...))

	// Dependency confidence is deliberately excluded from this average: a
	// strong dependency clue says nothing about how well the task itself
	// was understood.
	avgContext := (clues.Urgency.Confidence +
		clues.Assignees.Confidence +
		clues.Deadlines.Confidence +
		clues.Projects.Confidence) / 4
	enhanced.Confidence = models.ClampConfidence(task.Confidence + avgContext*0.2)

	return enhanced
}
