// Package roster loads the team/project reference file the CLI commands
// share. JSON and YAML are both accepted, keyed off the file extension.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/josephgoksu/CrewWing/models"
)

// Roster is the on-disk reference file: the full team for assignment plus
// lightweight project and task lists for context analysis.
type Roster struct {
	TeamMembers   []models.TeamMember `json:"teamMembers" yaml:"teamMembers"`
	Projects      []models.ProjectRef `json:"projects" yaml:"projects"`
	ExistingTasks []models.TaskRef    `json:"existingTasks" yaml:"existingTasks"`
}

// Load reads and validates a roster file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}

	var r Roster
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to parse roster YAML %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to parse roster JSON %s: %w", path, err)
		}
	}

	for i, member := range r.TeamMembers {
		if err := models.ValidateStruct(member); err != nil {
			return nil, fmt.Errorf("invalid team member at index %d: %w", i, err)
		}
	}

	return &r, nil
}

// ReferenceData projects the roster into the lightweight view the context
// analyzers take.
func (r *Roster) ReferenceData() *models.ReferenceData {
	if r == nil {
		return nil
	}

	members := make([]models.MemberRef, 0, len(r.TeamMembers))
	for _, m := range r.TeamMembers {
		members = append(members, models.MemberRef{
			ID:     m.ID,
			Name:   m.Name,
			Role:   string(m.Role),
			Skills: m.Skills,
		})
	}

	return &models.ReferenceData{
		TeamMembers:   members,
		Projects:      r.Projects,
		ExistingTasks: r.ExistingTasks,
	}
}
