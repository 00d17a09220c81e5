package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// PlanSchema is the top-level JSON structure for a plan import file.
// Entities reference each other by file-local refs, resolved to real ids
// during conversion.
type PlanSchema struct {
	Project  ProjectImport   `json:"project"`
	Sections []SectionImport `json:"sections,omitempty"`
	Tasks    []TaskImport    `json:"tasks"`
	Links    []LinkImport    `json:"links,omitempty"`
	Users    []UserImport    `json:"users,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	Name      string  `json:"name"`
	Color     string  `json:"color,omitempty"`
	Status    string  `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// SectionImport defines a section in the import file.
type SectionImport struct {
	Ref   string `json:"ref"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// TaskImport defines a task in the import file.
type TaskImport struct {
	Ref         string   `json:"ref"`
	SectionRef  string   `json:"section_ref,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Progress    int      `json:"progress,omitempty"`
	UserRefs    []string `json:"user_refs,omitempty"`
}

// LinkImport defines a dependency link between two tasks in the file.
type LinkImport struct {
	SourceRef string `json:"source_ref"`
	TargetRef string `json:"target_ref"`
	Kind      string `json:"kind,omitempty"`
}

// UserImport defines a team member in the import file.
type UserImport struct {
	Ref   string `json:"ref"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// LoadPlanSchema reads and parses a plan import JSON file.
func LoadPlanSchema(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema PlanSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &schema, nil
}
