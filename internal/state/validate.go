package state

import "fmt"

// ValidationCode classifies why an action was rejected.
type ValidationCode string

const (
	CodeEmptyName              ValidationCode = "empty_name"
	CodeInvalidDateRange       ValidationCode = "invalid_date_range"
	CodeUnknownProject         ValidationCode = "unknown_project"
	CodeUnknownSection         ValidationCode = "unknown_section"
	CodeUnknownTask            ValidationCode = "unknown_task"
	CodeSectionProjectMismatch ValidationCode = "section_project_mismatch"
)

// ValidationError reports a rejected action. The snapshot is left
// unchanged; callers surface the message to the user instead of
// committing the action.
type ValidationError struct {
	Code    ValidationCode
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func errEmptyName(field string) *ValidationError {
	return &ValidationError{Code: CodeEmptyName, Field: field, Message: "name must not be empty"}
}

func errInvalidDateRange() *ValidationError {
	return &ValidationError{Code: CodeInvalidDateRange, Field: "dates", Message: "invalid date range: start date is after end date"}
}

func errUnknownProject(id string) *ValidationError {
	return &ValidationError{Code: CodeUnknownProject, Field: "projectId", Message: fmt.Sprintf("project not found: %q", id)}
}

func errUnknownSection(id string) *ValidationError {
	return &ValidationError{Code: CodeUnknownSection, Field: "sectionId", Message: fmt.Sprintf("section not found: %q", id)}
}

func errUnknownTask(field, id string) *ValidationError {
	return &ValidationError{Code: CodeUnknownTask, Field: field, Message: fmt.Sprintf("task not found: %q", id)}
}

func errSectionProjectMismatch(sectionID string) *ValidationError {
	return &ValidationError{
		Code:    CodeSectionProjectMismatch,
		Field:   "sectionId",
		Message: fmt.Sprintf("section %q belongs to a different project", sectionID),
	}
}
