package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

const dateLayout = "2006-01-02"

// ValidatePlanSchema checks the plan file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePlanSchema(schema *PlanSchema) []error {
	var errs []error

	if schema.Project.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	if schema.Project.Status != "" && !domain.ValidProjectStatuses[schema.Project.Status] {
		errs = append(errs, fmt.Errorf("project.status: invalid value %q", schema.Project.Status))
	}
	errs = append(errs, validateOptionalDate("project.start_date", schema.Project.StartDate)...)
	errs = append(errs, validateOptionalDate("project.end_date", schema.Project.EndDate)...)

	sectionRefs := make(map[string]bool)
	for i, s := range schema.Sections {
		if s.Ref == "" {
			errs = append(errs, fmt.Errorf("sections[%d].ref is required", i))
		} else if sectionRefs[s.Ref] {
			errs = append(errs, fmt.Errorf("sections[%d]: duplicate ref %q", i, s.Ref))
		}
		sectionRefs[s.Ref] = true
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("sections[%d].name is required", i))
		}
	}

	userRefs := make(map[string]bool)
	for i, u := range schema.Users {
		if u.Ref == "" {
			errs = append(errs, fmt.Errorf("users[%d].ref is required", i))
		} else if userRefs[u.Ref] {
			errs = append(errs, fmt.Errorf("users[%d]: duplicate ref %q", i, u.Ref))
		}
		userRefs[u.Ref] = true
		if u.Name == "" {
			errs = append(errs, fmt.Errorf("users[%d].name is required", i))
		}
	}

	taskRefs := make(map[string]bool)
	for i, t := range schema.Tasks {
		if t.Ref == "" {
			errs = append(errs, fmt.Errorf("tasks[%d].ref is required", i))
		} else if taskRefs[t.Ref] {
			errs = append(errs, fmt.Errorf("tasks[%d]: duplicate ref %q", i, t.Ref))
		}
		taskRefs[t.Ref] = true
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("tasks[%d].name is required", i))
		}
		if t.SectionRef != "" && !sectionRefs[t.SectionRef] {
			errs = append(errs, fmt.Errorf("tasks[%d].section_ref %q not found", i, t.SectionRef))
		}
		start, startErr := time.Parse(dateLayout, t.Start)
		if startErr != nil {
			errs = append(errs, fmt.Errorf("tasks[%d].start: invalid date %q (expected YYYY-MM-DD)", i, t.Start))
		}
		end, endErr := time.Parse(dateLayout, t.End)
		if endErr != nil {
			errs = append(errs, fmt.Errorf("tasks[%d].end: invalid date %q (expected YYYY-MM-DD)", i, t.End))
		}
		if startErr == nil && endErr == nil && start.After(end) {
			errs = append(errs, fmt.Errorf("tasks[%d]: start %q is after end %q", i, t.Start, t.End))
		}
		if t.Status != "" && !domain.ValidTaskStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("tasks[%d].status: invalid value %q", i, t.Status))
		}
		if t.Priority != "" && !domain.ValidTaskPriorities[t.Priority] {
			errs = append(errs, fmt.Errorf("tasks[%d].priority: invalid value %q", i, t.Priority))
		}
		for _, ur := range t.UserRefs {
			if !userRefs[ur] {
				errs = append(errs, fmt.Errorf("tasks[%d]: user_ref %q not found", i, ur))
			}
		}
	}

	for i, l := range schema.Links {
		if !taskRefs[l.SourceRef] {
			errs = append(errs, fmt.Errorf("links[%d].source_ref %q not found", i, l.SourceRef))
		}
		if !taskRefs[l.TargetRef] {
			errs = append(errs, fmt.Errorf("links[%d].target_ref %q not found", i, l.TargetRef))
		}
		if l.Kind != "" && !domain.ValidLinkKinds[l.Kind] {
			errs = append(errs, fmt.Errorf("links[%d].kind: invalid value %q", i, l.Kind))
		}
	}

	return errs
}

func validateOptionalDate(field string, v *string) []error {
	if v == nil || *v == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, *v); err != nil {
		return []error{fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD)", field, *v)}
	}
	return nil
}
