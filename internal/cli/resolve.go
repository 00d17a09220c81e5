package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// resolveRef resolves a user-supplied reference against a set of entities.
// Matching order: exact name (case-insensitive), exact ID, then unique ID
// prefix. Ambiguous prefixes and names are errors.
func resolveRef(kind, input string, ids, names []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s reference is required", kind)
	}

	var nameMatches []string
	for i, n := range names {
		if strings.EqualFold(n, input) {
			nameMatches = append(nameMatches, ids[i])
		}
	}
	switch len(nameMatches) {
	case 1:
		return nameMatches[0], nil
	default:
		if len(nameMatches) > 1 {
			return "", fmt.Errorf("%s name %q is ambiguous (%d matches), use an ID", kind, input, len(nameMatches))
		}
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var prefixMatches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			prefixMatches = append(prefixMatches, id)
		}
	}
	switch len(prefixMatches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return prefixMatches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(prefixMatches))
	}
}

func resolveProjectID(s domain.Snapshot, input string) (string, error) {
	ids := make([]string, len(s.Projects))
	names := make([]string, len(s.Projects))
	for i := range s.Projects {
		ids[i], names[i] = s.Projects[i].ID, s.Projects[i].Name
	}
	return resolveRef("project", input, ids, names)
}

func resolveSectionID(s domain.Snapshot, input string) (string, error) {
	ids := make([]string, len(s.Sections))
	names := make([]string, len(s.Sections))
	for i := range s.Sections {
		ids[i], names[i] = s.Sections[i].ID, s.Sections[i].Name
	}
	return resolveRef("section", input, ids, names)
}

func resolveTaskID(s domain.Snapshot, input string) (string, error) {
	ids := make([]string, len(s.Tasks))
	names := make([]string, len(s.Tasks))
	for i := range s.Tasks {
		ids[i], names[i] = s.Tasks[i].ID, s.Tasks[i].Name
	}
	return resolveRef("task", input, ids, names)
}

func resolveUserID(s domain.Snapshot, input string) (string, error) {
	ids := make([]string, len(s.Users))
	names := make([]string, len(s.Users))
	for i := range s.Users {
		ids[i], names[i] = s.Users[i].ID, s.Users[i].Name
	}
	return resolveRef("user", input, ids, names)
}

func resolveLinkID(s domain.Snapshot, input string) (string, error) {
	ids := make([]string, len(s.Links))
	for i := range s.Links {
		ids[i] = s.Links[i].ID
	}
	return resolveRef("link", input, ids, nil)
}
