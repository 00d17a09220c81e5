package domain

type Link struct {
	ID           string
	SourceTaskID string
	TargetTaskID string
	Kind         LinkKind
}

// References reports whether the link touches the given task id as
// either endpoint.
func (l *Link) References(taskID string) bool {
	return l.SourceTaskID == taskID || l.TargetTaskID == taskID
}
