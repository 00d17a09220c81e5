package domain

import "time"

type Project struct {
	ID        string
	Name      string
	Color     string
	Status    ProjectStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// DisplayID returns a short identifier suitable for tables and logs.
// Truncates the full ID to 8 characters when possible.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
