package domain

import "time"

// Snapshot is the export/import document. A nil collection is treated as
// absent on import; an empty, non-nil slice overwrites the stored collection.
type Snapshot struct {
	Tasks      []Task    `json:"tasks" yaml:"tasks"`
	Courses    []Course  `json:"courses" yaml:"courses"`
	Settings   *Settings `json:"settings" yaml:"settings"`
	ExportedAt time.Time `json:"exportedAt" yaml:"exportedAt"`
}

// IsEmpty reports whether the snapshot carries no collection at all.
func (s Snapshot) IsEmpty() bool {
	return s.Tasks == nil && s.Courses == nil && s.Settings == nil
}
