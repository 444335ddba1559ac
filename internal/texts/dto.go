package texts

import "time"

// VersionSummary describes a text version without its content.
type VersionSummary struct {
	VersionID string    `json:"versionId"`
	ProjectID string    `json:"projectId"`
	Source    string    `json:"source"`
	FileName  string    `json:"fileName,omitempty"`
	Bytes     int       `json:"bytes"`
	SavedAt   time.Time `json:"savedAt"`
}

// VersionResponse is the outward-facing representation of a text version.
type VersionResponse struct {
	VersionSummary
	Content string `json:"content"`
}

// ToResponse renders a version including its content.
func ToResponse(v TextVersion) VersionResponse {
	return VersionResponse{VersionSummary: toSummary(v), Content: v.Content}
}

func toSummary(v TextVersion) VersionSummary {
	return VersionSummary{
		VersionID: v.ID,
		ProjectID: v.ProjectID,
		Source:    v.Source,
		FileName:  v.FileName,
		Bytes:     len(v.Content),
		SavedAt:   v.CreatedAt,
	}
}
