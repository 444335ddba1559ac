package texts

import "time"

// Text version sources.
const (
	SourceEditor = "editor"
	SourceUpload = "upload"
)

// MaxProjectIDLength bounds project ids accepted by the service.
const MaxProjectIDLength = 128

// TextVersion is one saved revision of a project's text.
type TextVersion struct {
	ID         string
	ProjectID  string
	Content    string
	Source     string
	FileName   string
	StorageKey string
	CreatedAt  time.Time
}
