package texts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"seotext-backend/internal/shared/metrics"
	"seotext-backend/internal/shared/telemetry"
)

// Service contains business logic for saving and loading project texts.
type Service struct {
	Repo         Repo
	MaxTextBytes int
	Now          func() time.Time
}

// SaveInput describes a new text version.
type SaveInput struct {
	ProjectID  string
	Content    string
	Source     string
	FileName   string
	StorageKey string
}

// Save validates and stores a new version of a project's text. Saving never
// overwrites: every call creates a version.
func (s *Service) Save(ctx context.Context, in SaveInput) (TextVersion, error) {
	projectID, err := NormalizeProjectID(in.ProjectID)
	if err != nil {
		return TextVersion{}, err
	}
	if s.MaxTextBytes > 0 && len(in.Content) > s.MaxTextBytes {
		return TextVersion{}, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTextTooLarge, len(in.Content), s.MaxTextBytes)
	}
	source := in.Source
	switch source {
	case "":
		source = SourceEditor
	case SourceEditor, SourceUpload:
	default:
		return TextVersion{}, fmt.Errorf("%w: unknown source %q", ErrInvalidInput, source)
	}

	v := TextVersion{
		ID:         uuid.NewString(),
		ProjectID:  projectID,
		Content:    in.Content,
		Source:     source,
		FileName:   strings.TrimSpace(in.FileName),
		StorageKey: in.StorageKey,
		CreatedAt:  s.now(),
	}
	if err := s.Repo.Create(ctx, v); err != nil {
		return TextVersion{}, err
	}

	metrics.IncTextVersionsSaved()
	telemetry.Info("text.saved", map[string]any{
		"project_id": v.ProjectID,
		"version_id": v.ID,
		"source":     v.Source,
		"bytes":      len(v.Content),
	})
	return v, nil
}

// Latest returns the newest saved version of a project.
func (s *Service) Latest(ctx context.Context, projectID string) (TextVersion, error) {
	projectID, err := NormalizeProjectID(projectID)
	if err != nil {
		return TextVersion{}, err
	}
	return s.Repo.Latest(ctx, projectID)
}

// Get returns a specific version of a project.
func (s *Service) Get(ctx context.Context, projectID, versionID string) (TextVersion, error) {
	projectID, err := NormalizeProjectID(projectID)
	if err != nil {
		return TextVersion{}, err
	}
	versionID = strings.TrimSpace(versionID)
	if versionID == "" {
		return TextVersion{}, fmt.Errorf("%w: version id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, projectID, versionID)
}

// List returns versions of a project, newest first.
func (s *Service) List(ctx context.Context, projectID string, limit, offset int) ([]TextVersion, error) {
	projectID, err := NormalizeProjectID(projectID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByProject(ctx, projectID, limit, offset)
}

// LatestContent returns the newest text of a project with its version id.
func (s *Service) LatestContent(ctx context.Context, projectID string) (string, string, error) {
	v, err := s.Latest(ctx, projectID)
	if err != nil {
		return "", "", err
	}
	return v.ID, v.Content, nil
}

// NormalizeProjectID trims the id and enforces the length bound.
func NormalizeProjectID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", fmt.Errorf("%w: project id required", ErrInvalidInput)
	}
	if len(id) > MaxProjectIDLength {
		return "", fmt.Errorf("%w: project id longer than %d characters", ErrInvalidInput, MaxProjectIDLength)
	}
	return id, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
