package texts

import "context"

// Repo persists text versions. Latest and ListByProject order by creation time,
// newest first.
type Repo interface {
	Create(ctx context.Context, v TextVersion) error
	Latest(ctx context.Context, projectID string) (TextVersion, error)
	GetByID(ctx context.Context, projectID, versionID string) (TextVersion, error)
	ListByProject(ctx context.Context, projectID string, limit, offset int) ([]TextVersion, error)
}
