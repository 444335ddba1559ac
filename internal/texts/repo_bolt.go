package texts

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"
	"github.com/golang/snappy"
)

var (
	bucketProjects = []byte("projects")
	bucketVersions = []byte("versions")
	bucketIDs      = []byte("ids")
)

// boltRecord is the stored form of a version. Values are snappy-compressed JSON.
type boltRecord struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"p"`
	Content    string    `json:"c"`
	Source     string    `json:"s"`
	FileName   string    `json:"f,omitempty"`
	StorageKey string    `json:"k,omitempty"`
	CreatedAt  time.Time `json:"t"`
}

// BoltRepo implements Repo on an embedded bolt file. Each project gets its own
// bucket holding versions keyed by a big-endian sequence, so cursor order is
// save order, plus an id index.
type BoltRepo struct {
	db *bolt.DB
}

// OpenBoltRepo opens or creates the bolt file at path.
func OpenBoltRepo(path string) (*BoltRepo, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketProjects)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltRepo{db: db}, nil
}

// Close releases the bolt file lock.
func (r *BoltRepo) Close() error {
	return r.db.Close()
}

// Create stores a version at the end of its project's sequence.
func (r *BoltRepo) Create(ctx context.Context, v TextVersion) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := encodeRecord(v)
	if err != nil {
		return err
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		project, err := tx.Bucket(bucketProjects).CreateBucketIfNotExists([]byte(v.ProjectID))
		if err != nil {
			return err
		}
		versions, err := project.CreateBucketIfNotExists(bucketVersions)
		if err != nil {
			return err
		}
		ids, err := project.CreateBucketIfNotExists(bucketIDs)
		if err != nil {
			return err
		}
		if ids.Get([]byte(v.ID)) != nil {
			return fmt.Errorf("%w: duplicate version id %s", ErrInvalidInput, v.ID)
		}
		seq, err := versions.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		if err := versions.Put(key, value); err != nil {
			return err
		}
		return ids.Put([]byte(v.ID), key)
	})
}

// Latest returns the most recently saved version of a project.
func (r *BoltRepo) Latest(ctx context.Context, projectID string) (TextVersion, error) {
	if err := ctx.Err(); err != nil {
		return TextVersion{}, err
	}
	var out TextVersion
	err := r.db.View(func(tx *bolt.Tx) error {
		versions, _ := projectBuckets(tx, projectID)
		if versions == nil {
			return ErrNotFound
		}
		_, value := versions.Cursor().Last()
		if value == nil {
			return ErrNotFound
		}
		var err error
		out, err = decodeRecord(value)
		return err
	})
	return out, err
}

// GetByID returns a version of a project by id.
func (r *BoltRepo) GetByID(ctx context.Context, projectID, versionID string) (TextVersion, error) {
	if err := ctx.Err(); err != nil {
		return TextVersion{}, err
	}
	var out TextVersion
	err := r.db.View(func(tx *bolt.Tx) error {
		versions, ids := projectBuckets(tx, projectID)
		if versions == nil || ids == nil {
			return ErrNotFound
		}
		key := ids.Get([]byte(versionID))
		if key == nil {
			return ErrNotFound
		}
		value := versions.Get(key)
		if value == nil {
			return ErrNotFound
		}
		var err error
		out, err = decodeRecord(value)
		return err
	})
	return out, err
}

// ListByProject returns versions newest first, honoring limit/offset.
func (r *BoltRepo) ListByProject(ctx context.Context, projectID string, limit, offset int) ([]TextVersion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	out := []TextVersion{}
	err := r.db.View(func(tx *bolt.Tx) error {
		versions, _ := projectBuckets(tx, projectID)
		if versions == nil {
			return nil
		}
		c := versions.Cursor()
		skipped := 0
		for k, value := c.Last(); k != nil; k, value = c.Prev() {
			if skipped < offset {
				skipped++
				continue
			}
			v, err := decodeRecord(value)
			if err != nil {
				return err
			}
			out = append(out, v)
			if limit > 0 && len(out) == limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func projectBuckets(tx *bolt.Tx, projectID string) (versions, ids *bolt.Bucket) {
	project := tx.Bucket(bucketProjects).Bucket([]byte(projectID))
	if project == nil {
		return nil, nil
	}
	return project.Bucket(bucketVersions), project.Bucket(bucketIDs)
}

func encodeRecord(v TextVersion) ([]byte, error) {
	data, err := json.Marshal(boltRecord{
		ID:         v.ID,
		ProjectID:  v.ProjectID,
		Content:    v.Content,
		Source:     v.Source,
		FileName:   v.FileName,
		StorageKey: v.StorageKey,
		CreatedAt:  v.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode version: %w", err)
	}
	return snappy.Encode(nil, data), nil
}

func decodeRecord(value []byte) (TextVersion, error) {
	data, err := snappy.Decode(nil, value)
	if err != nil {
		return TextVersion{}, fmt.Errorf("decompress version: %w", err)
	}
	var rec boltRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return TextVersion{}, fmt.Errorf("decode version: %w", err)
	}
	return TextVersion{
		ID:         rec.ID,
		ProjectID:  rec.ProjectID,
		Content:    rec.Content,
		Source:     rec.Source,
		FileName:   rec.FileName,
		StorageKey: rec.StorageKey,
		CreatedAt:  rec.CreatedAt,
	}, nil
}

var _ Repo = (*BoltRepo)(nil)
