package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"seotext-backend/internal/extract"
	"seotext-backend/internal/readability"
	"seotext-backend/internal/shared/metrics"
	"seotext-backend/internal/shared/storage/object"
	"seotext-backend/internal/shared/telemetry"
	"seotext-backend/internal/shared/util"
	"seotext-backend/internal/texts"
	"seotext-backend/readability/model"
)

const (
	DefaultMaxUploadBytes = 10 << 20
	presignExpires        = 15 * time.Minute
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUploadTooLarge     = errors.New("upload too large")
	ErrUnreadable         = errors.New("document could not be read")
	ErrPresignUnsupported = errors.New("presigned uploads not supported")
)

// Presigner issues direct upload URLs for storage keys.
type Presigner interface {
	PresignPut(ctx context.Context, key string, expires time.Duration) (string, error)
}

// Import is the outcome of turning an uploaded document into a text version.
type Import struct {
	Version texts.TextVersion
	Result  model.AnalysisResult
}

// Presigned describes a direct upload slot.
type Presigned struct {
	UploadURL        string `json:"uploadUrl"`
	Key              string `json:"key"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
}

// Service imports documents into project texts.
type Service struct {
	Store          object.ObjectStore
	Presigner      Presigner
	Texts          *texts.Service
	Readability    *readability.Service
	MaxUploadBytes int64
}

// Import extracts the text of an uploaded file, keeps the raw file in object
// storage and saves the text as a new version of the project.
func (s *Service) Import(ctx context.Context, projectID, fileName string, r io.Reader) (Import, error) {
	projectID, fileName, err := normalize(projectID, fileName)
	if err != nil {
		return Import{}, err
	}

	data, err := s.read(r)
	if err != nil {
		return Import{}, s.fail(projectID, fileName, err)
	}
	text, err := extractText(ctx, data, fileName)
	if err != nil {
		return Import{}, s.fail(projectID, fileName, err)
	}

	obj, err := s.Store.Save(ctx, projectID, fileName, bytes.NewReader(data))
	if err != nil {
		return Import{}, s.fail(projectID, fileName, fmt.Errorf("store upload: %w", err))
	}

	out, err := s.save(ctx, projectID, fileName, obj.Key, text)
	if err != nil {
		if delErr := s.Store.Delete(ctx, obj.Key); delErr != nil {
			telemetry.Error("upload.rollback_failed", map[string]any{
				"project_id":  projectID,
				"storage_key": obj.Key,
				"err":         delErr.Error(),
			})
		}
		return Import{}, s.fail(projectID, fileName, err)
	}
	return out, nil
}

// ImportStored imports a file the client already uploaded to a presigned key.
// The key must belong to the project.
func (s *Service) ImportStored(ctx context.Context, projectID, key, fileName string) (Import, error) {
	projectID, fileName, err := normalize(projectID, fileName)
	if err != nil {
		return Import{}, err
	}
	key = strings.TrimSpace(key)
	if !strings.HasPrefix(key, util.HashKey(projectID)+"/") {
		return Import{}, fmt.Errorf("%w: key does not belong to project", ErrInvalidInput)
	}

	rc, err := s.Store.Open(ctx, key)
	if err != nil {
		return Import{}, s.fail(projectID, fileName, err)
	}
	defer rc.Close()

	data, err := s.read(rc)
	if err != nil {
		return Import{}, s.fail(projectID, fileName, err)
	}
	text, err := extractText(ctx, data, fileName)
	if err != nil {
		return Import{}, s.fail(projectID, fileName, err)
	}

	out, err := s.save(ctx, projectID, fileName, key, text)
	if err != nil {
		return Import{}, s.fail(projectID, fileName, err)
	}
	return out, nil
}

// Presign reserves a storage key for fileName and returns an upload URL for it.
func (s *Service) Presign(ctx context.Context, projectID, fileName string) (Presigned, error) {
	if s.Presigner == nil {
		return Presigned{}, ErrPresignUnsupported
	}
	projectID, fileName, err := normalize(projectID, fileName)
	if err != nil {
		return Presigned{}, err
	}
	key, err := object.NewKey(projectID, fileName)
	if err != nil {
		return Presigned{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	url, err := s.Presigner.PresignPut(ctx, key, presignExpires)
	if err != nil {
		telemetry.Error("upload.presign_failed", map[string]any{
			"project_id":  projectID,
			"storage_key": key,
			"err":         err.Error(),
		})
		return Presigned{}, err
	}
	return Presigned{
		UploadURL:        url,
		Key:              key,
		ExpiresInSeconds: int64(presignExpires.Seconds()),
	}, nil
}

func (s *Service) save(ctx context.Context, projectID, fileName, key, text string) (Import, error) {
	v, err := s.Texts.Save(ctx, texts.SaveInput{
		ProjectID:  projectID,
		Content:    text,
		Source:     texts.SourceUpload,
		FileName:   fileName,
		StorageKey: key,
	})
	if err != nil {
		return Import{}, err
	}

	result, err := s.Readability.Analyze(ctx, text)
	if err != nil {
		return Import{}, err
	}

	metrics.IncUploadsImported()
	telemetry.Info("upload.imported", map[string]any{
		"project_id":   projectID,
		"version_id":   v.ID,
		"file_name":    fileName,
		"storage_key":  key,
		"flesch_score": result.FleschScore,
	})
	return Import{Version: v, Result: result}, nil
}

func (s *Service) read(r io.Reader) ([]byte, error) {
	limit := s.MaxUploadBytes
	if limit <= 0 {
		limit = DefaultMaxUploadBytes
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrUploadTooLarge, limit)
	}
	return data, nil
}

func (s *Service) fail(projectID, fileName string, err error) error {
	metrics.IncUploadsFailed()
	telemetry.Error("upload.failed", map[string]any{
		"project_id": projectID,
		"file_name":  fileName,
		"err":        err.Error(),
	})
	return err
}

func extractText(ctx context.Context, data []byte, fileName string) (string, error) {
	text, err := extract.ExtractTextFromBytes(ctx, data, "", fileName)
	switch {
	case err == nil:
		return text, nil
	case errors.Is(err, extract.ErrUnsupportedType),
		errors.Is(err, extract.ErrEmptyDocument),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return "", err
	default:
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
}

func normalize(projectID, fileName string) (string, string, error) {
	projectID, err := texts.NormalizeProjectID(projectID)
	if err != nil {
		return "", "", err
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return "", "", fmt.Errorf("%w: file name required", ErrInvalidInput)
	}
	return projectID, fileName, nil
}
