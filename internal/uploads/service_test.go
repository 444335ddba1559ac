package uploads

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"seotext-backend/internal/extract"
	"seotext-backend/internal/readability"
	"seotext-backend/internal/shared/storage/object"
	"seotext-backend/internal/shared/storage/object/local"
	"seotext-backend/internal/texts"
)

type failingRepo struct {
	texts.Repo
}

func (failingRepo) Create(context.Context, texts.TextVersion) error {
	return errors.New("db down")
}

type fakePresigner struct {
	key     string
	expires time.Duration
}

func (f *fakePresigner) PresignPut(_ context.Context, key string, expires time.Duration) (string, error) {
	f.key = key
	f.expires = expires
	return "https://uploads.example.com/" + key, nil
}

func newTestService(t *testing.T, repo texts.Repo) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	return &Service{
		Store:          local.New(dir),
		Texts:          &texts.Service{Repo: repo, MaxTextBytes: 1 << 16},
		Readability:    &readability.Service{MaxTextBytes: 1 << 16},
		MaxUploadBytes: 1 << 16,
	}, dir
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	return n
}

func TestImportPlainText(t *testing.T) {
	svc, dir := newTestService(t, texts.NewMemoryRepo())
	ctx := context.Background()

	out, err := svc.Import(ctx, "p1", "notes.txt", strings.NewReader("Das Haus wird gebaut.\r\nEs ist halt so."))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if out.Version.Source != texts.SourceUpload || out.Version.FileName != "notes.txt" {
		t.Fatalf("unexpected version %+v", out.Version)
	}
	if out.Version.Content != "Das Haus wird gebaut.\nEs ist halt so." {
		t.Fatalf("unexpected content %q", out.Version.Content)
	}
	if out.Version.StorageKey == "" {
		t.Fatalf("expected storage key")
	}
	if out.Result.Sentences != 2 || len(out.Result.PassiveConstructions) != 1 {
		t.Fatalf("unexpected analysis %+v", out.Result)
	}
	if countFiles(t, dir) != 1 {
		t.Fatalf("expected raw upload to be stored")
	}

	latest, err := svc.Texts.Latest(ctx, "p1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ID != out.Version.ID {
		t.Fatalf("expected imported version to be latest")
	}
}

func TestImportRejectsUnsupportedAndEmpty(t *testing.T) {
	svc, dir := newTestService(t, texts.NewMemoryRepo())
	ctx := context.Background()

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	if _, err := svc.Import(ctx, "p1", "bild.png", strings.NewReader(string(png))); !errors.Is(err, extract.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if _, err := svc.Import(ctx, "p1", "leer.txt", strings.NewReader(" \n\t ")); !errors.Is(err, extract.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if countFiles(t, dir) != 0 {
		t.Fatalf("rejected uploads must not be stored")
	}
}

func TestImportRejectsMalformedPDF(t *testing.T) {
	svc, _ := newTestService(t, texts.NewMemoryRepo())
	_, err := svc.Import(context.Background(), "p1", "kaputt.pdf", strings.NewReader("%PDF-1.4\nnot really a pdf"))
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestImportEnforcesSizeLimit(t *testing.T) {
	svc, _ := newTestService(t, texts.NewMemoryRepo())
	svc.MaxUploadBytes = 8

	_, err := svc.Import(context.Background(), "p1", "lang.txt", strings.NewReader("Dieser Text ist zu lang."))
	if !errors.Is(err, ErrUploadTooLarge) {
		t.Fatalf("expected ErrUploadTooLarge, got %v", err)
	}
}

func TestImportValidatesInput(t *testing.T) {
	svc, _ := newTestService(t, texts.NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Import(ctx, " ", "a.txt", strings.NewReader("Hallo.")); !errors.Is(err, texts.ErrInvalidInput) {
		t.Fatalf("expected texts.ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Import(ctx, "p1", "  ", strings.NewReader("Hallo.")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestImportRollsBackStoredFileWhenSaveFails(t *testing.T) {
	svc, dir := newTestService(t, failingRepo{})

	if _, err := svc.Import(context.Background(), "p1", "notes.txt", strings.NewReader("Hallo Welt.")); err == nil {
		t.Fatalf("expected error")
	}
	if n := countFiles(t, dir); n != 0 {
		t.Fatalf("expected stored file to be removed, found %d", n)
	}
}

func TestImportStored(t *testing.T) {
	svc, _ := newTestService(t, texts.NewMemoryRepo())
	ctx := context.Background()

	obj, err := svc.Store.Save(ctx, "p1", "entwurf.md", strings.NewReader("# Titel\n\nEs ist eigentlich gut."))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := svc.ImportStored(ctx, "p1", obj.Key, "entwurf.md")
	if err != nil {
		t.Fatalf("import stored: %v", err)
	}
	if out.Version.StorageKey != obj.Key {
		t.Fatalf("expected storage key %s, got %s", obj.Key, out.Version.StorageKey)
	}
	if !strings.Contains(out.Version.Content, "eigentlich") {
		t.Fatalf("unexpected content %q", out.Version.Content)
	}

	if _, err := svc.ImportStored(ctx, "p2", obj.Key, "entwurf.md"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected foreign key to be rejected, got %v", err)
	}

	missing, err := object.NewKey("p1", "fehlt.txt")
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	if _, err := svc.ImportStored(ctx, "p1", missing, "fehlt.txt"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected object.ErrNotFound, got %v", err)
	}
}

func TestPresign(t *testing.T) {
	svc, _ := newTestService(t, texts.NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Presign(ctx, "p1", "a.pdf"); !errors.Is(err, ErrPresignUnsupported) {
		t.Fatalf("expected ErrPresignUnsupported, got %v", err)
	}

	presigner := &fakePresigner{}
	svc.Presigner = presigner
	out, err := svc.Presign(ctx, "p1", "Mein Text.pdf")
	if err != nil {
		t.Fatalf("presign: %v", err)
	}
	if out.Key != presigner.key || presigner.expires != presignExpires {
		t.Fatalf("unexpected presign call %+v", presigner)
	}
	if out.ExpiresInSeconds != 900 {
		t.Fatalf("expected 900s, got %d", out.ExpiresInSeconds)
	}
	if !strings.HasSuffix(out.Key, ".pdf") || !strings.HasPrefix(out.UploadURL, "https://uploads.example.com/") {
		t.Fatalf("unexpected presign output %+v", out)
	}
}
