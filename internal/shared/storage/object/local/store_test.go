package local

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"seotext-backend/internal/shared/storage/object"
)

func TestSaveOpenDelete(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	obj, err := store.Save(ctx, "project-1", "entwurf.txt", strings.NewReader("Das ist ein Text."))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if obj.SizeBytes != 17 {
		t.Fatalf("expected 17 bytes, got %d", obj.SizeBytes)
	}
	if !strings.HasPrefix(obj.ContentType, "text/plain") {
		t.Fatalf("unexpected content type %q", obj.ContentType)
	}
	if !strings.HasSuffix(obj.Key, "_entwurf.txt") {
		t.Fatalf("unexpected key %q", obj.Key)
	}

	rc, err := store.Open(ctx, obj.Key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(data) != "Das ist ein Text." {
		t.Fatalf("unexpected content %q", data)
	}

	if err := store.Delete(ctx, obj.Key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Open(ctx, obj.Key); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Open(context.Background(), "../secret"); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
}

func TestSaveRejectsBadFileName(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Save(context.Background(), "p", "../x.txt", strings.NewReader("x")); err == nil {
		t.Fatalf("expected error for traversal file name")
	}
}

func TestSaveHonorsCancelledContext(t *testing.T) {
	store := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Save(ctx, "p", "a.txt", strings.NewReader("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
