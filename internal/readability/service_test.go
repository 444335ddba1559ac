package readability

import (
	"context"
	"errors"
	"strings"
	"testing"

	"seotext-backend/internal/texts"
	"seotext-backend/readability/analyzer"
	"seotext-backend/readability/model"
	"seotext-backend/readability/render"
)

type stubLoader struct {
	versionID string
	content   string
	err       error
}

func (s stubLoader) LatestContent(ctx context.Context, projectID string) (string, string, error) {
	return s.versionID, s.content, s.err
}

func TestServiceAnalyzeMatchesAnalyzer(t *testing.T) {
	svc := &Service{MaxTextBytes: 1024}
	text := "Das Haus wird gebaut. Es ist eigentlich ganz einfach."

	got, err := svc.Analyze(context.Background(), text)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := analyzer.Analyze(text)
	if got.FleschScore != want.FleschScore || got.Words != want.Words || len(got.FillWords) != len(want.FillWords) {
		t.Fatalf("service result differs from analyzer: %+v vs %+v", got, want)
	}
}

func TestServiceAnalyzeRejectsLargeText(t *testing.T) {
	svc := &Service{MaxTextBytes: 10}
	if _, err := svc.Analyze(context.Background(), strings.Repeat("a", 11)); !errors.Is(err, ErrTextTooLarge) {
		t.Fatalf("expected ErrTextTooLarge, got %v", err)
	}
	if _, err := svc.Analyze(context.Background(), strings.Repeat("a", 10)); err != nil {
		t.Fatalf("text at the limit must pass: %v", err)
	}
}

func TestServiceHighlightHonorsConfig(t *testing.T) {
	svc := &Service{}
	text := "Das ist halt so."

	report, err := svc.Highlight(context.Background(), text, model.HighlightConfig{})
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if report.HTML != text {
		t.Fatalf("expected unmarked text, got %s", report.HTML)
	}
	if len(report.Result.FillWords) != 1 {
		t.Fatalf("analysis must not depend on highlight config, got %+v", report.Result.FillWords)
	}

	report, err = svc.Highlight(context.Background(), text, model.AllHighlights())
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if render.Counts(report.HTML)[model.CategoryFillWord] != 1 {
		t.Fatalf("expected one fill-word marker, got %s", report.HTML)
	}
}

func TestServiceAnalyzeProject(t *testing.T) {
	svc := &Service{Texts: stubLoader{versionID: "v-7", content: "Es wird."}}

	report, err := svc.AnalyzeProject(context.Background(), "blog", model.AllHighlights())
	if err != nil {
		t.Fatalf("AnalyzeProject: %v", err)
	}
	if report.VersionID != "v-7" || report.Result.Words != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
	if !strings.Contains(report.HTML, `data-category="passive"`) {
		t.Fatalf("expected passive marker, got %s", report.HTML)
	}

	svc.Texts = stubLoader{err: texts.ErrNotFound}
	if _, err := svc.AnalyzeProject(context.Background(), "blog", model.AllHighlights()); !errors.Is(err, texts.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags(map[string][]string{
		"fillWords": {"false"},
		"disable":   {"passive, complex-word"},
	})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	want := model.HighlightConfig{VeryLongSentences: true, LongSentences: true}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}

	if _, err := ParseFlags(map[string][]string{"fillWords": {"vielleicht"}}); err == nil {
		t.Fatalf("expected error for non-boolean flag")
	}
	if _, err := ParseFlags(map[string][]string{"disable": {"adverbs"}}); err == nil {
		t.Fatalf("expected error for unknown category")
	}

	all, err := ParseFlags(nil)
	if err != nil || all != model.AllHighlights() {
		t.Fatalf("expected all categories by default, got %+v %v", all, err)
	}
}
