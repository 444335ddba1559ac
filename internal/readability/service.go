package readability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seotext-backend/internal/shared/metrics"
	"seotext-backend/internal/shared/telemetry"
	"seotext-backend/readability/analyzer"
	"seotext-backend/readability/model"
	"seotext-backend/readability/render"
)

// ErrTextTooLarge is returned when a text exceeds the configured byte limit.
var ErrTextTooLarge = errors.New("text too large")

// TextLoader resolves the newest saved text of a project.
type TextLoader interface {
	LatestContent(ctx context.Context, projectID string) (versionID, content string, err error)
}

// Report is an analysis together with its highlighted markup.
type Report struct {
	Result model.AnalysisResult `json:"result"`
	HTML   string               `json:"html"`
}

// ProjectReport is a Report of a project's saved text.
type ProjectReport struct {
	VersionID string `json:"versionId"`
	Report
}

// Service runs readability analysis and highlighting.
type Service struct {
	MaxTextBytes int
	Texts        TextLoader
}

// Analyze computes readability metrics and issues for text.
func (s *Service) Analyze(ctx context.Context, text string) (model.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return model.AnalysisResult{}, err
	}
	if s.MaxTextBytes > 0 && len(text) > s.MaxTextBytes {
		return model.AnalysisResult{}, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTextTooLarge, len(text), s.MaxTextBytes)
	}

	start := time.Now()
	result := analyzer.Analyze(text)
	metrics.IncAnalyses()
	metrics.ObserveAnalysisDurationMs(metrics.Since(start))
	return result, nil
}

// Highlight analyzes text and renders the enabled categories as markup.
func (s *Service) Highlight(ctx context.Context, text string, cfg model.HighlightConfig) (Report, error) {
	result, err := s.Analyze(ctx, text)
	if err != nil {
		return Report{}, err
	}
	html := render.Highlight(text, result, cfg)
	for category, n := range render.Counts(html) {
		metrics.AddHighlights(string(category), n)
	}
	return Report{Result: result, HTML: html}, nil
}

// AnalyzeProject reports on the newest saved text of a project.
func (s *Service) AnalyzeProject(ctx context.Context, projectID string, cfg model.HighlightConfig) (ProjectReport, error) {
	if s.Texts == nil {
		return ProjectReport{}, errors.New("text loader not configured")
	}
	versionID, content, err := s.Texts.LatestContent(ctx, projectID)
	if err != nil {
		return ProjectReport{}, err
	}
	report, err := s.Highlight(ctx, content, cfg)
	if err != nil {
		return ProjectReport{}, err
	}
	telemetry.Info("readability.project_analyzed", map[string]any{
		"project_id":   projectID,
		"version_id":   versionID,
		"flesch_score": report.Result.FleschScore,
		"words":        report.Result.Words,
	})
	return ProjectReport{VersionID: versionID, Report: report}, nil
}
