package main

// Analyze a text from the command line:
//   go run ./cmd/readability -format text artikel.docx
//   cat artikel.txt | go run ./cmd/readability -format html > artikel.html
//   go run ./cmd/readability -repl

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"seotext-backend/internal/extract"
	"seotext-backend/readability/analyzer"
	"seotext-backend/readability/model"
	"seotext-backend/readability/render"
)

func main() {
	format := flag.String("format", "json", "output format: json, html or text")
	profilePath := flag.String("profile", "", "YAML file with highlight switches (optional)")
	disable := flag.String("disable", "", "comma-separated categories to switch off, e.g. fill-word,passive")
	repl := flag.Bool("repl", false, "start an interactive session")
	flag.Parse()

	cfg, err := buildConfig(*profilePath, *disable)
	if err != nil {
		exitErr(err.Error())
	}

	if *repl {
		runREPL(cfg)
		return
	}

	text, err := readInput(flag.Arg(0), os.Stdin)
	if err != nil {
		exitErr(err.Error())
	}

	result := analyzer.Analyze(text)
	if err := write(os.Stdout, *format, text, result, cfg); err != nil {
		exitErr(err.Error())
	}
}

func buildConfig(profilePath, disable string) (model.HighlightConfig, error) {
	cfg := model.AllHighlights()
	if strings.TrimSpace(profilePath) != "" {
		loaded, err := loadProfile(profilePath)
		if err != nil {
			return model.HighlightConfig{}, err
		}
		cfg = loaded
	}
	for _, raw := range strings.Split(disable, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		category, ok := model.ParseCategory(raw)
		if !ok {
			return model.HighlightConfig{}, fmt.Errorf("unknown category %q", raw)
		}
		cfg.Set(category, false)
	}
	return cfg, nil
}

// readInput reads path, extracting text from documents, or stdin when path is
// empty or "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	text, err := extract.ExtractTextFromBytes(context.Background(), data, "", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}

func write(w io.Writer, format, text string, result model.AnalysisResult, cfg model.HighlightConfig) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		return writeJSON(w, result)
	case "html":
		return writeHTML(w, render.Highlight(text, result, cfg))
	case "text":
		return writeSummary(w, result, cfg)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
