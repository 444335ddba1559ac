package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seotext-backend/readability/analyzer"
	"seotext-backend/readability/model"
)

func TestParseProfileKeepsMissingKeysOn(t *testing.T) {
	cfg, err := parseProfile([]byte("fill_words: false\npassive_voice: false\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := model.AllHighlights()
	want.FillWords = false
	want.PassiveVoice = false
	if cfg != want {
		t.Fatalf("unexpected config %+v", cfg)
	}

	cfg, err = parseProfile(nil)
	if err != nil || cfg != model.AllHighlights() {
		t.Fatalf("expected all on for empty profile, got %+v %v", cfg, err)
	}
}

func TestParseProfileRejectsUnknownKeys(t *testing.T) {
	if _, err := parseProfile([]byte("fillwords: false\n")); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestBuildConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("complex_words: false\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	cfg, err := buildConfig(path, "fill-word, passive")
	if err != nil {
		t.Fatalf("build config: %v", err)
	}
	if cfg.ComplexWords || cfg.FillWords || cfg.PassiveVoice || !cfg.LongSentences || !cfg.VeryLongSentences {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if _, err := buildConfig("", "fill-words"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestReadInput(t *testing.T) {
	text, err := readInput("", strings.NewReader("Von stdin."))
	if err != nil || text != "Von stdin." {
		t.Fatalf("unexpected stdin read %q %v", text, err)
	}

	path := filepath.Join(t.TempDir(), "text.md")
	if err := os.WriteFile(path, []byte("Zeile eins.\r\nZeile zwei."), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, err = readInput(path, nil)
	if err != nil || text != "Zeile eins.\nZeile zwei." {
		t.Fatalf("unexpected file read %q %v", text, err)
	}
}

func TestWriteFormats(t *testing.T) {
	text := "Das Haus wird gebaut."
	result := analyzer.Analyze(text)
	cfg := model.AllHighlights()

	var buf bytes.Buffer
	if err := write(&buf, "json", text, result, cfg); err != nil {
		t.Fatalf("json: %v", err)
	}
	var decoded model.AnalysisResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json output: %v", err)
	}
	if decoded.Words != result.Words {
		t.Fatalf("expected %d words, got %d", result.Words, decoded.Words)
	}

	buf.Reset()
	if err := write(&buf, "html", text, result, cfg); err != nil {
		t.Fatalf("html: %v", err)
	}
	if !strings.Contains(buf.String(), `data-category="passive"`) || !strings.HasPrefix(buf.String(), "<!DOCTYPE html>") {
		t.Fatalf("unexpected html output %s", buf.String())
	}

	buf.Reset()
	cfg.FillWords = false
	if err := write(&buf, "text", text, result, cfg); err != nil {
		t.Fatalf("text: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "passive:") || strings.Contains(out, "fill-word:") {
		t.Fatalf("unexpected summary %s", out)
	}

	if err := write(&buf, "xml", text, result, cfg); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
