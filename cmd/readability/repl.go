package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"seotext-backend/readability/analyzer"
	"seotext-backend/readability/model"
)

type session struct {
	cfg model.HighlightConfig
}

func runREPL(cfg model.HighlightConfig) {
	fmt.Println("Lesbarkeit REPL")
	fmt.Println()
	printHelp()
	fmt.Println()

	s := &session{cfg: cfg}
	p := prompt.New(
		s.executor,
		s.completer,
		prompt.OptionPrefix("lesbarkeit >> "),
		prompt.OptionTitle("readability"),
	)
	p.Run()
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  <text>              - Analyze the entered text")
	fmt.Println("  :on <category>      - Enable a highlight category")
	fmt.Println("  :off <category>     - Disable a highlight category")
	fmt.Println("  :config             - Show enabled categories")
	fmt.Println("  :help               - Show this help")
	fmt.Println("  :quit               - Exit")
}

func (s *session) executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}
	if !strings.HasPrefix(input, ":") {
		if err := writeSummary(os.Stdout, analyzer.Analyze(input), s.cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	parts := strings.Fields(input)
	switch parts[0] {
	case ":on", ":off":
		if len(parts) != 2 {
			fmt.Printf("Usage: %s <category>\n", parts[0])
			return
		}
		category, ok := model.ParseCategory(parts[1])
		if !ok {
			fmt.Printf("Unknown category: %s\n", parts[1])
			return
		}
		s.cfg.Set(category, parts[0] == ":on")
	case ":config":
		for _, c := range model.Categories {
			fmt.Printf("  %-20s %v\n", c, s.cfg.Enabled(c))
		}
	case ":help":
		printHelp()
	case ":quit", ":exit":
		fmt.Println("Tschüss!")
		os.Exit(0)
	default:
		fmt.Printf("Unknown command: %s\n", parts[0])
	}
}

func (s *session) completer(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	if !strings.HasPrefix(before, ":") {
		return nil
	}
	if strings.HasPrefix(before, ":on ") || strings.HasPrefix(before, ":off ") {
		suggestions := make([]prompt.Suggest, 0, len(model.Categories))
		for _, c := range model.Categories {
			suggestions = append(suggestions, prompt.Suggest{Text: string(c)})
		}
		return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
	}
	commands := []prompt.Suggest{
		{Text: ":on", Description: "Enable a category"},
		{Text: ":off", Description: "Disable a category"},
		{Text: ":config", Description: "Show enabled categories"},
		{Text: ":help", Description: "Show help"},
		{Text: ":quit", Description: "Exit"},
	}
	return prompt.FilterHasPrefix(commands, d.GetWordBeforeCursor(), true)
}
