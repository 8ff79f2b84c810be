package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It saves the config to path and scaffolds
// {content_dir}/data/site.json when none exists yet.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to labsite! Let's set up your lab homepage.")
	fmt.Println()

	// 1. Lab name.
	namePrompt := promptui.Prompt{
		Label:   "Lab name",
		Default: "Digital Systems Lab",
	}
	labName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("lab name: %w", err)
	}

	// 2. Short name for the brand mark.
	shortPrompt := promptui.Prompt{
		Label:   "Short name (brand mark)",
		Default: abbreviate(labName),
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("short name cannot be empty")
			}
			return nil
		},
	}
	shortName, err := shortPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("short name: %w", err)
	}

	// 3. Content directory.
	contentPrompt := promptui.Prompt{
		Label:   "Content directory (holds data/ and assets/)",
		Default: ".",
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: "public",
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 5. Carousel speed.
	intervalPrompt := promptui.Select{
		Label: "Hero carousel speed",
		Items: []string{
			"relaxed (8s per slide)",
			"normal (5s per slide)",
			"brisk (3s per slide)",
		},
		CursorPos: 1,
	}
	speedIdx, _, err := intervalPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("carousel speed: %w", err)
	}
	intervals := []string{"8s", "5s", "3s"}

	cfg := DefaultConfig()
	cfg.ContentDir = contentDir
	cfg.OutputDir = outputDir
	cfg.Carousel.Interval = intervals[speedIdx]

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("\nConfiguration saved to %s\n", path)

	created, err := scaffoldSite(contentDir, labName, shortName)
	if err != nil {
		return nil, err
	}
	if created != "" {
		fmt.Printf("Created %s\n", created)
	}
	return cfg, nil
}

// scaffoldSite writes a minimal data/site.json under contentDir unless
// one already exists. It returns the created path, or "" when skipped.
func scaffoldSite(contentDir, labName, shortName string) (string, error) {
	sitePath := filepath.Join(contentDir, "data", "site.json")
	if _, err := os.Stat(sitePath); err == nil {
		return "", nil
	}

	doc := map[string]any{
		"lab": map[string]any{
			"name":      labName,
			"shortName": shortName,
			"keywords":  []string{},
		},
		"hero":        map[string]any{"cta": []any{}, "stats": []any{}, "highlights": []any{}},
		"footerLinks": []any{},
		"contact":     map[string]any{"addressLines": []string{}, "email": "", "links": []any{}},
		"recruiting":  map[string]any{"title": "Join Us", "body": "", "items": []string{}},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding site.json: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(sitePath), 0o755); err != nil {
		return "", fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(sitePath, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", sitePath, err)
	}
	return sitePath, nil
}

// abbreviate builds a short brand mark from the capital initials of name,
// e.g. "Digital Systems Lab" -> "DSL".
func abbreviate(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "LAB"
	}
	return b.String()
}
