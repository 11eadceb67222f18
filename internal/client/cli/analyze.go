package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/morikawa/riskadvisor/internal/client/models"
)

// Analyze reads a text from the terminal and prints the backend's risk
// assessment.
func (a *App) Analyze(ctx context.Context) {
	if !a.requireAuth() {
		return
	}

	text, err := GetMultiline(a.reader, "Enter the text to analyze", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if text == "" {
		fmt.Println("Nothing to analyze")
		return
	}

	result, err := a.analysis.AnalyzeText(ctx, models.AnalysisRequest{Text: text})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("Risk level: %s (score %.1f)\n", result.RiskLevel, result.Score)
	fmt.Println(result.Analysis)
	for _, rec := range result.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

// Extract uploads a local document and prints the text the backend pulled
// out of it.
func (a *App) Extract(ctx context.Context, path string) {
	if !a.requireAuth() {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	defer f.Close()

	result, err := a.analysis.ExtractText(ctx, filepath.Base(path), f)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("Extracted %d page(s):\n%s\n", result.Pages, result.Text)
}
