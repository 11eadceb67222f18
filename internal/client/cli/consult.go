package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/morikawa/riskadvisor/internal/client/models"
)

func printConsultations(consultations []models.Consultation) {
	if len(consultations) == 0 {
		fmt.Println("(no consultations)")
		return
	}
	for _, c := range consultations {
		fmt.Printf("  [%s] %s (%s)\n", c.ID, c.Title, c.Status)
	}
}

// Consultations lists recent consultations, optionally filtered by keyword.
func (a *App) Consultations(ctx context.Context, keyword string) {
	if !a.requireAuth() {
		return
	}

	consultations, err := a.consultations.List(ctx, models.ConsultationSearchParams{Keyword: keyword})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	printConsultations(consultations)
}

func (a *App) SearchConsultations(ctx context.Context, keyword string) {
	if !a.requireAuth() {
		return
	}

	consultations, err := a.consultations.Search(ctx, models.ConsultationSearchParams{Keyword: keyword})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	printConsultations(consultations)
}

// Suggest reads a draft text and asks the backend for improvement
// suggestions.
func (a *App) Suggest(ctx context.Context) {
	if !a.requireAuth() {
		return
	}

	text, err := GetMultiline(a.reader, "Enter the text to review", os.Stdout)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if text == "" {
		fmt.Println("Nothing to review")
		return
	}

	suggestions, err := a.consultations.GenerateSuggestions(ctx, models.AnalysisRequest{Text: text})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if len(suggestions) == 0 {
		fmt.Println("(no suggestions)")
		return
	}
	for i, s := range suggestions {
		fmt.Printf("%d. %s\n   reasoning: %s (confidence %.2f)\n", i+1, s.Suggestion, s.Reasoning, s.Confidence)
	}
}
