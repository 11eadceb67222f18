package models

import "time"

// ConsultationStatus tracks where a consultation is in its workflow.
type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationAnalyzed  ConsultationStatus = "analyzed"
	ConsultationCompleted ConsultationStatus = "completed"
	ConsultationArchived  ConsultationStatus = "archived"
)

// Consultation is a past advisory case stored by the backend.
type Consultation struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Content       string             `json:"content"`
	IndustryID    string             `json:"industry_id,omitempty"`
	AlcoholTypeID string             `json:"alcohol_type_id,omitempty"`
	Status        ConsultationStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ConsultationSearchParams are the query parameters accepted by the
// consultation list and search endpoints. Zero values are omitted.
type ConsultationSearchParams struct {
	Keyword       string
	IndustryID    string
	AlcoholTypeID string
	Limit         int
	Offset        int
}

// ConsultationSuggestion is one generated suggestion for a draft text.
type ConsultationSuggestion struct {
	Suggestion string  `json:"suggestion"`
	Reasoning  string  `json:"reasoning"`
	Confidence float64 `json:"confidence"`
}
