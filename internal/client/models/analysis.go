package models

// RiskLevel is the backend's overall verdict for an analyzed text.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// AnalysisRequest is the input for text analysis and suggestion generation.
type AnalysisRequest struct {
	Text          string `json:"text"`
	IndustryID    string `json:"industry_id,omitempty"`
	AlcoholTypeID string `json:"alcohol_type_id,omitempty"`
}

// AnalysisResult is the outcome of POST /api/analyze.
type AnalysisResult struct {
	Score           float64   `json:"score"`
	Analysis        string    `json:"analysis"`
	Recommendations []string  `json:"recommendations"`
	RiskLevel       RiskLevel `json:"risk_level"`
}

// ExtractTextResult is the text pulled out of an uploaded document.
type ExtractTextResult struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Pages      int     `json:"pages,omitempty"`
}
