package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/morikawa/riskadvisor/internal/client/api"
	"github.com/morikawa/riskadvisor/internal/client/models"
	"github.com/morikawa/riskadvisor/internal/common"
)

// AnalysisService runs risk analysis on a text and extracts text from an
// uploaded document. The analysis itself is owned by the backend; the
// client only transports requests and results.
type AnalysisService interface {
	AnalyzeText(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
	ExtractText(ctx context.Context, filename string, r io.Reader) (*models.ExtractTextResult, error)
}

type analysisService struct {
	client *api.Client
	auth   AuthHeaderProvider
}

func NewAnalysisService(client *api.Client, auth AuthHeaderProvider) AnalysisService {
	return &analysisService{client: client, auth: auth}
}

func (s *analysisService) header() (map[string]string, error) {
	h, err := s.auth.AuthHeader()
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			return nil, nil
		}
		return nil, err
	}
	return h, nil
}

func (s *analysisService) AnalyzeText(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	header, err := s.header()
	if err != nil {
		return nil, err
	}

	data, err := s.client.Do(ctx, api.Request{
		Path:   "/api/analyze",
		Method: http.MethodPost,
		Header: header,
		Body:   req,
	})
	if err != nil {
		return nil, err
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis result: %w", err)
	}
	return &result, nil
}

// ExtractText uploads a document as a multipart form and returns the text
// the backend pulled out of it.
func (s *analysisService) ExtractText(ctx context.Context, filename string, r io.Reader) (*models.ExtractTextResult, error) {
	header, err := s.header()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("files[]", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	data, err := s.client.Do(ctx, api.Request{
		Path:        "/api/extract_text",
		Method:      http.MethodPost,
		Header:      header,
		RawBody:     &buf,
		ContentType: w.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		ExtractedText string            `json:"extractedText"`
		Files         []json.RawMessage `json:"files"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode extraction result: %w", err)
	}

	pages := len(resp.Files)
	if pages == 0 {
		pages = 1
	}
	// Confidence is not reported by the backend; 1.0 is the declared default.
	return &models.ExtractTextResult{Text: resp.ExtractedText, Confidence: 1.0, Pages: pages}, nil
}
