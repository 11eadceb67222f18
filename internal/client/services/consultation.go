package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/morikawa/riskadvisor/internal/client/api"
	"github.com/morikawa/riskadvisor/internal/client/models"
	"github.com/morikawa/riskadvisor/internal/common"
)

// AuthHeaderProvider supplies the Authorization header for the current
// session. The session controller implements it.
type AuthHeaderProvider interface {
	AuthHeader() (map[string]string, error)
}

// ConsultationService lists and searches past consultations and generates
// suggestions for a draft text.
type ConsultationService interface {
	List(ctx context.Context, params models.ConsultationSearchParams) ([]models.Consultation, error)
	Search(ctx context.Context, params models.ConsultationSearchParams) ([]models.Consultation, error)
	GenerateSuggestions(ctx context.Context, req models.AnalysisRequest) ([]models.ConsultationSuggestion, error)
}

type consultationService struct {
	client *api.Client
	auth   AuthHeaderProvider
}

// NewConsultationService constructs a ConsultationService. The credential
// is attached when one is held; otherwise requests go out without it and
// the backend decides.
func NewConsultationService(client *api.Client, auth AuthHeaderProvider) ConsultationService {
	return &consultationService{client: client, auth: auth}
}

// header resolves the auth header, treating "not authenticated" as an
// absent header rather than a failure.
func (s *consultationService) header() (map[string]string, error) {
	h, err := s.auth.AuthHeader()
	if err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			return nil, nil
		}
		return nil, err
	}
	return h, nil
}

func searchQuery(params models.ConsultationSearchParams) url.Values {
	q := url.Values{}
	if params.Keyword != "" {
		q.Set("keyword", params.Keyword)
	}
	if params.IndustryID != "" {
		q.Set("industry_id", params.IndustryID)
	}
	if params.AlcoholTypeID != "" {
		q.Set("alcohol_type_id", params.AlcoholTypeID)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	return q
}

func (s *consultationService) List(ctx context.Context, params models.ConsultationSearchParams) ([]models.Consultation, error) {
	header, err := s.header()
	if err != nil {
		return nil, err
	}

	path := "/api/consultations"
	if q := searchQuery(params); len(q) > 0 {
		path += "?" + q.Encode()
	}

	data, err := s.client.Do(ctx, api.Request{Path: path, Method: http.MethodGet, Header: header})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Consultations []models.Consultation `json:"consultations"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode consultations: %w", err)
	}
	return resp.Consultations, nil
}

func (s *consultationService) Search(ctx context.Context, params models.ConsultationSearchParams) ([]models.Consultation, error) {
	header, err := s.header()
	if err != nil {
		return nil, err
	}

	data, err := s.client.Do(ctx, api.Request{
		Path:   "/api/consultations/search?" + searchQuery(params).Encode(),
		Method: http.MethodGet,
		Header: header,
	})
	if err != nil {
		return nil, err
	}

	var consultations []models.Consultation
	if err := json.Unmarshal(data, &consultations); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return consultations, nil
}

// GenerateSuggestions posts the draft text as a multipart form, matching
// the backend's upload-style endpoint.
func (s *consultationService) GenerateSuggestions(ctx context.Context, req models.AnalysisRequest) ([]models.ConsultationSuggestion, error) {
	header, err := s.header()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("text", req.Text); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if req.IndustryID != "" {
		if err := w.WriteField("industry_id", req.IndustryID); err != nil {
			return nil, fmt.Errorf("failed to build form: %w", err)
		}
	}
	if req.AlcoholTypeID != "" {
		if err := w.WriteField("alcohol_type_id", req.AlcoholTypeID); err != nil {
			return nil, fmt.Errorf("failed to build form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	data, err := s.client.Do(ctx, api.Request{
		Path:        "/api/consultations/generate-suggestions",
		Method:      http.MethodPost,
		Header:      header,
		RawBody:     &buf,
		ContentType: w.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}

	var suggestions []models.ConsultationSuggestion
	if err := json.Unmarshal(data, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	return suggestions, nil
}
