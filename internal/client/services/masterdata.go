// Package services contains application services for the riskadvisor
// client: master-data lookups, consultation search and suggestion
// generation, and text analysis. Each service is a thin layer over the
// API client; session state stays in the session controller.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/morikawa/riskadvisor/internal/client/api"
	"github.com/morikawa/riskadvisor/internal/client/models"
)

// MasterDataService reads the reference lists used to classify texts.
// These endpoints return plain JSON with no envelope and need no
// credential; they share the API client's timeout and error
// classification.
type MasterDataService interface {
	Industries(ctx context.Context) ([]models.MasterDataItem, error)
	AlcoholTypes(ctx context.Context) ([]models.MasterDataItem, error)
}

type masterDataService struct {
	client *api.Client
}

// NewMasterDataService constructs a MasterDataService over the API client.
func NewMasterDataService(client *api.Client) MasterDataService {
	return &masterDataService{client: client}
}

func (s *masterDataService) Industries(ctx context.Context) ([]models.MasterDataItem, error) {
	data, err := s.client.DoRaw(ctx, api.Request{
		Path:   "/api/master/industries",
		Method: http.MethodGet,
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Industries []models.Industry `json:"industries"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode industries: %w", err)
	}

	items := make([]models.MasterDataItem, 0, len(resp.Industries))
	for _, in := range resp.Industries {
		items = append(items, models.MasterDataItemFromIndustry(in))
	}
	return items, nil
}

func (s *masterDataService) AlcoholTypes(ctx context.Context) ([]models.MasterDataItem, error) {
	data, err := s.client.DoRaw(ctx, api.Request{
		Path:   "/api/master/alcohol-types",
		Method: http.MethodGet,
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		AlcoholTypes []models.AlcoholType `json:"alcohol_types"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode alcohol types: %w", err)
	}

	items := make([]models.MasterDataItem, 0, len(resp.AlcoholTypes))
	for _, at := range resp.AlcoholTypes {
		items = append(items, models.MasterDataItemFromAlcoholType(at))
	}
	return items, nil
}
