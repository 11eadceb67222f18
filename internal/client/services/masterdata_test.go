package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morikawa/riskadvisor/internal/client/api"
	"github.com/morikawa/riskadvisor/internal/client/models"
	"github.com/morikawa/riskadvisor/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return api.New(srv.URL, 5*time.Second, logger)
}

// fakeAuth implements AuthHeaderProvider for service tests.
type fakeAuth struct {
	header map[string]string
	err    error
}

func (f *fakeAuth) AuthHeader() (map[string]string, error) {
	return f.header, f.err
}

func TestMasterData_Industries(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/master/industries", r.URL.Path)
		// Raw JSON, no envelope.
		_, _ = w.Write([]byte(`{"industries":[
			{"category_id":"i1","category_code":"RETAIL","category_name":"Retail","description":"shops","is_default":1,"sort_order":1},
			{"category_id":"i2","category_code":"FOOD","category_name":"Food service","is_default":0,"sort_order":2}
		]}`))
	}))

	svc := NewMasterDataService(client)
	items, err := svc.Industries(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, models.MasterDataItem{ID: "i1", Name: "Retail", Description: "shops"}, items[0])
	assert.Equal(t, models.MasterDataItem{ID: "i2", Name: "Food service"}, items[1])
}

func TestMasterData_AlcoholTypes(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/master/alcohol-types", r.URL.Path)
		_, _ = w.Write([]byte(`{"alcohol_types":[
			{"type_id":"a1","type_code":"BEER","type_name":"Beer","sort_order":1}
		]}`))
	}))

	svc := NewMasterDataService(client)
	items, err := svc.AlcoholTypes(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, "Beer", items[0].Name)
}

func TestMasterData_EmptyList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"industries":[]}`))
	}))

	svc := NewMasterDataService(client)
	items, err := svc.Industries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMasterData_TransportErrorClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	client := api.New(srv.URL, time.Second, logger)

	svc := NewMasterDataService(client)
	_, err := svc.Industries(context.Background())
	assert.Equal(t, api.CodeNetwork, api.CodeOf(err))
}
