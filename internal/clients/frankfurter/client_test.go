package frankfurter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/clients/frankfurter"
)

func TestFetchLatest_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "EUR", r.URL.Query().Get("from"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"amount":1.0,"base":"EUR","date":"2026-08-27","rates":{"USD":1.1,"GBP":0.85}}`))
	}))
	defer srv.Close()

	client := frankfurter.NewClient(frankfurter.WithBaseURL(srv.URL))
	got, err := client.FetchLatest(context.Background(), "EUR")
	require.NoError(t, err)

	assert.Equal(t, "EUR", got.Base)
	assert.Equal(t, "2026-08-27", got.Date)
	assert.Equal(t, "1.1", got.Rates["USD"].String())
	assert.Equal(t, "0.85", got.Rates["GBP"].String())
}

func TestFetchLatest_ProviderErrorSurfacesAsBadGateway(t *testing.T) {
	// The provider's own status must not leak through as ours.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such base", http.StatusNotFound)
	}))
	defer srv.Close()

	client := frankfurter.NewClient(frankfurter.WithBaseURL(srv.URL))
	_, err := client.FetchLatest(context.Background(), "EUR")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperrors.StatusCode(err))
	assert.Contains(t, err.Error(), "404")
}

func TestFetchLatest_TimeoutSurfacesAsGatewayTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	client := frankfurter.NewClient(
		frankfurter.WithBaseURL(srv.URL),
		frankfurter.WithHTTPClient(&http.Client{Timeout: 5 * time.Millisecond}),
	)
	_, err := client.FetchLatest(context.Background(), "EUR")
	require.Error(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, apperrors.StatusCode(err))
}

func TestFetchLatest_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"EUR"}`))
	}))
	defer srv.Close()

	client := frankfurter.NewClient(frankfurter.WithBaseURL(srv.URL))
	_, err := client.FetchLatest(context.Background(), "EUR")
	assert.Error(t, err)
}

func TestFetchLatest_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := frankfurter.NewClient(frankfurter.WithBaseURL(srv.URL))
	_, err := client.FetchLatest(ctx, "EUR")
	assert.Error(t, err)
}
