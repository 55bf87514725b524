package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", time.Second)
	client2 := NewHTTPClient("http://b", time.Second)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
	assert.Equal(t, "http://a", client1.BaseURL)
	assert.Equal(t, "http://b", client2.BaseURL)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient("http://a", 3*time.Second)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)

	noTimeout := NewHTTPClient("http://a", 0)
	assert.Zero(t, noTimeout.GetClient().Timeout)
}

func TestNewHTTPClient_UsesBaseURL(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/api/version/")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "/api/version/", gotPath)
	assert.Equal(t, "application/json", gotAccept)
}
