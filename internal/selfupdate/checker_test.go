package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name": "` + tag + `"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck_UpdateAvailable(t *testing.T) {
	server := releaseServer(t, "v1.2.0")
	checker := NewChecker(WithAPIBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	server := releaseServer(t, "v1.1.0")
	checker := NewChecker(WithAPIBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_NormalizesBareTags(t *testing.T) {
	server := releaseServer(t, "1.3.0")
	checker := NewChecker(WithAPIBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "1.2.9"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.3.0", result.LatestVersion)
}

func TestCheck_DevBuild(t *testing.T) {
	checker := NewChecker()
	_, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	checker := NewChecker(WithAPIBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
