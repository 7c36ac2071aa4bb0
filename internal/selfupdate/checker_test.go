package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/GRCJP/assurit-test-simulator-sub000/releases/latest" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"tag_name": %q}`, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tag with prefix", "v1.2.3", "v1.2.3"},
		{"bare version", "1.2.3", "v1.2.3"},
		{"short version canonicalized", "v1.2", "v1.2.0"},
		{"dev build", "(devel)", ""},
		{"empty", "", ""},
		{"garbage", "latest", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeVersion(tt.input))
		})
	}
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.3.0")
	checker := NewChecker(WithAPIBaseURL(srv.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.3.0", result.LatestVersion)
	assert.Equal(t, "v1.2.0", result.CurrentVersion)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	checker := NewChecker(WithAPIBaseURL(srv.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_NewerLocalBuild(t *testing.T) {
	srv := releaseServer(t, "v1.1.0")
	checker := NewChecker(WithAPIBaseURL(srv.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable, "a local build ahead of the release is not an update")
}

func TestCheck_DevBuild(t *testing.T) {
	checker := NewChecker()

	_, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_BadTag(t *testing.T) {
	srv := releaseServer(t, "nightly")
	checker := NewChecker(WithAPIBaseURL(srv.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.ErrorIs(t, err, ErrBadVersion)
}

func TestCheck_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)
	checker := NewChecker(WithAPIBaseURL(srv.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
