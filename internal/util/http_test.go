package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte("hello"))
		case "/big":
			w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	b, err := GetBytes(ctx, srv.URL+"/ok", 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	_, err = GetBytes(ctx, srv.URL+"/big", 16)
	assert.Error(t, err)

	_, err = GetBytes(ctx, srv.URL+"/missing", 0)
	assert.Error(t, err)
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EnsureParentDir(dir+"/a/b/banner.png"))
	assert.DirExists(t, dir+"/a/b")
	assert.NoError(t, EnsureParentDir("banner.png"))
}
