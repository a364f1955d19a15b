package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"hajjhub/internal/auth"
	"hajjhub/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSecret = []byte("test-secret")

// newTestRouter wires a fresh seeded store into a bare router. No
// bookmarks DB and no live hub; those get their own setups.
func newTestRouter() (*gin.Engine, *store.MemStorage) {
	st := store.NewMemStorage()
	r := gin.New()
	SetupRoutes(r, Deps{
		Store:       st,
		JWTSecret:   testSecret,
		AdminEmails: map[string]bool{"admin@example.com": true},
	})
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func adminHeader(t *testing.T) map[string]string {
	t.Helper()
	token, err := auth.SignToken(testSecret, 1, "admin", true, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func userHeader(t *testing.T, userID int, username string) map[string]string {
	t.Helper()
	token, err := auth.SignToken(testSecret, userID, username, false, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}
