package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hajjhub/pkg/models"
)

func TestListAdvertisements_Unfiltered(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/advertisements", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]models.Advertisement](t, w), 4)
}

func TestListAdvertisements_LocationFilter(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/advertisements?location=homepage", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	ads := decodeBody[[]models.Advertisement](t, w)
	require.Len(t, ads, 1)
	assert.Equal(t, "homepage", ads[0].Location)
	assert.True(t, ads[0].IsActive)
}

func TestToggleAdvertisement_RequiresAdmin(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "PATCH", "/api/advertisements/4/toggle", map[string]any{"isActive": false}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, "PATCH", "/api/advertisements/4/toggle", map[string]any{"isActive": false}, userHeader(t, 1, "pilgrim"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestToggleAdvertisement_BadBody(t *testing.T) {
	r, _ := newTestRouter()

	// string instead of boolean
	w := doJSON(t, r, "PATCH", "/api/advertisements/4/toggle", map[string]any{"isActive": "yes"}, adminHeader(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing field
	w = doJSON(t, r, "PATCH", "/api/advertisements/4/toggle", map[string]any{}, adminHeader(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleAdvertisement_NotFound(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "PATCH", "/api/advertisements/999/toggle", map[string]any{"isActive": false}, adminHeader(t))
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody[map[string]string](t, w)
	assert.NotEmpty(t, body["message"])
}

func TestToggleAdvertisement_RoundTrip(t *testing.T) {
	r, _ := newTestRouter()
	headers := adminHeader(t)

	// deactivate the homepage ad
	w := doJSON(t, r, "PATCH", "/api/advertisements/4/toggle", map[string]any{"isActive": false}, headers)
	assert.Equal(t, http.StatusOK, w.Code)
	ad := decodeBody[models.Advertisement](t, w)
	assert.False(t, ad.IsActive)

	// gone from the filtered listing
	w = doJSON(t, r, "GET", "/api/advertisements?location=homepage", nil, nil)
	assert.Empty(t, decodeBody[[]models.Advertisement](t, w))

	// still in the unfiltered listing
	w = doJSON(t, r, "GET", "/api/advertisements", nil, nil)
	assert.Len(t, decodeBody[[]models.Advertisement](t, w), 4)

	// reactivate restores it
	w = doJSON(t, r, "PATCH", "/api/advertisements/4/toggle", map[string]any{"isActive": true}, headers)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "GET", "/api/advertisements?location=homepage", nil, nil)
	assert.Len(t, decodeBody[[]models.Advertisement](t, w), 1)
}
