package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hajjhub/pkg/models"
)

func TestListHajjGuides_SeededOrder(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/hajj-guides", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	guides := decodeBody[[]models.HajjGuide](t, w)
	require.Len(t, guides, 2)
	assert.Equal(t, "Preparations before Hajj", guides[0].Title)
	assert.Equal(t, "Ihram and its requirements", guides[1].Title)
}

func TestGetHajjGuide_ByID(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/hajj-guides/1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	guide := decodeBody[models.HajjGuide](t, w)
	assert.Equal(t, 1, guide.ID)
	assert.NotEmpty(t, guide.TitleAr)
	assert.NotEmpty(t, guide.Content.Sections)
}

func TestListUmrahGuides_SortedByOrder(t *testing.T) {
	r, st := newTestRouter()
	st.CreateUmrahGuide(models.InsertUmrahGuide{Title: "Appendix", Order: 0})

	w := doJSON(t, r, "GET", "/api/umrah-guides", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	guides := decodeBody[[]models.UmrahGuide](t, w)
	require.Len(t, guides, 5)
	assert.Equal(t, "Appendix", guides[0].Title)
	for i := 1; i < len(guides); i++ {
		assert.LessOrEqual(t, guides[i-1].Order, guides[i].Order)
	}
}

func TestSingleEntityEndpoints_NotFound(t *testing.T) {
	r, _ := newTestRouter()

	paths := []string{
		"/api/hajj-guides/999",
		"/api/umrah-guides/999",
		"/api/masjid-guides/999",
		"/api/duas/999",
		"/api/scholars/999",
	}
	for _, path := range paths {
		w := doJSON(t, r, "GET", path, nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		body := decodeBody[map[string]string](t, w)
		assert.NotEmpty(t, body["message"], path)
	}
}

func TestSingleEntityEndpoints_NonNumericID(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/hajj-guides/abc", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMasjidGuides_CategoryFilter(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/masjid-guides?category=Sacred+Area", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	guides := decodeBody[[]models.MasjidGuide](t, w)
	require.Len(t, guides, 1)
	assert.Equal(t, "Rawdah (Garden of Paradise)", guides[0].Title)

	// unknown category filters to an empty array, not an error
	w = doJSON(t, r, "GET", "/api/masjid-guides?category=Nope", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[[]models.MasjidGuide](t, w))
}

func TestListMasjidGuides_Unfiltered(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/masjid-guides", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]models.MasjidGuide](t, w), 3)
}

func TestListDuas_CategoryFilter(t *testing.T) {
	r, st := newTestRouter()
	st.CreateDua(models.InsertDua{Title: "Travel dua", Category: "Travel", Tags: []string{"Travel"}})

	w := doJSON(t, r, "GET", "/api/duas?category=Travel", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	duas := decodeBody[[]models.Dua](t, w)
	require.Len(t, duas, 1)
	assert.Equal(t, "Travel dua", duas[0].Title)
}

func TestGetDua_ByID(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/duas/1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	dua := decodeBody[models.Dua](t, w)
	assert.Equal(t, "Dua for Entering Ihram", dua.Title)
	assert.NotEmpty(t, dua.ArabicText)
	assert.NotEmpty(t, dua.Tags)
}

func TestScholars_ListAndGet(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/scholars", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	scholars := decodeBody[[]models.Scholar](t, w)
	require.Len(t, scholars, 3)

	w = doJSON(t, r, "GET", "/api/scholars/2", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	scholar := decodeBody[models.Scholar](t, w)
	assert.Equal(t, "Sheikh Muhammad ibn al Uthaymeen", scholar.Name)
}
