package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hajjhub/pkg/models"
)

func TestSeededContent(t *testing.T) {
	s := NewMemStorage()

	hajj := s.GetHajjGuides()
	require.Len(t, hajj, 2)
	assert.Equal(t, "Preparations before Hajj", hajj[0].Title)
	assert.Equal(t, "Ihram and its requirements", hajj[1].Title)

	assert.Len(t, s.GetUmrahGuides(), 4)
	assert.Len(t, s.GetMasjidGuides(), 3)
	assert.Len(t, s.GetDuas(), 3)
	assert.Len(t, s.GetScholars(), 3)
	assert.Len(t, s.GetAdvertisements(), 4)
}

func TestSeededBilingualFieldsPresent(t *testing.T) {
	s := NewMemStorage()
	for _, g := range s.GetHajjGuides() {
		assert.NotEmpty(t, g.Title)
		assert.NotEmpty(t, g.TitleAr)
		assert.NotEmpty(t, g.Description)
		assert.NotEmpty(t, g.DescriptionAr)
		assert.NotEmpty(t, g.Content.Sections)
		assert.NotEmpty(t, g.ContentAr.Sections)
	}
	for _, d := range s.GetDuas() {
		assert.NotEmpty(t, d.Translation)
		assert.NotEmpty(t, d.TranslationAr)
		assert.NotEmpty(t, d.ArabicText)
	}
}

func TestCreateThenGetByID(t *testing.T) {
	s := NewMemStorage()

	guide := s.CreateHajjGuide(models.InsertHajjGuide{
		Title:   "Day of Arafah",
		TitleAr: "يوم عرفة",
		Order:   3,
	})
	// seed holds ids 1 and 2
	assert.Equal(t, 3, guide.ID)

	got := s.GetHajjGuide(guide.ID)
	require.NotNil(t, got)
	assert.Equal(t, guide, *got)

	sc := s.CreateScholar(models.InsertScholar{Name: "Test Scholar", Expertise: []string{"Fiqh"}})
	assert.Equal(t, 4, sc.ID)
	require.NotNil(t, s.GetScholar(sc.ID))

	dua := s.CreateDua(models.InsertDua{Title: "Morning dua", Category: "Daily"})
	assert.Equal(t, 4, dua.ID)
	require.NotNil(t, s.GetDua(dua.ID))

	ad := s.CreateAdvertisement(models.InsertAdvertisement{Title: "New ad", Location: "footer", IsActive: true})
	assert.Equal(t, 5, ad.ID)
	require.NotNil(t, s.ToggleAdvertisement(ad.ID, false))
}

func TestCreateThenGetByID_RemainingKinds(t *testing.T) {
	s := NewMemStorage()

	umrah := s.CreateUmrahGuide(models.InsertUmrahGuide{Title: "Farewell", Order: 5})
	got := s.GetUmrahGuide(umrah.ID)
	require.NotNil(t, got)
	assert.Equal(t, umrah, *got)

	masjid := s.CreateMasjidGuide(models.InsertMasjidGuide{Title: "Quba", Category: "Nearby"})
	gotMasjid := s.GetMasjidGuide(masjid.ID)
	require.NotNil(t, gotMasjid)
	assert.Equal(t, masjid, *gotMasjid)

	u := s.CreateUser(models.InsertUser{Username: "pilgrim", Password: "x", Email: "p@example.com", Language: "en"})
	gotUser := s.GetUser(u.ID)
	require.NotNil(t, gotUser)
	assert.Equal(t, u, *gotUser)
	assert.NotNil(t, gotUser.Progress)
}

func TestGetByIDAbsent(t *testing.T) {
	s := NewMemStorage()
	assert.Nil(t, s.GetHajjGuide(999))
	assert.Nil(t, s.GetUmrahGuide(999))
	assert.Nil(t, s.GetMasjidGuide(999))
	assert.Nil(t, s.GetDua(999))
	assert.Nil(t, s.GetScholar(999))
	assert.Nil(t, s.GetUser(999))
}

func TestGuideListingSortedByOrder(t *testing.T) {
	s := NewMemStorage()

	// insert out of order: the later guide has the smaller order value
	s.CreateUmrahGuide(models.InsertUmrahGuide{Title: "late", Order: 10})
	first := s.CreateUmrahGuide(models.InsertUmrahGuide{Title: "early", Order: 0})

	guides := s.GetUmrahGuides()
	require.NotEmpty(t, guides)
	assert.Equal(t, first.ID, guides[0].ID)
	for i := 1; i < len(guides); i++ {
		assert.LessOrEqual(t, guides[i-1].Order, guides[i].Order)
	}
}

func TestGuideOrderTiesBrokenByInsertion(t *testing.T) {
	s := NewMemStorage()
	a := s.CreateHajjGuide(models.InsertHajjGuide{Title: "first of tie", Order: 7})
	b := s.CreateHajjGuide(models.InsertHajjGuide{Title: "second of tie", Order: 7})

	guides := s.GetHajjGuides()
	var ties []int
	for _, g := range guides {
		if g.Order == 7 {
			ties = append(ties, g.ID)
		}
	}
	assert.Equal(t, []int{a.ID, b.ID}, ties)
}

func TestFilterMatchesPredicate(t *testing.T) {
	s := NewMemStorage()
	s.CreateMasjidGuide(models.InsertMasjidGuide{Title: "Library", Category: "Sacred Area"})

	var want []models.MasjidGuide
	for _, g := range s.GetMasjidGuides() {
		if g.Category == "Sacred Area" {
			want = append(want, g)
		}
	}
	assert.Equal(t, want, s.GetMasjidGuidesByCategory("Sacred Area"))

	var wantDuas []models.Dua
	for _, d := range s.GetDuas() {
		if d.Category == "Hajj & Umrah" {
			wantDuas = append(wantDuas, d)
		}
	}
	assert.Equal(t, wantDuas, s.GetDuasByCategory("Hajj & Umrah"))

	assert.Empty(t, s.GetDuasByCategory("no-such-category"))
}

func TestUserProgressMergeAccumulates(t *testing.T) {
	s := NewMemStorage()
	u := s.CreateUser(models.InsertUser{Username: "pilgrim", Password: "x", Email: "p@example.com", Language: "en"})

	require.NotNil(t, s.UpdateUserProgress(u.ID, map[string]any{"hajj": float64(50)}))
	updated := s.UpdateUserProgress(u.ID, map[string]any{"umrah": float64(30)})
	require.NotNil(t, updated)
	assert.Equal(t, map[string]any{"hajj": float64(50), "umrah": float64(30)}, updated.Progress)

	// overwrite keeps the other key
	updated = s.UpdateUserProgress(u.ID, map[string]any{"hajj": float64(75)})
	require.NotNil(t, updated)
	assert.Equal(t, map[string]any{"hajj": float64(75), "umrah": float64(30)}, updated.Progress)
}

func TestUserProgressAbsentUser(t *testing.T) {
	s := NewMemStorage()
	assert.Nil(t, s.UpdateUserProgress(42, map[string]any{"hajj": float64(1)}))
}

func TestGetUserByUsername(t *testing.T) {
	s := NewMemStorage()
	u := s.CreateUser(models.InsertUser{Username: "pilgrim", Password: "x", Email: "p@example.com"})

	got := s.GetUserByUsername("pilgrim")
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Nil(t, s.GetUserByUsername("nobody"))
}

func TestToggleAdvertisementAffectsLocationFilter(t *testing.T) {
	s := NewMemStorage()

	homepage := s.GetAdvertisementsByLocation("homepage")
	require.Len(t, homepage, 1)
	id := homepage[0].ID

	ad := s.ToggleAdvertisement(id, false)
	require.NotNil(t, ad)
	assert.False(t, ad.IsActive)
	assert.Empty(t, s.GetAdvertisementsByLocation("homepage"))

	// still visible unfiltered
	assert.Len(t, s.GetAdvertisements(), 4)

	s.ToggleAdvertisement(id, true)
	assert.Len(t, s.GetAdvertisementsByLocation("homepage"), 1)
}

func TestToggleAdvertisementAbsent(t *testing.T) {
	s := NewMemStorage()
	assert.Nil(t, s.ToggleAdvertisement(999, true))
}

func TestIDsNeverReused(t *testing.T) {
	s := NewMemStorage()
	a := s.CreateScholar(models.InsertScholar{Name: "A"})
	b := s.CreateScholar(models.InsertScholar{Name: "B"})
	assert.Equal(t, a.ID+1, b.ID)
}
