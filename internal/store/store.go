// Package store owns all entity state for the process lifetime.
//
// Lookups never return errors for absence: a missing record comes back
// as a nil pointer (or nil slice element-wise), and the HTTP layer maps
// that to 404 exactly once. Identifiers are assigned by per-kind
// counters starting at 1 and are never reused.
package store

import (
	"sort"
	"sync"

	"hajjhub/pkg/models"
)

// Storage is the CRUD contract the route layer programs against.
type Storage interface {
	// User operations
	GetUser(id int) *models.User
	GetUserByUsername(username string) *models.User
	CreateUser(in models.InsertUser) models.User
	SetUserAdmin(id int, isAdmin bool) *models.User
	UpdateUserProgress(userID int, progress map[string]any) *models.User

	// Hajj guide operations
	GetHajjGuides() []models.HajjGuide
	GetHajjGuide(id int) *models.HajjGuide
	CreateHajjGuide(in models.InsertHajjGuide) models.HajjGuide

	// Umrah guide operations
	GetUmrahGuides() []models.UmrahGuide
	GetUmrahGuide(id int) *models.UmrahGuide
	CreateUmrahGuide(in models.InsertUmrahGuide) models.UmrahGuide

	// Masjid guide operations
	GetMasjidGuides() []models.MasjidGuide
	GetMasjidGuide(id int) *models.MasjidGuide
	GetMasjidGuidesByCategory(category string) []models.MasjidGuide
	CreateMasjidGuide(in models.InsertMasjidGuide) models.MasjidGuide

	// Dua operations
	GetDuas() []models.Dua
	GetDua(id int) *models.Dua
	GetDuasByCategory(category string) []models.Dua
	CreateDua(in models.InsertDua) models.Dua

	// Scholar operations
	GetScholars() []models.Scholar
	GetScholar(id int) *models.Scholar
	CreateScholar(in models.InsertScholar) models.Scholar

	// Advertisement operations
	GetAdvertisements() []models.Advertisement
	GetAdvertisementsByLocation(location string) []models.Advertisement
	CreateAdvertisement(in models.InsertAdvertisement) models.Advertisement
	ToggleAdvertisement(id int, isActive bool) *models.Advertisement
}

// MemStorage keeps every entity kind in its own keyed map.
//
// The mutex is the only concession to gin serving requests on
// concurrent goroutines; every operation is still a plain map
// read/write with no I/O.
type MemStorage struct {
	mu sync.RWMutex

	users          map[int]models.User
	hajjGuides     map[int]models.HajjGuide
	umrahGuides    map[int]models.UmrahGuide
	masjidGuides   map[int]models.MasjidGuide
	duas           map[int]models.Dua
	scholars       map[int]models.Scholar
	advertisements map[int]models.Advertisement

	nextUserID        int
	nextHajjGuideID   int
	nextUmrahGuideID  int
	nextMasjidGuideID int
	nextDuaID         int
	nextScholarID     int
	nextAdID          int
}

// NewMemStorage returns a store populated with the seed content.
func NewMemStorage() *MemStorage {
	s := &MemStorage{
		users:          make(map[int]models.User),
		hajjGuides:     make(map[int]models.HajjGuide),
		umrahGuides:    make(map[int]models.UmrahGuide),
		masjidGuides:   make(map[int]models.MasjidGuide),
		duas:           make(map[int]models.Dua),
		scholars:       make(map[int]models.Scholar),
		advertisements: make(map[int]models.Advertisement),

		nextUserID:        1,
		nextHajjGuideID:   1,
		nextUmrahGuideID:  1,
		nextMasjidGuideID: 1,
		nextDuaID:         1,
		nextScholarID:     1,
		nextAdID:          1,
	}
	s.seed()
	return s
}

// User operations

func (s *MemStorage) GetUser(id int) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u
	}
	return nil
}

func (s *MemStorage) GetUserByUsername(username string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u
		}
	}
	return nil
}

func (s *MemStorage) CreateUser(in models.InsertUser) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{
		ID:       s.nextUserID,
		Username: in.Username,
		Password: in.Password,
		Email:    in.Email,
		Language: in.Language,
		Progress: map[string]any{},
	}
	s.nextUserID++
	s.users[u.ID] = u
	return u
}

// SetUserAdmin marks an existing user as admin. Used at registration
// time for allow-listed emails.
func (s *MemStorage) SetUserAdmin(id int, isAdmin bool) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	u.IsAdmin = isAdmin
	s.users[id] = u
	return &u
}

// UpdateUserProgress shallow-merges progress into the user's existing
// bag: new keys are added, matching keys overwritten, the rest kept.
func (s *MemStorage) UpdateUserProgress(userID int, progress map[string]any) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil
	}
	merged := make(map[string]any, len(u.Progress)+len(progress))
	for k, v := range u.Progress {
		merged[k] = v
	}
	for k, v := range progress {
		merged[k] = v
	}
	u.Progress = merged
	s.users[userID] = u
	return &u
}

// Hajj guide operations

// GetHajjGuides returns all hajj guides sorted ascending by display
// order, ties broken by insertion order.
func (s *MemStorage) GetHajjGuides() []models.HajjGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HajjGuide, 0, len(s.hajjGuides))
	for _, g := range s.hajjGuides {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *MemStorage) GetHajjGuide(id int) *models.HajjGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if g, ok := s.hajjGuides[id]; ok {
		return &g
	}
	return nil
}

func (s *MemStorage) CreateHajjGuide(in models.InsertHajjGuide) models.HajjGuide {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := models.HajjGuide{
		ID:            s.nextHajjGuideID,
		Title:         in.Title,
		TitleAr:       in.TitleAr,
		Description:   in.Description,
		DescriptionAr: in.DescriptionAr,
		Content:       in.Content,
		ContentAr:     in.ContentAr,
		Order:         in.Order,
		ImageURL:      in.ImageURL,
		Reference:     in.Reference,
		ScholarID:     in.ScholarID,
		IsEssential:   in.IsEssential,
	}
	s.nextHajjGuideID++
	s.hajjGuides[g.ID] = g
	return g
}

// Umrah guide operations

func (s *MemStorage) GetUmrahGuides() []models.UmrahGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UmrahGuide, 0, len(s.umrahGuides))
	for _, g := range s.umrahGuides {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *MemStorage) GetUmrahGuide(id int) *models.UmrahGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if g, ok := s.umrahGuides[id]; ok {
		return &g
	}
	return nil
}

func (s *MemStorage) CreateUmrahGuide(in models.InsertUmrahGuide) models.UmrahGuide {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := models.UmrahGuide{
		ID:            s.nextUmrahGuideID,
		Title:         in.Title,
		TitleAr:       in.TitleAr,
		Description:   in.Description,
		DescriptionAr: in.DescriptionAr,
		Content:       in.Content,
		ContentAr:     in.ContentAr,
		Order:         in.Order,
		ImageURL:      in.ImageURL,
		Reference:     in.Reference,
		ScholarID:     in.ScholarID,
		IsEssential:   in.IsEssential,
	}
	s.nextUmrahGuideID++
	s.umrahGuides[g.ID] = g
	return g
}

// Masjid guide operations

func (s *MemStorage) GetMasjidGuides() []models.MasjidGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MasjidGuide, 0, len(s.masjidGuides))
	for _, g := range s.masjidGuides {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStorage) GetMasjidGuide(id int) *models.MasjidGuide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if g, ok := s.masjidGuides[id]; ok {
		return &g
	}
	return nil
}

func (s *MemStorage) GetMasjidGuidesByCategory(category string) []models.MasjidGuide {
	all := s.GetMasjidGuides()
	out := make([]models.MasjidGuide, 0, len(all))
	for _, g := range all {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

func (s *MemStorage) CreateMasjidGuide(in models.InsertMasjidGuide) models.MasjidGuide {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := models.MasjidGuide{
		ID:            s.nextMasjidGuideID,
		Title:         in.Title,
		TitleAr:       in.TitleAr,
		Description:   in.Description,
		DescriptionAr: in.DescriptionAr,
		Content:       in.Content,
		ContentAr:     in.ContentAr,
		Category:      in.Category,
		Location:      in.Location,
		LocationAr:    in.LocationAr,
		ImageURL:      in.ImageURL,
		Reference:     in.Reference,
	}
	s.nextMasjidGuideID++
	s.masjidGuides[g.ID] = g
	return g
}

// Dua operations

func (s *MemStorage) GetDuas() []models.Dua {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Dua, 0, len(s.duas))
	for _, d := range s.duas {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStorage) GetDua(id int) *models.Dua {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.duas[id]; ok {
		return &d
	}
	return nil
}

func (s *MemStorage) GetDuasByCategory(category string) []models.Dua {
	all := s.GetDuas()
	out := make([]models.Dua, 0, len(all))
	for _, d := range all {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

func (s *MemStorage) CreateDua(in models.InsertDua) models.Dua {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := models.Dua{
		ID:              s.nextDuaID,
		Title:           in.Title,
		TitleAr:         in.TitleAr,
		ArabicText:      in.ArabicText,
		Transliteration: in.Transliteration,
		Translation:     in.Translation,
		TranslationAr:   in.TranslationAr,
		Reference:       in.Reference,
		Category:        in.Category,
		Tags:            in.Tags,
	}
	s.nextDuaID++
	s.duas[d.ID] = d
	return d
}

// Scholar operations

func (s *MemStorage) GetScholars() []models.Scholar {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Scholar, 0, len(s.scholars))
	for _, sc := range s.scholars {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStorage) GetScholar(id int) *models.Scholar {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sc, ok := s.scholars[id]; ok {
		return &sc
	}
	return nil
}

func (s *MemStorage) CreateScholar(in models.InsertScholar) models.Scholar {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc := models.Scholar{
		ID:        s.nextScholarID,
		Name:      in.Name,
		NameAr:    in.NameAr,
		Title:     in.Title,
		TitleAr:   in.TitleAr,
		Bio:       in.Bio,
		BioAr:     in.BioAr,
		Expertise: in.Expertise,
	}
	s.nextScholarID++
	s.scholars[sc.ID] = sc
	return sc
}

// Advertisement operations

func (s *MemStorage) GetAdvertisements() []models.Advertisement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Advertisement, 0, len(s.advertisements))
	for _, a := range s.advertisements {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetAdvertisementsByLocation returns only active ads for the location.
// The unfiltered listing includes inactive ones.
func (s *MemStorage) GetAdvertisementsByLocation(location string) []models.Advertisement {
	all := s.GetAdvertisements()
	out := make([]models.Advertisement, 0, len(all))
	for _, a := range all {
		if a.Location == location && a.IsActive {
			out = append(out, a)
		}
	}
	return out
}

func (s *MemStorage) CreateAdvertisement(in models.InsertAdvertisement) models.Advertisement {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := models.Advertisement{
		ID:               s.nextAdID,
		Title:            in.Title,
		Description:      in.Description,
		Link:             in.Link,
		ImagePlaceholder: in.ImagePlaceholder,
		Location:         in.Location,
		IsActive:         in.IsActive,
	}
	s.nextAdID++
	s.advertisements[a.ID] = a
	return a
}

func (s *MemStorage) ToggleAdvertisement(id int, isActive bool) *models.Advertisement {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.advertisements[id]
	if !ok {
		return nil
	}
	a.IsActive = isActive
	s.advertisements[id] = a
	return &a
}
