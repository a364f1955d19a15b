package models

// GuideSection is one titled block inside a guide's content.
type GuideSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GuideContent is the nested content shape shared by all guide kinds.
type GuideContent struct {
	Sections []GuideSection `json:"sections"`
}

type User struct {
	ID       int            `json:"id"`
	Username string         `json:"username"`
	Password string         `json:"-"`
	Email    string         `json:"email"`
	Language string         `json:"language"`
	Progress map[string]any `json:"progress"`
	IsAdmin  bool           `json:"is_admin"`
}

// InsertUser is a User minus the server-assigned fields.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Language string `json:"language"`
}

type HajjGuide struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	TitleAr       string       `json:"title_ar"`
	Description   string       `json:"description"`
	DescriptionAr string       `json:"description_ar"`
	Content       GuideContent `json:"content"`
	ContentAr     GuideContent `json:"content_ar"`
	Order         int          `json:"order"`
	ImageURL      string       `json:"image_url"`
	Reference     string       `json:"reference"`
	ScholarID     int          `json:"scholar_id"`
	IsEssential   bool         `json:"is_essential"`
}

type InsertHajjGuide struct {
	Title         string       `json:"title"`
	TitleAr       string       `json:"title_ar"`
	Description   string       `json:"description"`
	DescriptionAr string       `json:"description_ar"`
	Content       GuideContent `json:"content"`
	ContentAr     GuideContent `json:"content_ar"`
	Order         int          `json:"order"`
	ImageURL      string       `json:"image_url"`
	Reference     string       `json:"reference"`
	ScholarID     int          `json:"scholar_id"`
	IsEssential   bool         `json:"is_essential"`
}

type UmrahGuide struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	TitleAr       string       `json:"title_ar"`
	Description   string       `json:"description"`
	DescriptionAr string       `json:"description_ar"`
	Content       GuideContent `json:"content"`
	ContentAr     GuideContent `json:"content_ar"`
	Order         int          `json:"order"`
	ImageURL      string       `json:"image_url"`
	Reference     string       `json:"reference"`
	ScholarID     int          `json:"scholar_id"`
	IsEssential   bool         `json:"is_essential"`
}

type InsertUmrahGuide struct {
	Title         string       `json:"title"`
	TitleAr       string       `json:"title_ar"`
	Description   string       `json:"description"`
	DescriptionAr string       `json:"description_ar"`
	Content       GuideContent `json:"content"`
	ContentAr     GuideContent `json:"content_ar"`
	Order         int          `json:"order"`
	ImageURL      string       `json:"image_url"`
	Reference     string       `json:"reference"`
	ScholarID     int          `json:"scholar_id"`
	IsEssential   bool         `json:"is_essential"`
}

type MasjidGuide struct {
	ID            int          `json:"id"`
	Title         string       `json:"title"`
	TitleAr       string       `json:"title_ar"`
	Description   string       `json:"description"`
	DescriptionAr string       `json:"description_ar"`
	Content       GuideContent `json:"content"`
	ContentAr     GuideContent `json:"content_ar"`
	Category      string       `json:"category"`
	Location      string       `json:"location"`
	LocationAr    string       `json:"location_ar"`
	ImageURL      string       `json:"image_url"`
	Reference     string       `json:"reference"`
}

type InsertMasjidGuide struct {
	Title         string       `json:"title"`
	TitleAr       string       `json:"title_ar"`
	Description   string       `json:"description"`
	DescriptionAr string       `json:"description_ar"`
	Content       GuideContent `json:"content"`
	ContentAr     GuideContent `json:"content_ar"`
	Category      string       `json:"category"`
	Location      string       `json:"location"`
	LocationAr    string       `json:"location_ar"`
	ImageURL      string       `json:"image_url"`
	Reference     string       `json:"reference"`
}

type Dua struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	TitleAr         string   `json:"title_ar"`
	ArabicText      string   `json:"arabic_text"`
	Transliteration string   `json:"transliteration"`
	Translation     string   `json:"translation"`
	TranslationAr   string   `json:"translation_ar"`
	Reference       string   `json:"reference"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
}

type InsertDua struct {
	Title           string   `json:"title"`
	TitleAr         string   `json:"title_ar"`
	ArabicText      string   `json:"arabic_text"`
	Transliteration string   `json:"transliteration"`
	Translation     string   `json:"translation"`
	TranslationAr   string   `json:"translation_ar"`
	Reference       string   `json:"reference"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
}

type Scholar struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	NameAr    string   `json:"name_ar"`
	Title     string   `json:"title"`
	TitleAr   string   `json:"title_ar"`
	Bio       string   `json:"bio"`
	BioAr     string   `json:"bio_ar"`
	Expertise []string `json:"expertise"`
}

type InsertScholar struct {
	Name      string   `json:"name"`
	NameAr    string   `json:"name_ar"`
	Title     string   `json:"title"`
	TitleAr   string   `json:"title_ar"`
	Bio       string   `json:"bio"`
	BioAr     string   `json:"bio_ar"`
	Expertise []string `json:"expertise"`
}

type Advertisement struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Link             string `json:"link"`
	ImagePlaceholder string `json:"image_placeholder"`
	Location         string `json:"location"`
	IsActive         bool   `json:"is_active"`
}

type InsertAdvertisement struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Link             string `json:"link"`
	ImagePlaceholder string `json:"image_placeholder"`
	Location         string `json:"location"`
	IsActive         bool   `json:"is_active"`
}

// ProgressUpdate is pushed to live feed subscribers after a progress merge.
type ProgressUpdate struct {
	UserID    int            `json:"user_id"`
	Progress  map[string]any `json:"progress"`
	Timestamp int64          `json:"timestamp"`
}

// AdToggle is pushed to live feed subscribers after an advertisement toggle.
type AdToggle struct {
	AdID      int    `json:"ad_id"`
	Location  string `json:"location"`
	IsActive  bool   `json:"is_active"`
	Timestamp int64  `json:"timestamp"`
}
