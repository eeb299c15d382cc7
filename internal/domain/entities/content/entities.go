package content

// SectionSettings is the singleton bilingual configuration record most
// content areas carry: page-level titles and copy edited from the dashboard.
type SectionSettings struct {
	PageTitle       Localized `json:"pageTitle"`
	Intro           Localized `json:"intro"`
	MetaDescription Localized `json:"metaDescription"`
}

// SiteSettings is the pages area's settings record and doubles as the
// site-wide labels (header, footer, contact block).
type SiteSettings struct {
	SiteName     Localized `json:"siteName"`
	Tagline      Localized `json:"tagline"`
	FooterText   Localized `json:"footerText"`
	Address      Localized `json:"address"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
}

// Project is one portfolio entry
type Project struct {
	Base
	Title            Localized `json:"title"`
	Summary          Localized `json:"summary"`
	Description      Localized `json:"description"`
	Category         Localized `json:"category"`
	Location         Localized `json:"location"`
	Year             int       `json:"year"`
	Published        bool      `json:"published"`
	CoverUploadID    *int      `json:"coverUploadId"`
	CoverURL         string    `json:"coverUrl"`
	GalleryUploadIDs []int     `json:"galleryUploadIds"`
}

// NewsItem is one press/news entry
type NewsItem struct {
	Base
	Title         Localized `json:"title"`
	Excerpt       Localized `json:"excerpt"`
	Body          Localized `json:"body"`
	PublishedAt   string    `json:"publishedAt"`
	Published     bool      `json:"published"`
	CoverUploadID *int      `json:"coverUploadId"`
	CoverURL      string    `json:"coverUrl"`
}

// BlogPost is one blog entry
type BlogPost struct {
	Base
	Title         Localized `json:"title"`
	Excerpt       Localized `json:"excerpt"`
	Body          Localized `json:"body"`
	Author        Localized `json:"author"`
	Tags          []string  `json:"tags"`
	PublishedAt   string    `json:"publishedAt"`
	Published     bool      `json:"published"`
	CoverUploadID *int      `json:"coverUploadId"`
	CoverURL      string    `json:"coverUrl"`
}

// Career is one open position
type Career struct {
	Base
	Title          Localized `json:"title"`
	Department     Localized `json:"department"`
	Location       Localized `json:"location"`
	Description    Localized `json:"description"`
	Requirements   Localized `json:"requirements"`
	EmploymentType string    `json:"employmentType"`
	Open           bool      `json:"open"`
}

// MediaItem is one gallery entry, either an uploaded image or an external video
type MediaItem struct {
	Base
	Title       Localized `json:"title"`
	Caption     Localized `json:"caption"`
	Kind        string    `json:"kind"` // image | video
	UploadID    *int      `json:"uploadId"`
	ExternalURL string    `json:"externalUrl"`
	Published   bool      `json:"published"`
}

// Client is one client/partner logo entry
type Client struct {
	Base
	Name         Localized `json:"name"`
	Sector       Localized `json:"sector"`
	WebsiteURL   string    `json:"websiteUrl"`
	LogoUploadID *int      `json:"logoUploadId"`
	ShowInMenu   bool      `json:"showInMenu"`
}

// Page is one editable site page
type Page struct {
	Base
	Title           Localized `json:"title"`
	HeroTitle       Localized `json:"heroTitle"`
	HeroSubtitle    Localized `json:"heroSubtitle"`
	Body            Localized `json:"body"`
	MetaDescription Localized `json:"metaDescription"`
	ShowInMenu      bool      `json:"showInMenu"`
}

// Message is one contact-form submission. Messages carry no bilingual fields
// and no slug.
type Message struct {
	Base
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
	Read      bool   `json:"read"`
}

// Upload is one entry in the upload ledger; the binary lives under the
// upload directory and is addressed as /api/uploads/{id}.
type Upload struct {
	Base
	FileName     string `json:"fileName"`
	WebPFileName string `json:"webpFileName,omitempty"`
	OriginalName string `json:"originalName"`
	Mime         string `json:"mime"`
	Size         int64  `json:"size"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	CreatedAt    string `json:"createdAt"`
}
