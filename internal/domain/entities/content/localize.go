package content

// Single-language projections of the bilingual records. Every Localize
// method is pure and total for the two supported languages; callers validate
// the language parameter before projecting.

type ProjectView struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	SortOrder   int      `json:"sortOrder"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Year        int      `json:"year"`
	Published   bool     `json:"published"`
	CoverURL    string   `json:"coverUrl"`
	GalleryURLs []string `json:"galleryUrls"`
}

func (p *Project) Localize(lang Lang) *ProjectView {
	return &ProjectView{
		ID:          p.ID,
		Slug:        p.GetSlug(),
		SortOrder:   p.SortOrder,
		Title:       p.Title.Pick(lang),
		Summary:     p.Summary.Pick(lang),
		Description: p.Description.Pick(lang),
		Category:    p.Category.Pick(lang),
		Location:    p.Location.Pick(lang),
		Year:        p.Year,
		Published:   p.Published,
		CoverURL:    UploadURL(p.CoverUploadID, p.CoverURL),
		GalleryURLs: UploadURLs(p.GalleryUploadIDs),
	}
}

type NewsItemView struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	SortOrder   int    `json:"sortOrder"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Body        string `json:"body"`
	PublishedAt string `json:"publishedAt"`
	Published   bool   `json:"published"`
	CoverURL    string `json:"coverUrl"`
}

func (n *NewsItem) Localize(lang Lang) *NewsItemView {
	return &NewsItemView{
		ID:          n.ID,
		Slug:        n.GetSlug(),
		SortOrder:   n.SortOrder,
		Title:       n.Title.Pick(lang),
		Excerpt:     n.Excerpt.Pick(lang),
		Body:        n.Body.Pick(lang),
		PublishedAt: n.PublishedAt,
		Published:   n.Published,
		CoverURL:    UploadURL(n.CoverUploadID, n.CoverURL),
	}
}

type BlogPostView struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	SortOrder   int      `json:"sortOrder"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Body        string   `json:"body"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"publishedAt"`
	Published   bool     `json:"published"`
	CoverURL    string   `json:"coverUrl"`
}

func (b *BlogPost) Localize(lang Lang) *BlogPostView {
	return &BlogPostView{
		ID:          b.ID,
		Slug:        b.GetSlug(),
		SortOrder:   b.SortOrder,
		Title:       b.Title.Pick(lang),
		Excerpt:     b.Excerpt.Pick(lang),
		Body:        b.Body.Pick(lang),
		Author:      b.Author.Pick(lang),
		Tags:        b.Tags,
		PublishedAt: b.PublishedAt,
		Published:   b.Published,
		CoverURL:    UploadURL(b.CoverUploadID, b.CoverURL),
	}
}

type CareerView struct {
	ID             int    `json:"id"`
	Slug           string `json:"slug"`
	SortOrder      int    `json:"sortOrder"`
	Title          string `json:"title"`
	Department     string `json:"department"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	EmploymentType string `json:"employmentType"`
	Open           bool   `json:"open"`
}

func (c *Career) Localize(lang Lang) *CareerView {
	return &CareerView{
		ID:             c.ID,
		Slug:           c.GetSlug(),
		SortOrder:      c.SortOrder,
		Title:          c.Title.Pick(lang),
		Department:     c.Department.Pick(lang),
		Location:       c.Location.Pick(lang),
		Description:    c.Description.Pick(lang),
		Requirements:   c.Requirements.Pick(lang),
		EmploymentType: c.EmploymentType,
		Open:           c.Open,
	}
}

type MediaItemView struct {
	ID        int    `json:"id"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sortOrder"`
	Title     string `json:"title"`
	Caption   string `json:"caption"`
	Kind      string `json:"kind"`
	URL       string `json:"url"`
	Published bool   `json:"published"`
}

func (m *MediaItem) Localize(lang Lang) *MediaItemView {
	return &MediaItemView{
		ID:        m.ID,
		Slug:      m.GetSlug(),
		SortOrder: m.SortOrder,
		Title:     m.Title.Pick(lang),
		Caption:   m.Caption.Pick(lang),
		Kind:      m.Kind,
		URL:       UploadURL(m.UploadID, m.ExternalURL),
		Published: m.Published,
	}
}

type ClientView struct {
	ID         int    `json:"id"`
	Slug       string `json:"slug"`
	SortOrder  int    `json:"sortOrder"`
	Name       string `json:"name"`
	Sector     string `json:"sector"`
	WebsiteURL string `json:"websiteUrl"`
	LogoURL    string `json:"logoUrl"`
	ShowInMenu bool   `json:"showInMenu"`
}

func (c *Client) Localize(lang Lang) *ClientView {
	return &ClientView{
		ID:         c.ID,
		Slug:       c.GetSlug(),
		SortOrder:  c.SortOrder,
		Name:       c.Name.Pick(lang),
		Sector:     c.Sector.Pick(lang),
		WebsiteURL: c.WebsiteURL,
		LogoURL:    UploadURL(c.LogoUploadID, ""),
		ShowInMenu: c.ShowInMenu,
	}
}

type PageView struct {
	ID              int    `json:"id"`
	Slug            string `json:"slug"`
	SortOrder       int    `json:"sortOrder"`
	Title           string `json:"title"`
	HeroTitle       string `json:"heroTitle"`
	HeroSubtitle    string `json:"heroSubtitle"`
	Body            string `json:"body"`
	MetaDescription string `json:"metaDescription"`
	ShowInMenu      bool   `json:"showInMenu"`
}

func (p *Page) Localize(lang Lang) *PageView {
	return &PageView{
		ID:              p.ID,
		Slug:            p.GetSlug(),
		SortOrder:       p.SortOrder,
		Title:           p.Title.Pick(lang),
		HeroTitle:       p.HeroTitle.Pick(lang),
		HeroSubtitle:    p.HeroSubtitle.Pick(lang),
		Body:            p.Body.Pick(lang),
		MetaDescription: p.MetaDescription.Pick(lang),
		ShowInMenu:      p.ShowInMenu,
	}
}

type SectionSettingsView struct {
	PageTitle       string `json:"pageTitle"`
	Intro           string `json:"intro"`
	MetaDescription string `json:"metaDescription"`
}

func (s *SectionSettings) Localize(lang Lang) *SectionSettingsView {
	return &SectionSettingsView{
		PageTitle:       s.PageTitle.Pick(lang),
		Intro:           s.Intro.Pick(lang),
		MetaDescription: s.MetaDescription.Pick(lang),
	}
}

type SiteSettingsView struct {
	SiteName     string `json:"siteName"`
	Tagline      string `json:"tagline"`
	FooterText   string `json:"footerText"`
	Address      string `json:"address"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

func (s *SiteSettings) Localize(lang Lang) *SiteSettingsView {
	return &SiteSettingsView{
		SiteName:     s.SiteName.Pick(lang),
		Tagline:      s.Tagline.Pick(lang),
		FooterText:   s.FooterText.Pick(lang),
		Address:      s.Address.Pick(lang),
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
	}
}
