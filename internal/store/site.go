// internal/store/site.go
package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"wedding-back/internal/models"
)

var ErrPageNotFound = errors.New("page not found")

// SiteRepo owns the singleton resources (profile, settings, social links,
// availability) and the custom pages list.
type SiteRepo struct {
	store *Store
	mu    sync.Mutex
}

func NewSiteRepo(s *Store) *SiteRepo {
	return &SiteRepo{store: s}
}

// DefaultSettings is the shape returned before the admin ever saved one.
func DefaultSettings() models.SiteSettings {
	return models.SiteSettings{
		ShowLocation:    true,
		ShowDescription: true,
		DefaultTemplate: models.TemplateTimeline,
	}
}

func (r *SiteRepo) GetProfile() (models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var p models.Profile
	err := Read(r.store, KindProfile, &p)
	return p, err
}

// UpdateProfile merges non-empty fields into the stored singleton.
func (r *SiteRepo) UpdateProfile(upd models.Profile) (models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var p models.Profile
	if err := Read(r.store, KindProfile, &p); err != nil {
		return models.Profile{}, err
	}
	if upd.ArtistName != "" {
		p.ArtistName = upd.ArtistName
	}
	if upd.Description != "" {
		p.Description = upd.Description
	}
	if upd.SocialUrl != "" {
		p.SocialUrl = upd.SocialUrl
	}
	if upd.ImageUrl != "" {
		p.ImageUrl = upd.ImageUrl
		p.ImageType = upd.ImageType
	}
	if upd.ThumbnailUrl != "" {
		p.ThumbnailUrl = upd.ThumbnailUrl
	}
	if err := Write(r.store, KindProfile, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (r *SiteRepo) GetSettings() (models.SiteSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := DefaultSettings()
	err := Read(r.store, KindSettings, &s)
	return s, err
}

func (r *SiteRepo) SaveSettings(s models.SiteSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Write(r.store, KindSettings, s)
}

func (r *SiteRepo) GetSocial() (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	social := map[string]string{}
	err := Read(r.store, KindSocial, &social)
	return social, err
}

func (r *SiteRepo) SaveSocial(social map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Write(r.store, KindSocial, social)
}

func (r *SiteRepo) GetAvailability() (models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := models.Availability{UnavailableDates: []string{}}
	err := Read(r.store, KindAvailability, &a)
	return a, err
}

func (r *SiteRepo) SaveAvailability(a models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.UnavailableDates == nil {
		a.UnavailableDates = []string{}
	}
	return Write(r.store, KindAvailability, a)
}

func (r *SiteRepo) ListPages() ([]models.CustomPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadPages()
}

func (r *SiteRepo) GetPageBySlug(slug string) (models.CustomPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pages, err := r.loadPages()
	if err != nil {
		return models.CustomPage{}, err
	}
	for _, p := range pages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return models.CustomPage{}, ErrPageNotFound
}

func (r *SiteRepo) CreatePage(page models.CustomPage) (models.CustomPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pages, err := r.loadPages()
	if err != nil {
		return models.CustomPage{}, err
	}
	page.ID = uuid.New().String()
	if page.Slug == "" {
		page.Slug = slugify(page.Title)
	}
	if page.Content == nil {
		page.Content = []models.PageBlock{}
	}
	for i := range page.Content {
		if page.Content[i].ID == "" {
			page.Content[i].ID = uuid.New().String()
		}
	}
	pages = append(pages, page)
	if err := Write(r.store, KindCustomPages, pages); err != nil {
		return models.CustomPage{}, err
	}
	return page, nil
}

func (r *SiteRepo) UpdatePage(id string, upd models.CustomPage) (models.CustomPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pages, err := r.loadPages()
	if err != nil {
		return models.CustomPage{}, err
	}
	for i := range pages {
		if pages[i].ID != id {
			continue
		}
		if upd.Title != "" {
			pages[i].Title = upd.Title
		}
		if upd.Slug != "" {
			pages[i].Slug = upd.Slug
		}
		pages[i].Visible = upd.Visible
		if upd.Content != nil {
			for j := range upd.Content {
				if upd.Content[j].ID == "" {
					upd.Content[j].ID = uuid.New().String()
				}
			}
			pages[i].Content = upd.Content
		}
		if err := Write(r.store, KindCustomPages, pages); err != nil {
			return models.CustomPage{}, err
		}
		return pages[i], nil
	}
	return models.CustomPage{}, ErrPageNotFound
}

func (r *SiteRepo) DeletePage(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pages, err := r.loadPages()
	if err != nil {
		return err
	}
	for i := range pages {
		if pages[i].ID == id {
			pages = append(pages[:i], pages[i+1:]...)
			return Write(r.store, KindCustomPages, pages)
		}
	}
	return ErrPageNotFound
}

func (r *SiteRepo) loadPages() ([]models.CustomPage, error) {
	pages := []models.CustomPage{}
	if err := Read(r.store, KindCustomPages, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	lastDash := true
	for _, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9':
			b.WriteRune(ch)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
