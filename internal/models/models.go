// internal/models/models.go
package models

// MediaItem file types. Storage-backed items own a physical file (and a
// derived thumbnail) that must be removed together with the record; link
// items point at an external URL and never touch the filesystem.
const (
	FileTypeLink         = "link"
	FileTypeStorage      = "storage"
	FileTypeCoverLink    = "coverLink"
	FileTypeCoverStorage = "coverStorage"

	FileTypeProfileLink    = "profileLink"
	FileTypeProfileStorage = "profileStorage"
)

// Gallery template types. Defaults to TemplateTimeline when absent.
const (
	TemplateTimeline = "timeline"
	TemplateMasonry  = "masonry"
	TemplateGrid     = "grid"
)

type MediaItem struct {
	ID                    string `json:"id"`
	FileUrl               string `json:"fileUrl"`
	FileType              string `json:"fileType"`
	Description           string `json:"description,omitempty"`
	DescriptionVisibility *bool  `json:"descriptionVisibility,omitempty"`
	ImageVisibility       *bool  `json:"imageVisibility,omitempty"`
}

// IsStored reports whether the item is backed by a physical file on disk.
func (m MediaItem) IsStored() bool {
	return m.FileType == FileTypeStorage || m.FileType == FileTypeCoverStorage
}

type Wedding struct {
	ID              int         `json:"id"`
	FolderID        string      `json:"folderId"`
	CoverImage      *MediaItem  `json:"coverImage,omitempty"`
	Images          []MediaItem `json:"images"`
	Title           string      `json:"title"`
	Date            string      `json:"date"`
	Location        string      `json:"location"`
	Description     string      `json:"description"`
	Visible         bool        `json:"visible"`
	TemplateType    string      `json:"templateType,omitempty"`
	ShowLocation    *bool       `json:"showLocation,omitempty"`
	ShowDescription *bool       `json:"showDescription,omitempty"`
}

// WeddingUpdate carries a partial field update; nil pointers leave the
// current value untouched.
type WeddingUpdate struct {
	Title           *string `json:"title,omitempty"`
	Date            *string `json:"date,omitempty"`
	Location        *string `json:"location,omitempty"`
	Description     *string `json:"description,omitempty"`
	TemplateType    *string `json:"templateType,omitempty"`
	ShowLocation    *bool   `json:"showLocation,omitempty"`
	ShowDescription *bool   `json:"showDescription,omitempty"`
}

type Profile struct {
	ArtistName   string `json:"artistName"`
	Description  string `json:"description"`
	SocialUrl    string `json:"socialUrl"`
	ImageUrl     string `json:"imageUrl"`
	ImageType    string `json:"imageType"` // profileLink or profileStorage
	ThumbnailUrl string `json:"thumbnailUrl,omitempty"`
}

type SiteSettings struct {
	SiteTitle       string `json:"siteTitle"`
	SiteDescription string `json:"siteDescription"`
	ShowLocation    bool   `json:"showLocation"`
	ShowDescription bool   `json:"showDescription"`
	DefaultTemplate string `json:"defaultTemplate"`
}

type Availability struct {
	UnavailableDates []string `json:"unavailableDates"`
}

// PageBlock is one typed content block of a custom page. Text holds copy for
// text-like blocks, MediaUrl the source for image blocks; the Data map keeps
// block-specific extras so less common block types round-trip untouched.
type PageBlock struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	MediaUrl string            `json:"mediaUrl,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
}

type CustomPage struct {
	ID      string      `json:"id"`
	Slug    string      `json:"slug"`
	Title   string      `json:"title"`
	Visible bool        `json:"visible"`
	Content []PageBlock `json:"content"`
}

// Job statuses reported by the thumbnail progress tracker.
const (
	JobPending   = "pending"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// ImageOutcome is the per-image result of a thumbnail batch: a size pair for
// a successful compression, or an error message.
type ImageOutcome struct {
	Success      bool   `json:"success"`
	OriginalSize int64  `json:"originalSize,omitempty"`
	ThumbSize    int64  `json:"thumbSize,omitempty"`
	Error        string `json:"error,omitempty"`
}

type JobProgress struct {
	ProcessID        string                  `json:"processId"`
	TotalImages      int                     `json:"totalImages"`
	ProcessedImages  int                     `json:"processedImages"`
	CurrentImage     string                  `json:"currentImage"`
	Status           string                  `json:"status"`
	CompressionStats map[string]ImageOutcome `json:"compressionStats"`
}

// Percent reports the rounded completion percentage; a zero total is 0%.
func (p JobProgress) Percent() int {
	if p.TotalImages == 0 {
		return 0
	}
	return int(float64(p.ProcessedImages)/float64(p.TotalImages)*100 + 0.5)
}
