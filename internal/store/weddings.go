// internal/store/weddings.go
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"wedding-back/internal/media"
	"wedding-back/internal/models"
)

var (
	ErrNotFound      = errors.New("wedding not found")
	ErrImageNotFound = errors.New("image not found")
	// ErrDuplicateID rejects a reorder batch whose resulting id set would
	// no longer be unique.
	ErrDuplicateID = errors.New("reorder would produce duplicate ids")
)

// IDChange reassigns one wedding id during a reorder.
type IDChange struct {
	OldID int `json:"oldId"`
	NewID int `json:"newId"`
}

// WeddingRepo implements the domain operations over the wedding list. Every
// mutation loads the full list, mutates it in memory and writes it back;
// the mutex serializes mutations within this process.
type WeddingRepo struct {
	store    *Store
	mediaDir string
	mu       sync.Mutex
}

func NewWeddingRepo(s *Store, mediaDir string) *WeddingRepo {
	return &WeddingRepo{store: s, mediaDir: mediaDir}
}

func (r *WeddingRepo) load() ([]models.Wedding, error) {
	weddings := []models.Wedding{}
	if err := Read(r.store, KindWeddings, &weddings); err != nil {
		return nil, err
	}
	return weddings, nil
}

func (r *WeddingRepo) save(weddings []models.Wedding) error {
	return Write(r.store, KindWeddings, weddings)
}

func (r *WeddingRepo) List() ([]models.Wedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *WeddingRepo) FindByID(id int) (models.Wedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	weddings, err := r.load()
	if err != nil {
		return models.Wedding{}, err
	}
	for _, w := range weddings {
		if w.ID == id {
			return w, nil
		}
	}
	return models.Wedding{}, ErrNotFound
}

// Create appends a new hidden wedding with the next free id, a time-based
// media folder token and a placeholder cover.
func (r *WeddingRepo) Create() (models.Wedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	weddings, err := r.load()
	if err != nil {
		return models.Wedding{}, err
	}

	nextID := 1
	for _, w := range weddings {
		if w.ID >= nextID {
			nextID = w.ID + 1
		}
	}

	w := models.Wedding{
		ID:       nextID,
		FolderID: newFolderID(),
		CoverImage: &models.MediaItem{
			ID:       newImageID(),
			FileUrl:  "/placeholder.jpg",
			FileType: models.FileTypeCoverLink,
		},
		Images:       []models.MediaItem{},
		Title:        "Nouvel événement",
		Visible:      false,
		TemplateType: models.TemplateTimeline,
	}

	weddings = append(weddings, w)
	if err := r.save(weddings); err != nil {
		return models.Wedding{}, err
	}
	return w, nil
}

// Delete removes the record and persists first; the media folder cleanup
// that follows is best-effort and never fails the operation.
func (r *WeddingRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	weddings, err := r.load()
	if err != nil {
		return err
	}

	idx := -1
	for i, w := range weddings {
		if w.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	folderID := weddings[idx].FolderID
	weddings = append(weddings[:idx], weddings[idx+1:]...)
	if err := r.save(weddings); err != nil {
		return err
	}

	media.RemoveFolder(r.mediaDir, folderID)
	return nil
}

func (r *WeddingRepo) ToggleVisible(id int) (models.Wedding, error) {
	return r.mutate(id, func(w *models.Wedding) error {
		w.Visible = !w.Visible
		return nil
	})
}

// UpdateFields shallow-merges the provided fields into the record.
func (r *WeddingRepo) UpdateFields(id int, upd models.WeddingUpdate) (models.Wedding, error) {
	return r.mutate(id, func(w *models.Wedding) error {
		if upd.Title != nil {
			w.Title = *upd.Title
		}
		if upd.Date != nil {
			w.Date = *upd.Date
		}
		if upd.Location != nil {
			w.Location = *upd.Location
		}
		if upd.Description != nil {
			w.Description = *upd.Description
		}
		if upd.TemplateType != nil {
			w.TemplateType = *upd.TemplateType
		}
		if upd.ShowLocation != nil {
			w.ShowLocation = upd.ShowLocation
		}
		if upd.ShowDescription != nil {
			w.ShowDescription = upd.ShowDescription
		}
		return nil
	})
}

// Reorder reassigns ids for every record matched by OldID. The whole batch
// is rejected when the resulting id set is not unique, so a caller bug can
// never persist duplicate ids.
func (r *WeddingRepo) Reorder(changes []IDChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	weddings, err := r.load()
	if err != nil {
		return err
	}

	byOld := make(map[int]int, len(changes))
	for _, c := range changes {
		byOld[c.OldID] = c.NewID
	}

	seen := make(map[int]bool, len(weddings))
	for i := range weddings {
		id := weddings[i].ID
		if newID, ok := byOld[id]; ok {
			id = newID
		}
		if seen[id] {
			return fmt.Errorf("%w: id %d", ErrDuplicateID, id)
		}
		seen[id] = true
	}

	for i := range weddings {
		if newID, ok := byOld[weddings[i].ID]; ok {
			weddings[i].ID = newID
		}
	}
	return r.save(weddings)
}

func (r *WeddingRepo) AddImage(id int, item models.MediaItem) (models.Wedding, error) {
	if item.ID == "" {
		item.ID = newImageID()
	}
	return r.mutate(id, func(w *models.Wedding) error {
		w.Images = append(w.Images, item)
		return nil
	})
}

// RemoveImage drops the image record; the backing file and its derived
// thumbnail are removed afterwards when the item was storage-backed.
func (r *WeddingRepo) RemoveImage(id int, imageID string) (models.Wedding, error) {
	var removed models.MediaItem
	w, err := r.mutate(id, func(w *models.Wedding) error {
		for i, img := range w.Images {
			if img.ID == imageID {
				removed = img
				w.Images = append(w.Images[:i], w.Images[i+1:]...)
				return nil
			}
		}
		return ErrImageNotFound
	})
	if err != nil {
		return models.Wedding{}, err
	}
	media.RemoveStored(r.mediaDir, removed)
	return w, nil
}

// SetImagesOrder replaces the full images array; this is how a drag-reorder
// is persisted.
func (r *WeddingRepo) SetImagesOrder(id int, images []models.MediaItem) (models.Wedding, error) {
	return r.mutate(id, func(w *models.Wedding) error {
		w.Images = images
		return nil
	})
}

func (r *WeddingRepo) SetImageDescription(id int, imageID, description string) (models.Wedding, error) {
	return r.mutateImage(id, imageID, func(img *models.MediaItem) {
		img.Description = description
	})
}

func (r *WeddingRepo) SetImageVisibility(id int, imageID string, visible bool) (models.Wedding, error) {
	return r.mutateImage(id, imageID, func(img *models.MediaItem) {
		img.ImageVisibility = &visible
	})
}

func (r *WeddingRepo) SetDescriptionVisibility(id int, imageID string, visible bool) (models.Wedding, error) {
	return r.mutateImage(id, imageID, func(img *models.MediaItem) {
		img.DescriptionVisibility = &visible
	})
}

// SetCoverImage replaces the cover; a previously stored cover file is
// removed after the replacement is persisted.
func (r *WeddingRepo) SetCoverImage(id int, item models.MediaItem) (models.Wedding, error) {
	if item.ID == "" {
		item.ID = newImageID()
	}
	var previous *models.MediaItem
	w, err := r.mutate(id, func(w *models.Wedding) error {
		previous = w.CoverImage
		w.CoverImage = &item
		return nil
	})
	if err != nil {
		return models.Wedding{}, err
	}
	if previous != nil {
		media.RemoveStored(r.mediaDir, *previous)
	}
	return w, nil
}

// mutate runs fn against the record with the given id and persists the full
// list only when fn succeeds; a not-found leaves the file untouched.
func (r *WeddingRepo) mutate(id int, fn func(*models.Wedding) error) (models.Wedding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	weddings, err := r.load()
	if err != nil {
		return models.Wedding{}, err
	}
	for i := range weddings {
		if weddings[i].ID != id {
			continue
		}
		if err := fn(&weddings[i]); err != nil {
			return models.Wedding{}, err
		}
		if err := r.save(weddings); err != nil {
			return models.Wedding{}, err
		}
		return weddings[i], nil
	}
	return models.Wedding{}, ErrNotFound
}

func (r *WeddingRepo) mutateImage(id int, imageID string, fn func(*models.MediaItem)) (models.Wedding, error) {
	return r.mutate(id, func(w *models.Wedding) error {
		for i := range w.Images {
			if w.Images[i].ID == imageID {
				fn(&w.Images[i])
				return nil
			}
		}
		return ErrImageNotFound
	})
}

// newFolderID derives a media directory token from the current time plus a
// short random suffix so two records created in the same millisecond still
// get distinct folders.
func newFolderID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.New().String()[:6])
}

func newImageID() string {
	return fmt.Sprintf("img-%d", time.Now().UnixNano())
}
