// internal/handlers/handlers_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"wedding-back/internal/models"
	"wedding-back/internal/progress"
	"wedding-back/internal/store"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *store.WeddingRepo, *progress.Tracker) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := store.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	repo := store.NewWeddingRepo(s, t.TempDir())
	tracker := progress.NewTracker(0)

	r := gin.New()
	r.GET("/api/mariages", ListWeddings(repo, testSecret))
	r.GET("/api/mariage/:id", GetWedding(repo, testSecret))
	r.GET("/api/thumbnail-progress", ThumbnailProgress(tracker))
	r.POST("/api/updateInputs", UpdateInputs(repo))
	return r, repo, tracker
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListWeddingsFiltersHiddenForPublic(t *testing.T) {
	r, repo, _ := newTestRouter(t)

	shown, err := repo.Create()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.ToggleVisible(shown.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/mariages", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var resp struct {
		Weddings []models.Wedding `json:"weddings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Weddings) != 1 || resp.Weddings[0].ID != shown.ID {
		t.Fatalf("public listing should contain only the visible record: %+v", resp.Weddings)
	}
}

func TestGetWeddingNotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/mariage/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestThumbnailProgressEndpoint(t *testing.T) {
	r, _, tracker := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/thumbnail-progress?processId=nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown process id should 404, got %d", w.Code)
	}

	id := tracker.Start("", 4)
	if err := tracker.Update(id, "img-1", models.ImageOutcome{Success: true}); err != nil {
		t.Fatal(err)
	}

	w = doJSON(t, r, http.MethodGet, "/api/thumbnail-progress?processId="+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var resp struct {
		Progress        int    `json:"progress"`
		ProcessedImages int    `json:"processedImages"`
		TotalImages     int    `json:"totalImages"`
		Status          string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Progress != 25 || resp.ProcessedImages != 1 || resp.TotalImages != 4 {
		t.Fatalf("unexpected progress payload: %+v", resp)
	}
	if resp.Status != models.JobRunning {
		t.Fatalf("expected running, got %s", resp.Status)
	}
}

func TestUpdateInputsIsMutuallyExclusive(t *testing.T) {
	r, repo, _ := newTestRouter(t)

	created, err := repo.Create()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.AddImage(created.ID, models.MediaItem{
		ID: "img-5", FileUrl: "u", FileType: models.FileTypeLink,
	}); err != nil {
		t.Fatal(err)
	}

	// imageId + description updates the image only.
	body := `{"id":` + itoa(created.ID) + `,"imageId":"img-5","description":"new text"}`
	w := doJSON(t, r, http.MethodPost, "/api/updateInputs", body)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	got, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Images[0].Description != "new text" {
		t.Errorf("image description not updated: %+v", got.Images[0])
	}
	if got.Description != "" {
		t.Errorf("wedding description must stay untouched: %q", got.Description)
	}

	// Without imageId the same field lands on the wedding.
	body = `{"id":` + itoa(created.ID) + `,"description":"story","title":"Un mariage"}`
	w = doJSON(t, r, http.MethodPost, "/api/updateInputs", body)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	got, err = repo.FindByID(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "story" || got.Title != "Un mariage" {
		t.Errorf("wedding fields not merged: %+v", got)
	}
}

func itoa(i int) string {
	b, _ := json.Marshal(i)
	return string(b)
}
