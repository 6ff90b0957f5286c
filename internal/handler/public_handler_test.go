package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fesikdev/site/internal/db"
	"github.com/fesikdev/site/internal/service"
)

func TestShowSolutionDetailUnknownSlugGets404(t *testing.T) {
	api := newTestAPI(t)
	router := newTestRouter()
	router.GET("/resheniya/:slug", api.ShowSolutionDetail)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/resheniya/does-not-exist", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestShowSolutionDetailBySlug(t *testing.T) {
	api := newTestAPI(t)
	created, err := api.solutions.Create(service.SolutionInput{
		Name:         "Сайт под ключ",
		Description:  "Корпоративный сайт",
		Price:        45000,
		DeliveryDays: 14,
		Category:     db.SolutionCategoryPackage,
	})
	if err != nil {
		t.Fatalf("failed to create solution: %v", err)
	}

	router := newTestRouter()
	router.GET("/resheniya/:slug", api.ShowSolutionDetail)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/resheniya/"+created.Slug, nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
}

func TestShowPortfolioDetailUnknownSlugGets404(t *testing.T) {
	api := newTestAPI(t)
	router := newTestRouter()
	router.GET("/portfolio/:slug", api.ShowPortfolioDetail)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/portfolio/net-takogo", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestStaticPagesRender(t *testing.T) {
	api := newTestAPI(t)
	router := newTestRouter()
	router.GET("/", api.StaticPage("/"))
	router.GET("/privacy", api.StaticPage("/privacy"))
	router.NoRoute(api.NotFound)

	for _, path := range []string{"/", "/privacy"} {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(recorder, request)
		if recorder.Code != http.StatusOK {
			t.Errorf("%s: expected status %d, got %d", path, http.StatusOK, recorder.Code)
		}
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status %d for unmatched route, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestShowContactsRendersBeforeFirstSave(t *testing.T) {
	api := newTestAPI(t)
	router := newTestRouter()
	router.GET("/kontakty", api.ShowContacts)

	// An empty database is a normal state, not an error page.
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/kontakty", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
}

func TestShowAboutRendersFilledSections(t *testing.T) {
	api := newTestAPI(t)
	if _, err := api.abouts.Upsert(db.AboutSectionBiography, service.AboutInput{Body: "# Биография\n\nРазработчик."}); err != nil {
		t.Fatalf("failed to fill section: %v", err)
	}

	router := newTestRouter()
	router.GET("/o-mne", api.ShowAbout)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/o-mne", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
}
