package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func loginRouter(api *API) *gin.Engine {
	router := newTestRouter()
	router.POST("/panel/login", api.Login)
	router.GET("/panel/login", api.ShowLoginPage)
	router.GET("/panel/logout", api.Logout)

	protected := router.Group("/panel", AuthRequired())
	protected.GET("/dashboard", api.ShowDashboard)
	return router
}

func postLogin(router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/panel/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestLoginRejectsWrongCredential(t *testing.T) {
	api := newTestAPI(t)
	if _, _, err := api.auth.EnsureDefaultAdmin("", ""); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	router := loginRouter(api)

	recorder := postLogin(router, "admin", "wrong-password")
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, recorder.Code)
	}

	// Unknown account must look exactly like a wrong password.
	recorder = postLogin(router, "nobody-here", "wrong-password")
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d for unknown user, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestLoginValidatesFormBeforeAuth(t *testing.T) {
	api := newTestAPI(t)
	router := loginRouter(api)

	// Username below the minimum length fails binding, not auth.
	recorder := postLogin(router, "ab", "password123")
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestLoginOpensSessionAndRedirects(t *testing.T) {
	api := newTestAPI(t)
	if _, _, err := api.auth.EnsureDefaultAdmin("", ""); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	router := loginRouter(api)

	recorder := postLogin(router, "admin", "Tdutif_85")
	if recorder.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", recorder.Code)
	}
	if loc := recorder.Header().Get("Location"); loc != "/panel/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %q", loc)
	}

	cookies := recorder.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}

	// The issued cookie must unlock the protected panel.
	dashRecorder := httptest.NewRecorder()
	dashRequest := httptest.NewRequest(http.MethodGet, "/panel/dashboard", nil)
	for _, c := range cookies {
		dashRequest.AddCookie(c)
	}
	router.ServeHTTP(dashRecorder, dashRequest)
	if dashRecorder.Code != http.StatusOK {
		t.Fatalf("expected dashboard 200 with session, got %d", dashRecorder.Code)
	}
}

func TestAuthRequiredRedirectsAnonymous(t *testing.T) {
	api := newTestAPI(t)
	router := loginRouter(api)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/panel/dashboard", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", recorder.Code)
	}
	if loc := recorder.Header().Get("Location"); loc != "/panel/login" {
		t.Fatalf("expected redirect to login, got %q", loc)
	}
}

func TestLogoutDropsSessionImmediately(t *testing.T) {
	api := newTestAPI(t)
	if _, _, err := api.auth.EnsureDefaultAdmin("", ""); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	router := loginRouter(api)

	loginRecorder := postLogin(router, "admin", "Tdutif_85")
	sessionCookies := loginRecorder.Result().Cookies()

	logoutRecorder := httptest.NewRecorder()
	logoutRequest := httptest.NewRequest(http.MethodGet, "/panel/logout", nil)
	for _, c := range sessionCookies {
		logoutRequest.AddCookie(c)
	}
	router.ServeHTTP(logoutRecorder, logoutRequest)
	if logoutRecorder.Code != http.StatusFound {
		t.Fatalf("expected redirect after logout, got %d", logoutRecorder.Code)
	}
	if loc := logoutRecorder.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to home, got %q", loc)
	}

	// The cleared cookie must no longer open the panel.
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/panel/dashboard", nil)
	for _, c := range logoutRecorder.Result().Cookies() {
		request.AddCookie(c)
	}
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusFound {
		t.Fatalf("expected redirect with cleared session, got %d", recorder.Code)
	}
}

func TestShowLoginPageRedirectsAuthenticatedAdmin(t *testing.T) {
	api := newTestAPI(t)
	if _, _, err := api.auth.EnsureDefaultAdmin("", ""); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	router := loginRouter(api)

	cookies := postLogin(router, "admin", "Tdutif_85").Result().Cookies()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/panel/login", nil)
	for _, c := range cookies {
		request.AddCookie(c)
	}
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected redirect for logged-in admin, got %d", recorder.Code)
	}
	if loc := recorder.Header().Get("Location"); loc != "/panel/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %q", loc)
	}
}
