package handler

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"

	"github.com/fesikdev/site/internal/service"
	"github.com/fesikdev/site/internal/upload"
	"github.com/fesikdev/site/internal/view"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	auth      *service.AuthService
	abouts    *service.AboutService
	contacts  *service.ContactService
	solutions *service.SolutionService
	portfolio *service.PortfolioService
	uploads   *upload.Manager
	baseURL   string
	domain    string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploads *upload.Manager, baseURL string) *API {
	return &API{
		db:        gdb,
		auth:      service.NewAuthService(gdb),
		abouts:    service.NewAboutService(gdb),
		contacts:  service.NewContactService(gdb),
		solutions: service.NewSolutionService(gdb),
		portfolio: service.NewPortfolioService(gdb),
		uploads:   uploads,
		baseURL:   baseURL,
		domain:    domainOf(baseURL),
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// renderPage renders a public template with the shared site context and
// the page's SEO metadata merged in.
func (a *API) renderPage(c *gin.Context, status int, meta view.PageMeta, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	payload["activePage"] = meta.ActivePage
	payload["metaTitle"] = meta.Title
	payload["metaDescription"] = meta.Description
	payload["metaKeywords"] = meta.Keywords
	payload["h1"] = meta.H1
	payload["hideDefaultH1"] = meta.HideDefaultH1
	payload["domain"] = a.domain
	payload["year"] = time.Now().Year()
	if meta.CanonicalPath != "" {
		payload["canonical"] = a.baseURL + meta.CanonicalPath
	}

	c.HTML(status, meta.TemplateName, payload)
}

// renderStatic renders a fixed marketing page by its route path.
func (a *API) renderStatic(c *gin.Context, path string) {
	meta, ok := view.StaticPage(path)
	if !ok {
		a.renderNotFound(c)
		return
	}
	a.renderPage(c, http.StatusOK, meta, nil)
}

// renderNotFound renders the public 404 page.
func (a *API) renderNotFound(c *gin.Context) {
	a.renderPage(c, http.StatusNotFound, view.NotFound(), nil)
}

// renderMarkdown converts markdown content to sanitized HTML.
func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

func domainOf(baseURL string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return baseURL
	}
	return parsed.Host
}
