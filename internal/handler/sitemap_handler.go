package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fesikdev/site/internal/db"
	"github.com/fesikdev/site/internal/seo"
	"github.com/fesikdev/site/internal/view"
)

// staticLastMod is the advertised modification date of the fixed pages,
// bumped on content deploys.
const staticLastMod = "2025-08-15"

// SitemapXML serves the sitemap urlset: fixed pages plus one entry per
// solution and portfolio item.
func (a *API) SitemapXML(c *gin.Context) {
	builder := seo.NewBuilder(a.baseURL)
	for _, path := range view.StaticPaths() {
		builder.AddStatic(path, staticLastMod)
	}

	solutions, err := a.solutions.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Не удалось построить карту сайта")
		return
	}
	for _, solution := range solutions {
		builder.AddDetail("/resheniya/"+solution.Slug, solution.UpdatedAt)
	}

	projects, err := a.portfolio.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Не удалось построить карту сайта")
		return
	}
	for _, project := range projects {
		builder.AddDetail("/portfolio/"+project.Slug, project.UpdatedAt)
	}

	out, err := builder.Build()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Не удалось построить карту сайта")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}

// sitemapLink is one entry of the human-readable sitemap page.
type sitemapLink struct {
	URL   string
	Title string
}

// sitemapCategory groups sitemap links under a heading.
type sitemapCategory struct {
	Name  string
	Links []sitemapLink
}

// SitemapHTML renders the human-readable sitemap page grouped by
// category.
func (a *API) SitemapHTML(c *gin.Context) {
	meta, _ := view.StaticPage("/sitemap")

	categories := []sitemapCategory{
		{Name: "Основные страницы", Links: []sitemapLink{
			{URL: "/", Title: "Главная"},
			{URL: "/resheniya", Title: "Магазин решений"},
			{URL: "/portfolio", Title: "Портфолио"},
			{URL: "/o-mne", Title: "Обо мне"},
			{URL: "/kontakty", Title: "Контакты"},
		}},
		{Name: "Пакетные решения"},
		{Name: "Дополнительные модули"},
		{Name: "Портфолио"},
		{Name: "Правовая информация", Links: []sitemapLink{
			{URL: "/privacy", Title: "Политика конфиденциальности"},
			{URL: "/sitemap", Title: "Карта сайта"},
		}},
	}

	solutions, err := a.solutions.List()
	if err != nil {
		a.renderPage(c, http.StatusInternalServerError, meta, gin.H{
			"error": "Не удалось построить карту сайта",
		})
		return
	}
	for _, solution := range solutions {
		link := sitemapLink{URL: "/resheniya/" + solution.Slug, Title: solution.Name}
		switch solution.Category {
		case db.SolutionCategoryPackage:
			categories[1].Links = append(categories[1].Links, link)
		case db.SolutionCategoryModule:
			categories[2].Links = append(categories[2].Links, link)
		}
	}

	projects, err := a.portfolio.List()
	if err != nil {
		a.renderPage(c, http.StatusInternalServerError, meta, gin.H{
			"error": "Не удалось построить карту сайта",
		})
		return
	}
	for _, project := range projects {
		categories[3].Links = append(categories[3].Links, sitemapLink{
			URL:   "/portfolio/" + project.Slug,
			Title: project.Title,
		})
	}

	a.renderPage(c, http.StatusOK, meta, gin.H{
		"categories": categories,
	})
}
