package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fesikdev/site/internal/db"
	"github.com/fesikdev/site/internal/service"
	"github.com/fesikdev/site/internal/view"
)

// StaticPage returns a handler rendering the fixed marketing page at the
// given route path.
func (a *API) StaticPage(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.renderStatic(c, path)
	}
}

// NotFound renders the public 404 page for unmatched routes.
func (a *API) NotFound(c *gin.Context) {
	a.renderNotFound(c)
}

// ShowSolutions renders the solutions catalog split into package offers
// and add-on modules.
func (a *API) ShowSolutions(c *gin.Context) {
	packages, err := a.solutions.ListByCategory(db.SolutionCategoryPackage)
	if err != nil {
		a.renderSolutionsError(c)
		return
	}
	modules, err := a.solutions.ListByCategory(db.SolutionCategoryModule)
	if err != nil {
		a.renderSolutionsError(c)
		return
	}

	meta, _ := view.StaticPage("/resheniya")
	a.renderPage(c, http.StatusOK, meta, gin.H{
		"packages": packages,
		"modules":  modules,
	})
}

func (a *API) renderSolutionsError(c *gin.Context) {
	meta, _ := view.StaticPage("/resheniya")
	a.renderPage(c, http.StatusInternalServerError, meta, gin.H{
		"error": "Не удалось загрузить решения, попробуйте позже",
	})
}

// ShowSolutionDetail renders a solution page looked up by slug. Unknown
// slugs get the 404 page, never a fault.
func (a *API) ShowSolutionDetail(c *gin.Context) {
	slug := c.Param("slug")

	solution, err := a.solutions.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrSolutionNotFound) {
			a.renderNotFound(c)
			return
		}
		a.renderSolutionsError(c)
		return
	}

	meta := view.PageMeta{
		ActivePage:    "solutions",
		Title:         fmt.Sprintf("%s | Готовое решение для бизнеса СПб", solution.Name),
		H1:            solution.Name,
		CanonicalPath: "/resheniya/" + solution.Slug,
		TemplateName:  "solution_detail.html",
	}
	a.renderPage(c, http.StatusOK, meta, gin.H{
		"solution": solution,
		"imageURL": a.uploads.URL(solution.ImagePath),
	})
}

// ShowPortfolio renders the public case-study list.
func (a *API) ShowPortfolio(c *gin.Context) {
	meta, _ := view.StaticPage("/portfolio")

	items, err := a.portfolio.List()
	if err != nil {
		a.renderPage(c, http.StatusInternalServerError, meta, gin.H{
			"error": "Не удалось загрузить портфолио, попробуйте позже",
		})
		return
	}

	a.renderPage(c, http.StatusOK, meta, gin.H{
		"portfolioItems": items,
	})
}

// ShowPortfolioDetail renders a case study looked up by slug.
func (a *API) ShowPortfolioDetail(c *gin.Context) {
	slug := c.Param("slug")

	project, err := a.portfolio.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrPortfolioNotFound) {
			a.renderNotFound(c)
			return
		}
		meta, _ := view.StaticPage("/portfolio")
		a.renderPage(c, http.StatusInternalServerError, meta, gin.H{
			"error": "Не удалось загрузить проект, попробуйте позже",
		})
		return
	}

	imageURLs := make([]string, 0, len(project.Images))
	for _, img := range project.Images {
		imageURLs = append(imageURLs, a.uploads.URL(img.Path))
	}

	meta := view.PageMeta{
		ActivePage:    "portfolio",
		Title:         fmt.Sprintf("%s | Пример работы", project.Title),
		Description:   fmt.Sprintf("Проект %s - %s. Особенности: %s", project.Title, project.Package, strings.Join(project.Features, ", ")),
		H1:            project.Title,
		CanonicalPath: "/portfolio/" + project.Slug,
		TemplateName:  "portfolio_detail.html",
	}
	a.renderPage(c, http.StatusOK, meta, gin.H{
		"project":   project,
		"imageURLs": imageURLs,
	})
}

// aboutSectionView carries one rendered about block to the template.
type aboutSectionView struct {
	Body     template.HTML
	ImageURL string
}

// ShowAbout renders the about page from the stored sections, converting
// their markdown bodies to sanitized HTML.
func (a *API) ShowAbout(c *gin.Context) {
	meta, _ := view.StaticPage("/o-mne")

	sections, err := a.abouts.All()
	if err != nil {
		a.renderPage(c, http.StatusInternalServerError, meta, gin.H{
			"error": "Не удалось загрузить страницу, попробуйте позже",
		})
		return
	}

	data := gin.H{}
	for _, key := range []string{db.AboutSectionBiography, db.AboutSectionPhilosophy, db.AboutSectionTools} {
		section, ok := sections[key]
		if !ok {
			continue
		}

		body, renderErr := renderMarkdown(section.Body)
		if renderErr != nil {
			c.Error(renderErr) // отдаём страницу без этого блока
			continue
		}
		data[key] = aboutSectionView{
			Body:     body,
			ImageURL: a.uploads.URL(section.ImagePath),
		}
	}

	a.renderPage(c, http.StatusOK, meta, data)
}

// ShowContacts renders the contacts page from the singleton row.
func (a *API) ShowContacts(c *gin.Context) {
	meta, _ := view.StaticPage("/kontakty")

	info, err := a.contacts.Get()
	if err != nil {
		a.renderPage(c, http.StatusInternalServerError, meta, gin.H{
			"error": "Не удалось загрузить контакты, попробуйте позже",
		})
		return
	}

	a.renderPage(c, http.StatusOK, meta, gin.H{
		"contactInfo": info,
	})
}

// OrderForm is the placeholder order page.
func (a *API) OrderForm(c *gin.Context) {
	c.String(http.StatusOK, "Форма заказа в разработке")
}
