package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fesikdev/site/internal/db"
	"github.com/fesikdev/site/internal/service"
	"github.com/fesikdev/site/internal/upload"
)

type portfolioForm struct {
	Title       string `form:"title" binding:"required"`
	Category    string `form:"category" binding:"required"`
	Package     string `form:"package" binding:"required"`
	Duration    string `form:"duration" binding:"required"`
	Geo         string `form:"geo" binding:"required"`
	Features    string `form:"features"`
	Testimonial string `form:"testimonial"`
	Client      string `form:"client"`
	LiveURL     string `form:"live_url" binding:"omitempty,url"`
	Slug        string `form:"slug"`
}

func (f portfolioForm) toInput() service.PortfolioInput {
	return service.PortfolioInput{
		Title:       f.Title,
		Category:    f.Category,
		Package:     f.Package,
		Duration:    f.Duration,
		Geo:         f.Geo,
		FeaturesRaw: f.Features,
		Testimonial: f.Testimonial,
		Client:      f.Client,
		LiveURL:     f.LiveURL,
		Slug:        f.Slug,
	}
}

// ShowPortfolioList renders the admin portfolio view: existing case
// studies plus the creation form.
func (a *API) ShowPortfolioList(c *gin.Context) {
	items, err := a.portfolio.List()
	if err != nil {
		a.renderAdmin(c, http.StatusInternalServerError, "admin_portfolio.html", gin.H{
			"title": "Портфолио",
			"error": "Не удалось загрузить портфолио",
		})
		return
	}

	a.renderAdmin(c, http.StatusOK, "admin_portfolio.html", gin.H{
		"title":          "Портфолио",
		"portfolioItems": items,
	})
}

// CreatePortfolioItem handles the creation form with its multi-image
// upload. The image batch is stored all-or-nothing before the record is
// committed; when the insert fails every stored file of the batch is
// removed again.
func (a *API) CreatePortfolioItem(c *gin.Context) {
	var form portfolioForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderPortfolioFormError(c, http.StatusBadRequest, gin.H{"errors": fieldErrors(err)})
		return
	}

	input := form.toInput()

	stored, err := a.storePortfolioImages(c)
	if err != nil {
		a.renderPortfolioFormError(c, http.StatusBadRequest, gin.H{"error": uploadErrorMessage(err)})
		return
	}
	if stored != nil {
		input.Images = stored
	}

	if _, err := a.portfolio.Create(input); err != nil {
		deletePortfolioImages(a.uploads, stored)
		a.renderPortfolioFormError(c, portfolioErrorStatus(err), gin.H{"error": portfolioErrorMessage(err)})
		return
	}

	flash(c, "Проект добавлен в портфолио!")
	c.Redirect(http.StatusFound, "/panel/portfolio")
}

// UpdatePortfolioItem applies the edit form. The slug is immutable. When
// a new image batch is submitted it fully replaces the stored one and
// the superseded files are cleaned up after the record is saved.
func (a *API) UpdatePortfolioItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderNotFound(c)
		return
	}

	var form portfolioForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderPortfolioFormError(c, http.StatusBadRequest, gin.H{"errors": fieldErrors(err)})
		return
	}

	input := form.toInput()

	stored, storeErr := a.storePortfolioImages(c)
	if storeErr != nil {
		a.renderPortfolioFormError(c, http.StatusBadRequest, gin.H{"error": uploadErrorMessage(storeErr)})
		return
	}
	if stored != nil {
		input.Images = stored
	}

	_, replaced, err := a.portfolio.Update(id, input)
	if err != nil {
		deletePortfolioImages(a.uploads, stored)
		a.renderPortfolioFormError(c, portfolioErrorStatus(err), gin.H{"error": portfolioErrorMessage(err)})
		return
	}
	for _, ref := range replaced {
		a.uploads.Delete(ref)
	}

	flash(c, "Проект обновлен!")
	c.Redirect(http.StatusFound, "/panel/portfolio")
}

// DeletePortfolioItem removes a case study and all of its image files.
func (a *API) DeletePortfolioItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderNotFound(c)
		return
	}

	refs, err := a.portfolio.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrPortfolioNotFound) {
			a.renderNotFound(c)
			return
		}
		a.renderPortfolioFormError(c, http.StatusInternalServerError, gin.H{"error": "Не удалось удалить проект"})
		return
	}
	for _, ref := range refs {
		a.uploads.Delete(ref)
	}

	flash(c, "Проект удален")
	c.Redirect(http.StatusFound, "/panel/portfolio")
}

// storePortfolioImages persists the submitted image batch in submission
// order. A nil result with nil error means no files were attached.
func (a *API) storePortfolioImages(c *gin.Context) ([]db.PortfolioImage, error) {
	mpForm, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := mpForm.File["images"]
	if len(files) == 0 {
		return nil, nil
	}

	stored, err := a.uploads.StoreAll(files)
	if err != nil {
		return nil, err
	}

	images := make([]db.PortfolioImage, 0, len(stored))
	for _, file := range stored {
		images = append(images, db.PortfolioImage{
			Path:   file.Ref,
			Width:  file.Width,
			Height: file.Height,
		})
	}
	return images, nil
}

func deletePortfolioImages(m *upload.Manager, images []db.PortfolioImage) {
	for _, img := range images {
		m.Delete(img.Path)
	}
}

func (a *API) renderPortfolioFormError(c *gin.Context, status int, extra gin.H) {
	items, _ := a.portfolio.List()

	payload := gin.H{
		"title":          "Портфолио",
		"portfolioItems": items,
	}
	for key, value := range extra {
		payload[key] = value
	}

	a.renderAdmin(c, status, "admin_portfolio.html", payload)
}

func portfolioErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrPortfolioNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrSlugImmutable),
		errors.Is(err, service.ErrSlugInvalid),
		errors.Is(err, service.ErrPortfolioInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func portfolioErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrSlugTaken):
		return "Такой URL-идентификатор уже используется"
	case errors.Is(err, service.ErrSlugImmutable):
		return "URL-идентификатор нельзя изменить после создания"
	case errors.Is(err, service.ErrSlugInvalid):
		return "Некорректный URL-идентификатор"
	case errors.Is(err, service.ErrPortfolioInvalidInput):
		return "Проверьте правильность заполнения формы"
	case errors.Is(err, service.ErrPortfolioNotFound):
		return "Проект не найден"
	default:
		return "Не удалось сохранить проект"
	}
}
