package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fesikdev/site/internal/service"
	"github.com/fesikdev/site/internal/upload"
)

type solutionForm struct {
	Name         string `form:"name" binding:"required"`
	Description  string `form:"description" binding:"required"`
	Price        int    `form:"price" binding:"required,gt=0"`
	DeliveryDays int    `form:"delivery_days" binding:"required,gt=0"`
	IsNew        bool   `form:"is_new"`
	IsPopular    bool   `form:"is_popular"`
	Category     string `form:"category" binding:"omitempty,oneof=package module"`
	Slug         string `form:"slug"`
}

func (f solutionForm) toInput() service.SolutionInput {
	return service.SolutionInput{
		Name:         f.Name,
		Description:  f.Description,
		Price:        f.Price,
		DeliveryDays: f.DeliveryDays,
		IsNew:        f.IsNew,
		IsPopular:    f.IsPopular,
		Category:     f.Category,
		Slug:         f.Slug,
	}
}

// ShowSolutionList renders the admin solutions view: existing records
// plus the creation form.
func (a *API) ShowSolutionList(c *gin.Context) {
	items, err := a.solutions.List()
	if err != nil {
		a.renderAdmin(c, http.StatusInternalServerError, "admin_solutions.html", gin.H{
			"title": "Решения",
			"error": "Не удалось загрузить решения",
		})
		return
	}

	a.renderAdmin(c, http.StatusOK, "admin_solutions.html", gin.H{
		"title":     "Решения",
		"solutions": items,
	})
}

// CreateSolution handles the creation form. An attached image is stored
// before the record is committed; when the insert fails the stored file
// is removed again so no orphan stays behind.
func (a *API) CreateSolution(c *gin.Context) {
	var form solutionForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderSolutionFormError(c, http.StatusBadRequest, gin.H{"errors": fieldErrors(err)})
		return
	}

	input := form.toInput()

	var storedRef string
	if fh, err := c.FormFile("image"); err == nil {
		stored, storeErr := a.uploads.Store(fh)
		if storeErr != nil {
			a.renderSolutionFormError(c, http.StatusBadRequest, gin.H{"error": uploadErrorMessage(storeErr)})
			return
		}
		storedRef = stored.Ref
		input.ImagePath = &storedRef
	} else if !errors.Is(err, http.ErrMissingFile) {
		a.renderSolutionFormError(c, http.StatusBadRequest, gin.H{"error": "Не удалось прочитать загруженный файл"})
		return
	}

	if _, err := a.solutions.Create(input); err != nil {
		if storedRef != "" {
			a.uploads.Delete(storedRef)
		}
		a.renderSolutionFormError(c, solutionErrorStatus(err), gin.H{"error": solutionErrorMessage(err)})
		return
	}

	flash(c, "Решение добавлено!")
	c.Redirect(http.StatusFound, "/panel/solutions")
}

// UpdateSolution applies the edit form to an existing solution. The slug
// is immutable; a replaced image's old file is cleaned up after the
// record is saved.
func (a *API) UpdateSolution(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderNotFound(c)
		return
	}

	var form solutionForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderSolutionFormError(c, http.StatusBadRequest, gin.H{"errors": fieldErrors(err)})
		return
	}

	input := form.toInput()

	var storedRef string
	if fh, fileErr := c.FormFile("image"); fileErr == nil {
		stored, storeErr := a.uploads.Store(fh)
		if storeErr != nil {
			a.renderSolutionFormError(c, http.StatusBadRequest, gin.H{"error": uploadErrorMessage(storeErr)})
			return
		}
		storedRef = stored.Ref
		input.ImagePath = &storedRef
	} else if !errors.Is(fileErr, http.ErrMissingFile) {
		a.renderSolutionFormError(c, http.StatusBadRequest, gin.H{"error": "Не удалось прочитать загруженный файл"})
		return
	}

	_, replaced, err := a.solutions.Update(id, input)
	if err != nil {
		if storedRef != "" {
			a.uploads.Delete(storedRef)
		}
		a.renderSolutionFormError(c, solutionErrorStatus(err), gin.H{"error": solutionErrorMessage(err)})
		return
	}
	if replaced != "" {
		a.uploads.Delete(replaced)
	}

	flash(c, "Решение обновлено!")
	c.Redirect(http.StatusFound, "/panel/solutions")
}

// DeleteSolution removes a solution record and its image file.
func (a *API) DeleteSolution(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		a.renderNotFound(c)
		return
	}

	ref, err := a.solutions.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrSolutionNotFound) {
			a.renderNotFound(c)
			return
		}
		a.renderSolutionFormError(c, http.StatusInternalServerError, gin.H{"error": "Не удалось удалить решение"})
		return
	}
	a.uploads.Delete(ref)

	flash(c, "Решение удалено")
	c.Redirect(http.StatusFound, "/panel/solutions")
}

func (a *API) renderSolutionFormError(c *gin.Context, status int, extra gin.H) {
	items, _ := a.solutions.List()

	payload := gin.H{
		"title":     "Решения",
		"solutions": items,
	}
	for key, value := range extra {
		payload[key] = value
	}

	a.renderAdmin(c, status, "admin_solutions.html", payload)
}

func solutionErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrSolutionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrSlugImmutable),
		errors.Is(err, service.ErrSlugInvalid),
		errors.Is(err, service.ErrCategoryInvalid),
		errors.Is(err, service.ErrSolutionInvalidInput),
		errors.Is(err, upload.ErrExtensionNotAllowed),
		errors.Is(err, upload.ErrFileTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func solutionErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrSlugTaken):
		return "Такой URL-идентификатор уже используется"
	case errors.Is(err, service.ErrSlugImmutable):
		return "URL-идентификатор нельзя изменить после создания"
	case errors.Is(err, service.ErrSlugInvalid):
		return "Некорректный URL-идентификатор"
	case errors.Is(err, service.ErrCategoryInvalid):
		return "Недопустимая категория"
	case errors.Is(err, service.ErrSolutionInvalidInput):
		return "Проверьте правильность заполнения формы"
	case errors.Is(err, service.ErrSolutionNotFound):
		return "Решение не найдено"
	default:
		return "Не удалось сохранить решение"
	}
}
