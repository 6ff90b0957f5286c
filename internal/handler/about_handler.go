package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fesikdev/site/internal/db"
	"github.com/fesikdev/site/internal/service"
)

type aboutForm struct {
	Body string `form:"content" binding:"required"`
}

// ShowAboutEditor renders the editor for one about-page section.
func (a *API) ShowAboutEditor(c *gin.Context) {
	section := c.DefaultQuery("section", db.AboutSectionBiography)
	if !service.ValidSection(section) {
		a.renderNotFound(c)
		return
	}

	content, err := a.abouts.Get(section)
	if err != nil {
		a.renderAdmin(c, http.StatusInternalServerError, "admin_about.html", gin.H{
			"title":   "Обо мне",
			"section": section,
			"error":   "Не удалось загрузить раздел",
		})
		return
	}

	a.renderAdmin(c, http.StatusOK, "admin_about.html", gin.H{
		"title":    "Обо мне",
		"section":  section,
		"content":  content,
		"imageURL": a.aboutImageURL(content),
	})
}

// SaveAbout upserts the submitted section. A new image is stored before
// the record is persisted and the superseded file is cleaned up
// best-effort; a text-only submission keeps the current image.
func (a *API) SaveAbout(c *gin.Context) {
	section := c.DefaultQuery("section", db.AboutSectionBiography)
	if !service.ValidSection(section) {
		a.renderNotFound(c)
		return
	}

	var form aboutForm
	if err := c.ShouldBind(&form); err != nil {
		content, _ := a.abouts.Get(section)
		a.renderAdmin(c, http.StatusBadRequest, "admin_about.html", gin.H{
			"title":   "Обо мне",
			"section": section,
			"content": content,
			"errors":  fieldErrors(err),
		})
		return
	}

	input := service.AboutInput{Body: form.Body}

	if fh, err := c.FormFile("image"); err == nil {
		current, getErr := a.abouts.Get(section)
		old := ""
		if getErr == nil && current != nil {
			old = current.ImagePath
		}

		stored, storeErr := a.uploads.Replace(old, fh)
		if storeErr != nil {
			content, _ := a.abouts.Get(section)
			a.renderAdmin(c, http.StatusBadRequest, "admin_about.html", gin.H{
				"title":   "Обо мне",
				"section": section,
				"content": content,
				"error":   uploadErrorMessage(storeErr),
			})
			return
		}
		input.ImagePath = &stored.Ref
	} else if !errors.Is(err, http.ErrMissingFile) {
		a.renderAdmin(c, http.StatusBadRequest, "admin_about.html", gin.H{
			"title":   "Обо мне",
			"section": section,
			"error":   "Не удалось прочитать загруженный файл",
		})
		return
	}

	if _, err := a.abouts.Upsert(section, input); err != nil {
		a.renderAdmin(c, http.StatusInternalServerError, "admin_about.html", gin.H{
			"title":   "Обо мне",
			"section": section,
			"error":   "Не удалось сохранить изменения",
		})
		return
	}

	flash(c, "Изменения сохранены!")
	c.Redirect(http.StatusFound, "/panel/about?section="+section)
}

func (a *API) aboutImageURL(content *db.AboutSection) string {
	if content == nil {
		return ""
	}
	return a.uploads.URL(content.ImagePath)
}
