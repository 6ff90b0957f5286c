package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fesikdev/site/internal/service"
)

type contactForm struct {
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phone" binding:"required"`
	Address  string `form:"address" binding:"required"`
	Telegram string `form:"telegram" binding:"required"`
	GitHub   string `form:"github" binding:"required"`
}

// ShowContactEditor renders the contact info form pre-filled with the
// current singleton row.
func (a *API) ShowContactEditor(c *gin.Context) {
	info, err := a.contacts.Get()
	if err != nil {
		a.renderAdmin(c, http.StatusInternalServerError, "admin_contacts.html", gin.H{
			"title": "Контакты",
			"error": "Не удалось загрузить контактную информацию",
		})
		return
	}

	a.renderAdmin(c, http.StatusOK, "admin_contacts.html", gin.H{
		"title":    "Контакты",
		"contacts": info,
	})
}

// SaveContacts upserts the singleton contact row.
func (a *API) SaveContacts(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		info, _ := a.contacts.Get()
		a.renderAdmin(c, http.StatusBadRequest, "admin_contacts.html", gin.H{
			"title":    "Контакты",
			"contacts": info,
			"errors":   fieldErrors(err),
		})
		return
	}

	_, err := a.contacts.Upsert(service.ContactInput{
		Email:    form.Email,
		Phone:    form.Phone,
		Address:  form.Address,
		Telegram: form.Telegram,
		GitHub:   form.GitHub,
	})
	if err != nil {
		a.renderAdmin(c, http.StatusInternalServerError, "admin_contacts.html", gin.H{
			"title": "Контакты",
			"error": "Не удалось сохранить контактную информацию",
		})
		return
	}

	flash(c, "Контактная информация обновлена!")
	c.Redirect(http.StatusFound, "/panel/contacts")
}
