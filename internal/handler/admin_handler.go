package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	csrf "github.com/utrack/gin-csrf"

	"github.com/fesikdev/site/internal/db"
	"github.com/fesikdev/site/internal/service"
)

const (
	sessionKeyAdminID  = "admin_id"
	sessionKeyUsername = "username"
)

type loginForm struct {
	Username string `form:"username" binding:"required,min=4,max=80"`
	Password string `form:"password" binding:"required,min=6"`
}

// renderAdmin renders a control-panel template with the CSRF token and
// pending flash messages attached.
func (a *API) renderAdmin(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	// Токен есть только под CSRF-middleware панели
	if _, ok := c.Get("csrfSecret"); ok {
		payload["csrfToken"] = csrf.GetToken(c)
	}
	if _, exists := payload["flashes"]; !exists {
		payload["flashes"] = takeFlashes(c)
	}
	if username := sessions.Default(c).Get(sessionKeyUsername); username != nil {
		payload["username"] = username
	}

	c.HTML(status, template, payload)
}

// ShowLoginPage renders the control-panel login form. An authenticated
// admin is sent straight to the dashboard.
func (a *API) ShowLoginPage(c *gin.Context) {
	if sessions.Default(c).Get(sessionKeyAdminID) != nil {
		c.Redirect(http.StatusFound, "/panel/dashboard")
		return
	}

	a.renderAdmin(c, http.StatusOK, "login.html", gin.H{
		"title": "Вход в панель управления",
	})
}

// Login validates the submitted credential and opens the admin session.
// Unknown usernames and wrong passwords produce the same message.
func (a *API) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		a.renderAdmin(c, http.StatusBadRequest, "login.html", gin.H{
			"title":  "Вход в панель управления",
			"errors": fieldErrors(err),
		})
		return
	}

	admin, err := a.auth.Authenticate(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			a.renderAdmin(c, http.StatusUnauthorized, "login.html", gin.H{
				"title": "Вход в панель управления",
				"error": "Неверные учетные данные",
			})
			return
		}
		a.renderAdmin(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Вход в панель управления",
			"error": "Не удалось выполнить вход, попробуйте позже",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyAdminID, admin.ID)
	session.Set(sessionKeyUsername, admin.Username)
	if err := session.Save(); err != nil {
		a.renderAdmin(c, http.StatusInternalServerError, "login.html", gin.H{
			"title": "Вход в панель управления",
			"error": "Не удалось сохранить сессию",
		})
		return
	}

	c.Redirect(http.StatusFound, "/panel/dashboard")
}

// Logout drops the admin session immediately and returns to the public
// home page.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Redirect(http.StatusFound, "/")
}

// ShowDashboard renders the control-panel overview with entity counts.
func (a *API) ShowDashboard(c *gin.Context) {
	var solutionCount, portfolioCount, sectionCount int64
	a.db.Model(&db.Solution{}).Count(&solutionCount)
	a.db.Model(&db.PortfolioItem{}).Count(&portfolioCount)
	a.db.Model(&db.AboutSection{}).Count(&sectionCount)

	a.renderAdmin(c, http.StatusOK, "dashboard.html", gin.H{
		"title":          "Панель управления",
		"solutionCount":  solutionCount,
		"portfolioCount": portfolioCount,
		"sectionCount":   sectionCount,
	})
}

// AuthRequired gates control-panel routes: requests without a live admin
// session are redirected to the login page before any side effect.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionKeyAdminID) == nil {
			c.Redirect(http.StatusFound, "/panel/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
