package router

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	csrf "github.com/utrack/gin-csrf"

	"github.com/fesikdev/site/internal/config"
	"github.com/fesikdev/site/internal/handler"
)

// Setup configures the gin engine: session and rate-limit middleware,
// templates, static serving and the public + control-panel route tables.
func Setup(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("devsite_session", store))
	r.Use(handler.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"eq": func(a, b interface{}) bool {
			return a == b
		},
	})
	r.LoadHTMLGlob("web/template/**/*.html")

	// Статика, включая каталог загрузок
	r.Static("/static", "./web/static")
	r.StaticFile("/favicon.ico", "./web/static/images/logo/favicon.svg")

	r.NoRoute(api.NotFound)

	// Публичные страницы
	r.GET("/", api.StaticPage("/"))
	r.GET("/uslugi", api.StaticPage("/uslugi"))
	r.GET("/uslugi/internet-magazin", api.StaticPage("/uslugi/internet-magazin"))
	r.GET("/uslugi/mvp-dlya-startapa", api.StaticPage("/uslugi/mvp-dlya-startapa"))
	r.GET("/uslugi/sozdanie-lendinga", api.StaticPage("/uslugi/sozdanie-lendinga"))
	r.GET("/uslugi/uskorenie-sajta", api.StaticPage("/uslugi/uskorenie-sajta"))
	r.GET("/stoimost", api.StaticPage("/stoimost"))
	r.GET("/blog/kak-vybrat-frilansera-dlya-sajta-v-spb", api.StaticPage("/blog/kak-vybrat-frilansera-dlya-sajta-v-spb"))
	r.GET("/privacy", api.StaticPage("/privacy"))
	r.GET("/order", api.OrderForm)

	r.GET("/resheniya", api.ShowSolutions)
	r.GET("/resheniya/:slug", api.ShowSolutionDetail)
	r.GET("/portfolio", api.ShowPortfolio)
	r.GET("/portfolio/:slug", api.ShowPortfolioDetail)
	r.GET("/o-mne", api.ShowAbout)
	r.GET("/kontakty", api.ShowContacts)

	r.GET("/api/solutions", api.GetSolutions)
	r.GET("/sitemap.xml", api.SitemapXML)
	r.GET("/sitemap", api.SitemapHTML)

	// Панель управления
	panel := r.Group("/panel")
	panel.Use(csrf.Middleware(csrf.Options{
		Secret: cfg.SessionSecret,
		ErrorFunc: func(c *gin.Context) {
			c.String(http.StatusBadRequest, "Недействительный CSRF-токен")
			c.Abort()
		},
	}))
	{
		panel.GET("/login", api.ShowLoginPage)
		panel.POST("/login", api.Login)
		panel.GET("/logout", api.Logout)

		auth := panel.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("", api.ShowDashboard)
			auth.GET("/dashboard", api.ShowDashboard)

			auth.GET("/about", api.ShowAboutEditor)
			auth.POST("/about", api.SaveAbout)

			auth.GET("/contacts", api.ShowContactEditor)
			auth.POST("/contacts", api.SaveContacts)

			auth.GET("/solutions", api.ShowSolutionList)
			auth.POST("/solutions", api.CreateSolution)
			auth.POST("/solutions/:id", api.UpdateSolution)
			auth.POST("/solutions/:id/delete", api.DeleteSolution)

			auth.GET("/portfolio", api.ShowPortfolioList)
			auth.POST("/portfolio", api.CreatePortfolioItem)
			auth.POST("/portfolio/:id", api.UpdatePortfolioItem)
			auth.POST("/portfolio/:id/delete", api.DeletePortfolioItem)
		}
	}

	return r
}
