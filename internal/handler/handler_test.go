package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fesikdev/site/internal/db"
	"github.com/fesikdev/site/internal/upload"
)

type stubHTMLRender struct{}

type stubHTMLInstance struct {
	name string
	data interface{}
}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	return &stubHTMLInstance{name: name, data: data}
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

// newTestAPI wires a handler set over a private in-memory database and a
// throwaway upload directory.
func newTestAPI(t *testing.T) *API {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%s-%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	models := []interface{}{
		&db.Admin{}, &db.AboutSection{}, &db.ContactInfo{},
		&db.Solution{}, &db.PortfolioItem{},
	}
	if err := gdb.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	uploads := upload.NewManager(t.TempDir(), "/static/uploads", []string{"png", "jpg"}, 16<<20)
	return NewAPI(gdb, uploads, "https://fesik-dev.ru")
}

// newTestRouter builds a bare engine with the stub template renderer and
// the cookie session store routes expect.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HTMLRender = &stubHTMLRender{}
	router.Use(sessions.Sessions("devsite_session", cookie.NewStore([]byte("test-secret"))))
	return router
}
