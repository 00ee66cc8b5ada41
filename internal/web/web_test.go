package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-catalog/internal/web"
)

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, web.Register(r))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPages(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		path     string
		contains []string
	}{
		{"/", []string{"<title>Каталог вакансий и резюме</title>", `href="/vacancies"`, `href="/resumes"`}},
		{"/vacancies", []string{`data-resource="vacancies"`, `name="experience"`, "/static/js/catalog.js"}},
		{"/resumes", []string{`data-resource="resumes"`, `name="experience_years"`, `name="email"`}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(r, tt.path)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			for _, s := range tt.contains {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}

	assert.NotContains(t, get(r, "/").Body.String(), "catalog.js", "首页不加载页面脚本")
}

func TestStaticAssets(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/static/css/style.css", "/static/js/catalog.js"} {
		w := get(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Body.String(), path)
	}
	assert.Equal(t, http.StatusNotFound, get(r, "/static/missing.js").Code)
}
