package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// crudHandler 是单种记录的六个操作
type crudHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Search(c *gin.Context)
}

// RegisterRoutes 挂载 /api/vacancies 与 /api/resumes。
// 每条路由同时注册带与不带结尾斜杠的形式，配合关闭 RedirectTrailingSlash 使用。
func RegisterRoutes(r gin.IRouter, vacancies *VacancyHandler, resumes *ResumeHandler) {
	api := r.Group("/api")
	registerResource(api.Group("/vacancies"), vacancies)
	registerResource(api.Group("/resumes"), resumes)
}

func registerResource(g *gin.RouterGroup, h crudHandler) {
	handleBoth(g, http.MethodPost, "/", h.Create)
	handleBoth(g, http.MethodGet, "/", h.List)
	// search 必须与 :id 并列注册，静态段优先匹配
	handleBoth(g, http.MethodGet, "/search/", h.Search)
	handleBoth(g, http.MethodGet, "/:id/", h.Get)
	handleBoth(g, http.MethodPut, "/:id/", h.Update)
	handleBoth(g, http.MethodDelete, "/:id/", h.Delete)
}

func handleBoth(g *gin.RouterGroup, method, path string, h gin.HandlerFunc) {
	g.Handle(method, path, h)
	g.Handle(method, strings.TrimSuffix(path, "/"), h)
}
