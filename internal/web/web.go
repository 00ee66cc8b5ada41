// Package web 提供三张服务端渲染的页面及其静态资源，全部嵌入二进制。
// 页面只负责展示，数据通过页面脚本调用 JSON API 获取。
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// pageData 是渲染页面时传给模板的数据
type pageData struct {
	Title    string
	Resource string // 页面对应的 API 资源名，首页为空
}

// Register 加载模板并挂载 GET /、/vacancies、/resumes 与 /static/*filepath
func Register(r *gin.Engine) error {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/", render("index.html", pageData{Title: "Каталог вакансий и резюме"}))
	r.GET("/vacancies", render("vacancies.html", pageData{Title: "Вакансии", Resource: "vacancies"}))
	r.GET("/resumes", render("resumes.html", pageData{Title: "Резюме", Resource: "resumes"}))
	return nil
}

func render(name string, data pageData) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, data)
	}
}
