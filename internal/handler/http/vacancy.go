package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-catalog/internal/dto"
	"job-catalog/internal/service"
)

// VacancyHandler 封装了职位相关的 HTTP 处理逻辑
type VacancyHandler struct {
	vacancyService *service.VacancyService
}

// NewVacancyHandler 创建 VacancyHandler 实例
func NewVacancyHandler(vacancyService *service.VacancyService) *VacancyHandler {
	return &VacancyHandler{vacancyService: vacancyService}
}

// Create 处理 POST /api/vacancies/
func (h *VacancyHandler) Create(c *gin.Context) {
	var req dto.VacancyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleServiceError(c, dto.BindError(err, "body"))
		return
	}

	v, err := h.vacancyService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, dto.NewVacancyResponse(v))
}

// List 处理 GET /api/vacancies/?skip=&limit=
func (h *VacancyHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		HandleServiceError(c, dto.BindError(err, "query"))
		return
	}

	vs, err := h.vacancyService.List(c.Request.Context(), q.Page())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, dto.NewVacancyResponses(vs))
}

// Get 处理 GET /api/vacancies/:id
func (h *VacancyHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	v, err := h.vacancyService.Get(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, dto.NewVacancyResponse(v))
}

// Update 处理 PUT /api/vacancies/:id，只修改请求体中出现的字段
func (h *VacancyHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	var req dto.VacancyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleServiceError(c, dto.BindError(err, "body"))
		return
	}
	if err := req.Validate(); err != nil {
		HandleServiceError(c, err)
		return
	}

	v, err := h.vacancyService.Update(c.Request.Context(), id, req.Patch())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, dto.NewVacancyResponse(v))
}

// Delete 处理 DELETE /api/vacancies/:id，成功时返回 204 空响应
func (h *VacancyHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	if err := h.vacancyService.Delete(c.Request.Context(), id); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search 处理 GET /api/vacancies/search/
func (h *VacancyHandler) Search(c *gin.Context) {
	var q dto.VacancySearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		HandleServiceError(c, dto.BindError(err, "query"))
		return
	}

	vs, err := h.vacancyService.Search(c.Request.Context(), q.Filter())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, dto.NewVacancyResponses(vs))
}
