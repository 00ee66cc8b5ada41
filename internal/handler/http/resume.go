package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-catalog/internal/dto"
	"job-catalog/internal/service"
)

// ResumeHandler 封装了简历相关的 HTTP 处理逻辑
type ResumeHandler struct {
	resumeService *service.ResumeService
}

// NewResumeHandler 创建 ResumeHandler 实例
func NewResumeHandler(resumeService *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Create 处理 POST /api/resumes/
func (h *ResumeHandler) Create(c *gin.Context) {
	var req dto.ResumeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleServiceError(c, dto.BindError(err, "body"))
		return
	}

	r, err := h.resumeService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, dto.NewResumeResponse(r))
}

// List 处理 GET /api/resumes/?skip=&limit=
func (h *ResumeHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		HandleServiceError(c, dto.BindError(err, "query"))
		return
	}

	rs, err := h.resumeService.List(c.Request.Context(), q.Page())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, dto.NewResumeResponses(rs))
}

// Get 处理 GET /api/resumes/:id
func (h *ResumeHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	r, err := h.resumeService.Get(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, dto.NewResumeResponse(r))
}

// Update 处理 PUT /api/resumes/:id，只修改请求体中出现的字段
func (h *ResumeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	var req dto.ResumeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleServiceError(c, dto.BindError(err, "body"))
		return
	}
	if err := req.Validate(); err != nil {
		HandleServiceError(c, err)
		return
	}

	r, err := h.resumeService.Update(c.Request.Context(), id, req.Patch())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, dto.NewResumeResponse(r))
}

// Delete 处理 DELETE /api/resumes/:id，成功时返回 204 空响应
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), id); err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search 处理 GET /api/resumes/search/
func (h *ResumeHandler) Search(c *gin.Context) {
	var q dto.ResumeSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		HandleServiceError(c, dto.BindError(err, "query"))
		return
	}

	rs, err := h.resumeService.Search(c.Request.Context(), q.Filter())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, dto.NewResumeResponses(rs))
}
