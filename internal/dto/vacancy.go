package dto

import (
	"time"

	"job-catalog/internal/domain"
	apperrors "job-catalog/internal/errors"
)

// VacancyCreateRequest 是创建职位的请求体。
type VacancyCreateRequest struct {
	Title          string   `json:"title" binding:"required,min=1,max=200"`
	Company        string   `json:"company" binding:"required,min=1,max=200"`
	Description    string   `json:"description" binding:"required,min=10"`
	SalaryMin      *float64 `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax      *float64 `json:"salary_max" binding:"omitempty,gte=0"`
	Location       string   `json:"location" binding:"required,min=1,max=200"`
	EmploymentType string   `json:"employment_type" binding:"required"`
	Experience     string   `json:"experience" binding:"required"`
	Skills         *string  `json:"skills"`
}

func (r VacancyCreateRequest) ToDomain() *domain.Vacancy {
	return &domain.Vacancy{
		Title:          r.Title,
		Company:        r.Company,
		Description:    r.Description,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		Location:       r.Location,
		EmploymentType: r.EmploymentType,
		Experience:     r.Experience,
		Skills:         r.Skills,
	}
}

// VacancyUpdateRequest 是部分更新请求体，所有字段可选。
type VacancyUpdateRequest struct {
	Title          Optional[string]  `json:"title"`
	Company        Optional[string]  `json:"company"`
	Description    Optional[string]  `json:"description"`
	SalaryMin      Optional[float64] `json:"salary_min"`
	SalaryMax      Optional[float64] `json:"salary_max"`
	Location       Optional[string]  `json:"location"`
	EmploymentType Optional[string]  `json:"employment_type"`
	Experience     Optional[string]  `json:"experience"`
	Skills         Optional[string]  `json:"skills"`
}

// Validate 对请求中出现的字段执行与创建时相同的规则，一次返回全部违规字段。
func (r VacancyUpdateRequest) Validate() error {
	var out []apperrors.Violation
	out = checkField("title", r.Title, ruleName, false, out)
	out = checkField("company", r.Company, ruleName, false, out)
	out = checkField("description", r.Description, ruleDescription, false, out)
	out = checkField("salary_min", r.SalaryMin, ruleSalary, true, out)
	out = checkField("salary_max", r.SalaryMax, ruleSalary, true, out)
	out = checkField("location", r.Location, ruleName, false, out)
	out = checkField("employment_type", r.EmploymentType, ruleNonEmpty, false, out)
	out = checkField("experience", r.Experience, ruleNonEmpty, false, out)
	out = checkField("skills", r.Skills, "", true, out)
	if len(out) > 0 {
		return apperrors.Validation("validation failed", out...)
	}
	return nil
}

func (r VacancyUpdateRequest) Patch() domain.VacancyPatch {
	return domain.VacancyPatch{
		Title:          r.Title.Change(),
		Company:        r.Company.Change(),
		Description:    r.Description.Change(),
		SalaryMin:      r.SalaryMin.Change(),
		SalaryMax:      r.SalaryMax.Change(),
		Location:       r.Location.Change(),
		EmploymentType: r.EmploymentType.Change(),
		Experience:     r.Experience.Change(),
		Skills:         r.Skills.Change(),
	}
}

// VacancySearchQuery 是职位搜索的查询参数。
type VacancySearchQuery struct {
	Query          string   `form:"query"`
	Location       string   `form:"location"`
	EmploymentType string   `form:"employment_type"`
	Experience     string   `form:"experience"`
	SalaryMin      *float64 `form:"salary_min"`
	SalaryMax      *float64 `form:"salary_max"`
	PageQuery
}

func (q VacancySearchQuery) Filter() domain.VacancyFilter {
	return domain.VacancyFilter{
		Text:           q.Query,
		Location:       q.Location,
		EmploymentType: q.EmploymentType,
		Experience:     q.Experience,
		SalaryMin:      q.SalaryMin,
		SalaryMax:      q.SalaryMax,
		Page:           q.Page(),
	}
}

// VacancyResponse 是返回给客户端的职位记录。
type VacancyResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Description    string    `json:"description"`
	SalaryMin      *float64  `json:"salary_min"`
	SalaryMax      *float64  `json:"salary_max"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	Experience     string    `json:"experience"`
	Skills         *string   `json:"skills"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewVacancyResponse(v *domain.Vacancy) VacancyResponse {
	return VacancyResponse{
		ID:             v.ID,
		Title:          v.Title,
		Company:        v.Company,
		Description:    v.Description,
		SalaryMin:      v.SalaryMin,
		SalaryMax:      v.SalaryMax,
		Location:       v.Location,
		EmploymentType: v.EmploymentType,
		Experience:     v.Experience,
		Skills:         v.Skills,
		CreatedAt:      v.CreatedAt,
	}
}

func NewVacancyResponses(vs []domain.Vacancy) []VacancyResponse {
	out := make([]VacancyResponse, 0, len(vs))
	for i := range vs {
		out = append(out, NewVacancyResponse(&vs[i]))
	}
	return out
}
