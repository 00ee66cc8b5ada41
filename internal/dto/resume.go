package dto

import (
	"time"

	"job-catalog/internal/domain"
	apperrors "job-catalog/internal/errors"
)

// ResumeCreateRequest 是创建简历的请求体。
type ResumeCreateRequest struct {
	FullName          string   `json:"full_name" binding:"required,min=1,max=200"`
	Position          string   `json:"position" binding:"required,min=1,max=200"`
	About             string   `json:"about" binding:"required,min=10"`
	SalaryExpectation *float64 `json:"salary_expectation" binding:"omitempty,gte=0"`
	Location          string   `json:"location" binding:"required,min=1,max=200"`
	EmploymentType    string   `json:"employment_type" binding:"required"`
	ExperienceYears   string   `json:"experience_years" binding:"required"`
	Skills            *string  `json:"skills"`
	Education         *string  `json:"education"`
	Email             string   `json:"email" binding:"required,mailbox"`
	Phone             *string  `json:"phone"`
}

func (r ResumeCreateRequest) ToDomain() *domain.Resume {
	return &domain.Resume{
		FullName:          r.FullName,
		Position:          r.Position,
		About:             r.About,
		SalaryExpectation: r.SalaryExpectation,
		Location:          r.Location,
		EmploymentType:    r.EmploymentType,
		ExperienceYears:   r.ExperienceYears,
		Skills:            r.Skills,
		Education:         r.Education,
		Email:             r.Email,
		Phone:             r.Phone,
	}
}

type ResumeUpdateRequest struct {
	FullName          Optional[string]  `json:"full_name"`
	Position          Optional[string]  `json:"position"`
	About             Optional[string]  `json:"about"`
	SalaryExpectation Optional[float64] `json:"salary_expectation"`
	Location          Optional[string]  `json:"location"`
	EmploymentType    Optional[string]  `json:"employment_type"`
	ExperienceYears   Optional[string]  `json:"experience_years"`
	Skills            Optional[string]  `json:"skills"`
	Education         Optional[string]  `json:"education"`
	Email             Optional[string]  `json:"email"`
	Phone             Optional[string]  `json:"phone"`
}

func (r ResumeUpdateRequest) Validate() error {
	var out []apperrors.Violation
	out = checkField("full_name", r.FullName, ruleName, false, out)
	out = checkField("position", r.Position, ruleName, false, out)
	out = checkField("about", r.About, ruleDescription, false, out)
	out = checkField("salary_expectation", r.SalaryExpectation, ruleSalary, true, out)
	out = checkField("location", r.Location, ruleName, false, out)
	out = checkField("employment_type", r.EmploymentType, ruleNonEmpty, false, out)
	out = checkField("experience_years", r.ExperienceYears, ruleNonEmpty, false, out)
	out = checkField("skills", r.Skills, "", true, out)
	out = checkField("education", r.Education, "", true, out)
	out = checkField("email", r.Email, ruleEmail, false, out)
	out = checkField("phone", r.Phone, "", true, out)
	if len(out) > 0 {
		return apperrors.Validation("validation failed", out...)
	}
	return nil
}

func (r ResumeUpdateRequest) Patch() domain.ResumePatch {
	return domain.ResumePatch{
		FullName:          r.FullName.Change(),
		Position:          r.Position.Change(),
		About:             r.About.Change(),
		SalaryExpectation: r.SalaryExpectation.Change(),
		Location:          r.Location.Change(),
		EmploymentType:    r.EmploymentType.Change(),
		ExperienceYears:   r.ExperienceYears.Change(),
		Skills:            r.Skills.Change(),
		Education:         r.Education.Change(),
		Email:             r.Email.Change(),
		Phone:             r.Phone.Change(),
	}
}

// ResumeSearchQuery 是简历搜索的查询参数。
type ResumeSearchQuery struct {
	Query           string   `form:"query"`
	Location        string   `form:"location"`
	EmploymentType  string   `form:"employment_type"`
	ExperienceYears string   `form:"experience_years"`
	SalaryMin       *float64 `form:"salary_min"`
	SalaryMax       *float64 `form:"salary_max"`
	PageQuery
}

func (q ResumeSearchQuery) Filter() domain.ResumeFilter {
	return domain.ResumeFilter{
		Text:            q.Query,
		Location:        q.Location,
		EmploymentType:  q.EmploymentType,
		ExperienceYears: q.ExperienceYears,
		SalaryMin:       q.SalaryMin,
		SalaryMax:       q.SalaryMax,
		Page:            q.Page(),
	}
}

type ResumeResponse struct {
	ID                uint      `json:"id"`
	FullName          string    `json:"full_name"`
	Position          string    `json:"position"`
	About             string    `json:"about"`
	SalaryExpectation *float64  `json:"salary_expectation"`
	Location          string    `json:"location"`
	EmploymentType    string    `json:"employment_type"`
	ExperienceYears   string    `json:"experience_years"`
	Skills            *string   `json:"skills"`
	Education         *string   `json:"education"`
	Email             string    `json:"email"`
	Phone             *string   `json:"phone"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewResumeResponse(r *domain.Resume) ResumeResponse {
	return ResumeResponse{
		ID:                r.ID,
		FullName:          r.FullName,
		Position:          r.Position,
		About:             r.About,
		SalaryExpectation: r.SalaryExpectation,
		Location:          r.Location,
		EmploymentType:    r.EmploymentType,
		ExperienceYears:   r.ExperienceYears,
		Skills:            r.Skills,
		Education:         r.Education,
		Email:             r.Email,
		Phone:             r.Phone,
		CreatedAt:         r.CreatedAt,
	}
}

func NewResumeResponses(rs []domain.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(rs))
	for i := range rs {
		out = append(out, NewResumeResponse(&rs[i]))
	}
	return out
}
