package domain

import "time"

// Resume 表示一份候选人简历。
type Resume struct {
	ID                uint      `gorm:"primaryKey"`
	FullName          string    `gorm:"size:200;index;not null"`
	Position          string    `gorm:"size:200;index;not null"` // 期望职位
	About             string    `gorm:"type:text;not null"`      // 自我介绍，至少 10 字符
	SalaryExpectation *float64                                   // 期望薪资，同时充当薪资上下限
	Location          string    `gorm:"size:200;index;not null"`
	EmploymentType    string    `gorm:"type:text;not null"`
	ExperienceYears   string    `gorm:"type:text;not null"`
	Skills            *string   `gorm:"type:text"`
	Education         *string   `gorm:"type:text"`
	Email             string    `gorm:"size:255;not null"`
	Phone             *string   `gorm:"size:64"`
	CreatedAt         time.Time `gorm:"autoCreateTime;<-:create"`
}

func (Resume) TableName() string {
	return "resumes"
}

// ResumePatch 描述一次简历的部分更新。
type ResumePatch struct {
	FullName          Change[string]
	Position          Change[string]
	About             Change[string]
	SalaryExpectation Change[float64]
	Location          Change[string]
	EmploymentType    Change[string]
	ExperienceYears   Change[string]
	Skills            Change[string]
	Education         Change[string]
	Email             Change[string]
	Phone             Change[string]
}

func (p ResumePatch) Apply(r *Resume) []string {
	var cols []string
	cols = setValue(&r.FullName, p.FullName, "full_name", cols)
	cols = setValue(&r.Position, p.Position, "position", cols)
	cols = setValue(&r.About, p.About, "about", cols)
	cols = setNullable(&r.SalaryExpectation, p.SalaryExpectation, "salary_expectation", cols)
	cols = setValue(&r.Location, p.Location, "location", cols)
	cols = setValue(&r.EmploymentType, p.EmploymentType, "employment_type", cols)
	cols = setValue(&r.ExperienceYears, p.ExperienceYears, "experience_years", cols)
	cols = setNullable(&r.Skills, p.Skills, "skills", cols)
	cols = setNullable(&r.Education, p.Education, "education", cols)
	cols = setValue(&r.Email, p.Email, "email", cols)
	cols = setNullable(&r.Phone, p.Phone, "phone", cols)
	return cols
}

// ResumeFilter 是简历搜索条件。简历只有一个薪资字段，上下限过滤都与它比较。
type ResumeFilter struct {
	Text            string // 在 position / full_name / skills / about 中做子串匹配
	Location        string
	EmploymentType  string
	ExperienceYears string
	SalaryMin       *float64
	SalaryMax       *float64
	Page            Page
}
