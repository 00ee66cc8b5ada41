package domain

import "time"

// Vacancy 表示一条职位空缺记录。
type Vacancy struct {
	ID             uint      `gorm:"primaryKey"`                     // 自增主键，由存储层分配
	Title          string    `gorm:"size:200;index;not null"`        // 职位名称，1-200 字符
	Company        string    `gorm:"size:200;index;not null"`        // 公司名称，1-200 字符
	Description    string    `gorm:"type:text;not null"`             // 职位描述，至少 10 字符
	SalaryMin      *float64                                          // 薪资下限，可为空
	SalaryMax      *float64                                          // 薪资上限，可为空 (不强制与下限的大小关系)
	Location       string    `gorm:"size:200;index;not null"`        // 搜索时做子串匹配
	EmploymentType string    `gorm:"type:text;not null"`             // Полная / Частичная / Удаленная
	Experience     string    `gorm:"type:text;not null"`             // без опыта / 1-3 года / 3-6 лет / более 6 лет
	Skills         *string   `gorm:"type:text"`                      // 逗号分隔，搜索时作为普通文本
	CreatedAt      time.Time `gorm:"autoCreateTime;<-:create"`       // 仅在插入时写入
}

func (Vacancy) TableName() string {
	return "vacancies"
}

// VacancyPatch 描述一次部分更新，只有 Set 为 true 的字段会被写入。
type VacancyPatch struct {
	Title          Change[string]
	Company        Change[string]
	Description    Change[string]
	SalaryMin      Change[float64]
	SalaryMax      Change[float64]
	Location       Change[string]
	EmploymentType Change[string]
	Experience     Change[string]
	Skills         Change[string]
}

// Apply 将补丁合并到 v 上，返回实际被修改的列名。
// created_at 不在可修改字段之列。
func (p VacancyPatch) Apply(v *Vacancy) []string {
	var cols []string
	cols = setValue(&v.Title, p.Title, "title", cols)
	cols = setValue(&v.Company, p.Company, "company", cols)
	cols = setValue(&v.Description, p.Description, "description", cols)
	cols = setNullable(&v.SalaryMin, p.SalaryMin, "salary_min", cols)
	cols = setNullable(&v.SalaryMax, p.SalaryMax, "salary_max", cols)
	cols = setValue(&v.Location, p.Location, "location", cols)
	cols = setValue(&v.EmploymentType, p.EmploymentType, "employment_type", cols)
	cols = setValue(&v.Experience, p.Experience, "experience", cols)
	cols = setNullable(&v.Skills, p.Skills, "skills", cols)
	return cols
}

// VacancyFilter 是职位搜索条件，零值字段不参与过滤。
type VacancyFilter struct {
	Text           string // 在 title / company / skills / description 中做子串匹配
	Location       string
	EmploymentType string
	Experience     string
	SalaryMin      *float64 // 与记录的 salary_max 比较
	SalaryMax      *float64 // 与记录的 salary_min 比较
	Page           Page
}
