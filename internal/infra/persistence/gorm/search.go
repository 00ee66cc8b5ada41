package gormpersistence

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"job-catalog/internal/domain"
	"job-catalog/internal/infra/setup"
)

// likeEscaper 让用户输入中的 % 和 _ 按字面匹配，'!' 是 ESCAPE 字符。
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Matcher 构造搜索用的 GORM scope。
// FoldCase 为 true 时子串匹配忽略大小写，否则沿用数据库 LIKE 的原生语义。
type Matcher struct {
	FoldCase bool
	// Lower 是折叠列值大小写的 SQL 函数，为空时使用 LOWER
	Lower string
}

// NewMatcher 按 db 的方言选择大小写折叠函数：SQLite 使用连接上注册的 unicode_lower。
func NewMatcher(db *gorm.DB, foldCase bool) Matcher {
	m := Matcher{FoldCase: foldCase}
	if db != nil && db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		m.Lower = setup.SQLiteLowerFunc
	}
	return m
}

func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// pattern 在 Go 侧折叠搜索词，列值由 likeExpr 在 SQL 中折叠。
func (m Matcher) pattern(text string) string {
	if m.FoldCase {
		text = strings.ToLower(text)
	}
	return containsPattern(text)
}

func (m Matcher) likeExpr(column string) string {
	switch {
	case !m.FoldCase:
		return fmt.Sprintf("%s LIKE ? ESCAPE '!'", column)
	case m.Lower == "":
		return fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '!'", column)
	default:
		// 自定义函数不接收 NULL，空串与 NULL 一样匹配不到非空搜索词
		return fmt.Sprintf("%s(COALESCE(%s, '')) LIKE ? ESCAPE '!'", m.Lower, column)
	}
}

// matchesAnyOf 生成 "(a LIKE ? OR b LIKE ? ...)"，任一列包含 text 即命中。
// 可空列为 NULL 时 LIKE 结果为 NULL，不会命中，也不影响其他列。
func (m Matcher) matchesAnyOf(columns []string, text string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if text == "" || len(columns) == 0 {
			return db
		}
		exprs := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		pattern := m.pattern(text)
		for _, col := range columns {
			exprs = append(exprs, m.likeExpr(col))
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(exprs, " OR ")+")", args...)
	}
}

// contains 对单列做子串匹配。
func (m Matcher) contains(column, text string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if text == "" {
			return db
		}
		return db.Where(m.likeExpr(column), m.pattern(text))
	}
}

func equals(column, value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// atLeast: column >= floor，列为 NULL 的记录同样保留。
func atLeast(column string, floor *float64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if floor == nil {
			return db
		}
		return db.Where(fmt.Sprintf("(%s IS NULL OR %s >= ?)", column, column), *floor)
	}
}

// atMost: column <= ceiling，列为 NULL 的记录同样保留。
func atMost(column string, ceiling *float64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ceiling == nil {
			return db
		}
		return db.Where(fmt.Sprintf("(%s IS NULL OR %s <= ?)", column, column), *ceiling)
	}
}

// paginate 固定按 id 升序，最后再取窗口。
func paginate(page domain.Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page = domain.NewPage(page.Offset, page.Limit)
		return db.Order("id ASC").Offset(page.Offset).Limit(page.Limit)
	}
}

var (
	vacancyTextColumns = []string{"title", "company", "skills", "description"}
	resumeTextColumns  = []string{"position", "full_name", "skills", "about"}
)

// VacancyScopes 把职位过滤条件翻译成有序的 scope 列表。
func (m Matcher) VacancyScopes(f domain.VacancyFilter) []func(*gorm.DB) *gorm.DB {
	return []func(*gorm.DB) *gorm.DB{
		m.matchesAnyOf(vacancyTextColumns, f.Text),
		m.contains("location", f.Location),
		equals("employment_type", f.EmploymentType),
		equals("experience", f.Experience),
		atLeast("salary_max", f.SalaryMin),
		atMost("salary_min", f.SalaryMax),
		paginate(f.Page),
	}
}

// ResumeScopes 同上；期望薪资同时作为上下限参与比较。
func (m Matcher) ResumeScopes(f domain.ResumeFilter) []func(*gorm.DB) *gorm.DB {
	return []func(*gorm.DB) *gorm.DB{
		m.matchesAnyOf(resumeTextColumns, f.Text),
		m.contains("location", f.Location),
		equals("employment_type", f.EmploymentType),
		equals("experience_years", f.ExperienceYears),
		atLeast("salary_expectation", f.SalaryMin),
		atMost("salary_expectation", f.SalaryMax),
		paginate(f.Page),
	}
}
