package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"job-catalog/internal/dto"
	apperrors "job-catalog/internal/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVacancy() dto.VacancyCreateRequest {
	return dto.VacancyCreateRequest{
		Title:          "Python Developer",
		Company:        "Tech Company",
		Description:    "Ищем опытного Python разработчика",
		Location:       "Москва",
		EmploymentType: "Полная",
		Experience:     "3-6 лет",
	}
}

func fields(err error) []string {
	de, ok := apperrors.As(err)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(de.Violations))
	for _, v := range de.Violations {
		out = append(out, v.Field)
	}
	return out
}

func TestVacancyCreateRequest_Valid(t *testing.T) {
	require.NoError(t, binding.Validator.ValidateStruct(validVacancy()))
}

func TestVacancyCreateRequest_EmptyTitle(t *testing.T) {
	req := validVacancy()
	req.Title = ""

	err := binding.Validator.ValidateStruct(req)
	require.Error(t, err)

	violations := dto.Violations(err, "body")
	require.Len(t, violations, 1)
	assert.Equal(t, "title", violations[0].Field)
	assert.Equal(t, "field required", violations[0].Message)
}

func TestVacancyCreateRequest_ReportsEveryViolation(t *testing.T) {
	negative := -1.0
	req := dto.VacancyCreateRequest{
		Title:       string(make([]rune, 201)),
		Description: "short",
		SalaryMin:   &negative,
	}

	err := binding.Validator.ValidateStruct(req)
	require.Error(t, err)

	got := fields(dto.BindError(err, "body"))
	assert.ElementsMatch(t, []string{
		"title", "company", "description", "salary_min", "location", "employment_type", "experience",
	}, got)
}

func TestVacancyCreateRequest_CyrillicLengthCountsRunes(t *testing.T) {
	req := validVacancy()
	req.Description = "Описание!!" // 10 个字符，20 个字节

	assert.NoError(t, binding.Validator.ValidateStruct(req))
}

func TestResumeCreateRequest_Email(t *testing.T) {
	base := dto.ResumeCreateRequest{
		FullName:        "Test Person",
		Position:        "Test Position",
		About:           "Test About",
		Location:        "Москва",
		EmploymentType:  "Полная",
		ExperienceYears: "1-3 года",
	}

	tests := []struct {
		email string
		ok    bool
	}{
		{"ivanov@example.com", true},
		{"first.last@mail.example.ru", true},
		{"invalid-email", false},
		{"user@localhost", false},
		{"user@.com", false},
		{"user name@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			req := base
			req.Email = tt.email
			err := binding.Validator.ValidateStruct(req)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, []string{"email"}, fields(dto.BindError(err, "body")))
		})
	}
}

func TestOptional_UnmarshalDistinguishesOmittedAndNull(t *testing.T) {
	var req dto.VacancyUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New Title","salary_max":null}`), &req))

	assert.True(t, req.Title.Present)
	assert.False(t, req.Title.Null)
	assert.Equal(t, "New Title", req.Title.Value)

	assert.True(t, req.SalaryMax.Present)
	assert.True(t, req.SalaryMax.Null)

	assert.False(t, req.Company.Present)
	assert.False(t, req.SalaryMin.Present)

	patch := req.Patch()
	assert.True(t, patch.Title.Set)
	assert.Equal(t, "New Title", *patch.Title.Value)
	assert.True(t, patch.SalaryMax.Set)
	assert.Nil(t, patch.SalaryMax.Value)
	assert.False(t, patch.Company.Set)
}

func TestVacancyUpdateRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{"empty body", `{}`, nil},
		{"single valid field", `{"title":"New Title"}`, nil},
		{"clear optional salary", `{"salary_min":null,"skills":null}`, nil},
		{"empty title", `{"title":""}`, []string{"title"}},
		{"null required field", `{"company":null}`, []string{"company"}},
		{"short description", `{"description":"short"}`, []string{"description"}},
		{"negative salary", `{"salary_max":-10}`, []string{"salary_max"}},
		{"several", `{"title":"","location":"","salary_min":-1}`, []string{"title", "salary_min", "location"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.VacancyUpdateRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := req.Validate()
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrTypeValidation, apperrors.TypeOf(err))
			assert.ElementsMatch(t, tt.fields, fields(err))
		})
	}
}

func TestResumeUpdateRequest_Validate(t *testing.T) {
	var req dto.ResumeUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":"invalid-email","phone":null,"full_name":"New Name"}`), &req))

	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"email"}, fields(err))

	req.Email = dto.Optional[string]{}
	assert.NoError(t, req.Validate())

	patch := req.Patch()
	assert.True(t, patch.Phone.Set)
	assert.Nil(t, patch.Phone.Value)
	assert.Equal(t, "New Name", *patch.FullName.Value)
}

func TestVacancySearchQuery_Filter(t *testing.T) {
	floor := 1000.0
	q := dto.VacancySearchQuery{
		Query:     "Python",
		Location:  "Москва",
		SalaryMin: &floor,
		PageQuery: dto.PageQuery{Skip: 5, Limit: 20},
	}

	f := q.Filter()
	assert.Equal(t, "Python", f.Text)
	assert.Equal(t, "Москва", f.Location)
	assert.Equal(t, &floor, f.SalaryMin)
	assert.Nil(t, f.SalaryMax)
	assert.Equal(t, 5, f.Page.Offset)
	assert.Equal(t, 20, f.Page.Limit)
}

func TestIsMailbox(t *testing.T) {
	assert.True(t, dto.IsMailbox("a@b.co"))
	assert.False(t, dto.IsMailbox("a@b"))
	assert.False(t, dto.IsMailbox("@b.co"))
	assert.False(t, dto.IsMailbox("a@@b.co"))
}

func TestLocationLengthLimit(t *testing.T) {
	long := strings.Repeat("Я", 201)

	req := validVacancy()
	req.Location = long
	err := binding.Validator.ValidateStruct(req)
	require.Error(t, err)
	assert.Equal(t, []string{"location"}, fields(dto.BindError(err, "body")))

	req.Location = strings.Repeat("Я", 200)
	assert.NoError(t, binding.Validator.ValidateStruct(req))

	var upd dto.ResumeUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"location":"`+long+`"}`), &upd))
	assert.Equal(t, []string{"location"}, fields(upd.Validate()))
}
