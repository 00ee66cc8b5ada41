package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "job-catalog/internal/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 字段规则。创建请求的 binding 标签与这里保持一致，更新请求直接用这些规则逐字段校验。
const (
	ruleName        = "min=1,max=200"
	ruleDescription = "min=10"
	ruleNonEmpty    = "min=1"
	ruleSalary      = "gte=0"
	ruleEmail       = "mailbox"
)

// mailboxPattern: 本地部分 "@" 域名，域名至少包含一个点且各段非空。
var mailboxPattern = regexp.MustCompile(`^[^@\s]+@[^@\s.]+(\.[^@\s.]+)+$`)

var validate *validator.Validate

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		panic("dto: gin validator engine is not go-playground/validator")
	}
	v.RegisterTagNameFunc(fieldName)
	if err := v.RegisterValidation("mailbox", isMailbox); err != nil {
		panic(fmt.Sprintf("dto: register mailbox validation: %v", err))
	}
	validate = v
}

// IsMailbox 判断字符串是否为结构上合法的邮箱地址。
func IsMailbox(s string) bool {
	return mailboxPattern.MatchString(s)
}

func isMailbox(fl validator.FieldLevel) bool {
	return IsMailbox(fl.Field().String())
}

// fieldName 让校验错误使用 JSON / 查询参数中的字段名。
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

// Violations 把绑定或校验错误转换为逐字段的违规列表。
// 无法定位到字段的错误 (例如 JSON 语法错误) 归到 fallback 名下。
func Violations(err error, fallback string) []apperrors.Violation {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]apperrors.Violation, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, apperrors.Violation{Field: fe.Field(), Message: describe(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []apperrors.Violation{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
		}}
	}

	return []apperrors.Violation{{Field: fallback, Message: err.Error()}}
}

// BindError 把 gin 绑定失败包装成 VALIDATION 错误。
func BindError(err error, fallback string) error {
	return apperrors.Validation("validation failed", Violations(err, fallback)...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "mailbox":
		return "value is not a valid email address"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// checkField 按 rule 校验更新请求中出现的字段。
// nullable 为 false 的字段不允许显式传 null。
func checkField[T any](field string, o Optional[T], rule string, nullable bool, out []apperrors.Violation) []apperrors.Violation {
	if !o.Present {
		return out
	}
	if o.Null {
		if !nullable {
			out = append(out, apperrors.Violation{Field: field, Message: "may not be null"})
		}
		return out
	}
	if rule == "" {
		return out
	}
	if err := validate.Var(o.Value, rule); err != nil {
		for _, v := range Violations(err, field) {
			v.Field = field
			out = append(out, v)
		}
	}
	return out
}
