package dto

import (
	"encoding/json"

	"job-catalog/internal/domain"
)

// Optional 记录 JSON 字段是否出现以及是否为 null，用于区分“未传”与“显式清空”。
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// UnmarshalJSON 只有在字段出现在请求体中时才会被调用 (包括值为 null 的情况)。
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Change 转换为领域层的字段变更。
func (o Optional[T]) Change() domain.Change[T] {
	switch {
	case !o.Present:
		return domain.Keep[T]()
	case o.Null:
		return domain.Clear[T]()
	default:
		return domain.To(o.Value)
	}
}
