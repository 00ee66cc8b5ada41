package domain

// Change 表示部分更新中的单个字段。
// Set 为 false：请求中没有该字段，保持原值。
// Set 为 true 且 Value 为 nil：显式清空 (仅对可空字段有效)。
type Change[T any] struct {
	Set   bool
	Value *T
}

// Keep 返回一个不修改字段的 Change。
func Keep[T any]() Change[T] {
	return Change[T]{}
}

// To 返回一个把字段设置为 v 的 Change。
func To[T any](v T) Change[T] {
	return Change[T]{Set: true, Value: &v}
}

// Clear 返回一个把可空字段清空的 Change。
func Clear[T any]() Change[T] {
	return Change[T]{Set: true}
}

// setValue 处理非空字段：没有值的 Change 被忽略。
func setValue[T any](dst *T, c Change[T], column string, cols []string) []string {
	if !c.Set || c.Value == nil {
		return cols
	}
	*dst = *c.Value
	return append(cols, column)
}

func setNullable[T any](dst **T, c Change[T], column string, cols []string) []string {
	if !c.Set {
		return cols
	}
	if c.Value == nil {
		*dst = nil
	} else {
		v := *c.Value
		*dst = &v
	}
	return append(cols, column)
}
