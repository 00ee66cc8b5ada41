package domain

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// Page 是分页窗口。
type Page struct {
	Offset int
	Limit  int
}

// NewPage 构造分页窗口：offset 小于 0 时取 0，limit 超出 [1, MaxLimit] 时收敛到边界，
// limit 为 0 时使用 DefaultLimit。
func NewPage(offset, limit int) Page {
	if offset < 0 {
		offset = 0
	}
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return Page{Offset: offset, Limit: limit}
}
