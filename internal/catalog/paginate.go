package catalog

// 페이지 크기 제한값입니다.
const (
	DefaultPageSize = 12
	MaxPageSize     = 60
)

// Pagination 페이지네이션 결과 메타데이터입니다.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Paginate 상품 목록에서 요청된 페이지 구간을 잘라 반환합니다.
//
// page는 최소 1로 보정되고, limit는 [1, MaxPageSize] 범위로 보정됩니다.
// (0 이하의 limit는 기본값 DefaultPageSize로 처리)
// 범위를 벗어난 페이지 요청은 오류 없이 빈 목록을 반환합니다.
func Paginate(products []Product, page, limit int) ([]Product, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	total := len(products)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start >= total {
		return []Product{}, Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
	}

	end := start + limit
	if end > total {
		end = total
	}

	return products[start:end], Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}
