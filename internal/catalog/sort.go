package catalog

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey 상품 목록 정렬 기준입니다.
type SortKey string

const (
	// SortNameAsc 상품명 오름차순
	SortNameAsc SortKey = "name-asc"

	// SortNameDesc 상품명 내림차순
	SortNameDesc SortKey = "name-desc"

	// SortNewest 생성 시각 내림차순 (생성 시각이 없는 상품은 가장 오래된 것으로 간주)
	SortNewest SortKey = "newest"

	// SortFeatured 추천 상품 우선 (기본 정렬)
	SortFeatured SortKey = "featured"
)

// ParseSortKey 질의 파라미터 문자열을 정렬 기준으로 해석합니다.
// 인식할 수 없는 값은 기본 정렬인 SortFeatured로 처리합니다.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNameAsc, SortNameDesc, SortNewest, SortFeatured:
		return SortKey(s)
	}
	return SortFeatured
}

// SortProducts 상품 목록을 주어진 기준으로 정렬한 새 목록을 반환합니다.
// 입력 목록은 변경하지 않으며, 정렬은 안정적(stable)입니다.
func SortProducts(products []Product, key SortKey) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch key {
	case SortNameAsc:
		// collate.Collator는 동시 사용이 안전하지 않으므로 호출별로 생성합니다.
		collator := collate.New(language.English, collate.Loose)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Name(), sorted[j].Name()) < 0
		})
	case SortNameDesc:
		collator := collate.New(language.English, collate.Loose)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[j].Name(), sorted[i].Name()) < 0
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return createdAt(sorted[i]).After(createdAt(sorted[j]))
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].IsFeatured.Bool() && !sorted[j].IsFeatured.Bool()
		})
	}
	return sorted
}

// createdAt 상품의 생성 시각을 반환합니다. 해석할 수 없으면 zero time입니다.
func createdAt(p Product) time.Time {
	t, ok := p.Raw.Time(FieldCreatedAt)
	if !ok {
		return time.Time{}
	}
	return t
}
