package catalog

import (
	"strings"

	"github.com/darkkaiser/catalog-server/pkg/strutil"
)

// Criteria 상품 목록 조회에 적용되는 필터 조건입니다.
//
// 데이터 스토어 질의와 인메모리 필터링 양쪽에서 동일한 결과를 내야 하는
// 기준 조건(Query, Type, 플래그)과, 정규화 이후에만 평가할 수 있어 항상
// 인메모리로 적용되는 카테고리 조건으로 나뉩니다.
type Criteria struct {
	// Query 상품명, SKU, 설명 필드를 대상으로 하는 대소문자 무시 부분 일치 검색어
	Query string

	// Type 상품 유형 완전 일치 조건
	Type string

	// Category 카테고리 조건. 슬러그화하여 비교합니다.
	Category string

	InStock   TriState
	Featured  TriState
	Published TriState
}

// CategorySlug 카테고리 조건의 슬러그 표현을 반환합니다.
func (c Criteria) CategorySlug() string {
	return strutil.Slugify(c.Category)
}

// MatchesBase 카테고리를 제외한 기준 조건의 일치 여부를 평가합니다.
//
// 데이터 스토어 질의 경로에서는 이 조건이 스토어 필터로 변환되어 적용되므로,
// 변환 결과는 이 함수와 행동이 동일해야 합니다.
func (c Criteria) MatchesBase(p Product) bool {
	if c.Query != "" && !strings.Contains(p.haystack(), strings.ToLower(c.Query)) {
		return false
	}
	if c.Type != "" && p.Type() != c.Type {
		return false
	}
	if c.InStock.Defined() && p.InStock.Bool() != c.InStock.Bool() {
		return false
	}
	if c.Featured.Defined() && p.IsFeatured.Bool() != c.Featured.Bool() {
		return false
	}
	if c.Published.Defined() && p.IsPublished.Bool() != c.Published.Bool() {
		return false
	}
	return true
}

// MatchesCategory 카테고리 조건의 일치 여부를 평가합니다.
//
// 상품의 카테고리 슬러그가 정확히 일치하거나, 주 카테고리 또는 전체 카테고리
// 텍스트의 슬러그가 조건 슬러그를 부분 문자열로 포함하면 일치로 봅니다.
// 부분 문자열 포함 규칙은 의도적으로 느슨하여 "ups" 조건이 "ups-accessories"에도
// 일치합니다.
func (c Criteria) MatchesCategory(p Product) bool {
	if c.Category == "" {
		return true
	}

	slug := c.CategorySlug()
	if p.CategorySlug == slug {
		return true
	}
	if strings.Contains(strutil.Slugify(p.TopCategory), slug) {
		return true
	}
	return strings.Contains(strutil.Slugify(p.Raw.Str(FieldCategories, FieldCategoriesAlt)), slug)
}

// Matches 모든 조건의 일치 여부를 평가합니다.
func (c Criteria) Matches(p Product) bool {
	return c.MatchesBase(p) && c.MatchesCategory(p)
}

// FilterBase 기준 조건만으로 상품 목록을 필터링합니다.
func (c Criteria) FilterBase(products []Product) []Product {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if c.MatchesBase(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterCategory 카테고리 조건만으로 상품 목록을 필터링합니다.
func (c Criteria) FilterCategory(products []Product) []Product {
	if c.Category == "" {
		return products
	}

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if c.MatchesCategory(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
