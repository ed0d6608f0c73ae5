// Package product는 상품 API 응답 모델을 정의합니다.
package product

import (
	"github.com/darkkaiser/catalog-server/internal/catalog"
)

// Filters 목록 조회 결과에서 추출한 필터 후보 정보
type Filters struct {
	Categories []catalog.Bucket `json:"categories"`
	Types      []string         `json:"types"`
}

// ListResponse 상품 목록 조회 응답 구조체
type ListResponse struct {
	Items      []catalog.Product  `json:"items"`
	Pagination catalog.Pagination `json:"pagination"`
	Filters    Filters            `json:"filters"`
}
