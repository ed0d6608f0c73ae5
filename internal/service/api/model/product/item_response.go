package product

import (
	"github.com/darkkaiser/catalog-server/internal/catalog"
)

// ItemResponse 단일 상품 조회 응답 구조체
type ItemResponse struct {
	Item catalog.Product `json:"item"`
}
