package product

import (
	"github.com/darkkaiser/catalog-server/internal/catalog"
)

// BucketsResponse 카테고리 단위로 묶인 응답 구조체
type BucketsResponse struct {
	Items []catalog.Bucket `json:"items"`
}
