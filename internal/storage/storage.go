// Package storage 상품 데이터 소스의 공통 인터페이스를 정의합니다.
//
// 운영 환경에서는 MongoDB 기반의 mongostore가, 연결 문자열이 없는 환경에서는
// 내장 데이터셋 기반의 memstore가 사용됩니다. 두 구현은 동일한 필터 의미론을
// 보장해야 하므로, 조회 조건은 catalog.Criteria로 통일하여 전달받습니다.
package storage

import (
	"context"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// ErrProductNotFound 식별자에 해당하는 상품이 존재하지 않을 때 반환되는 오류입니다.
var ErrProductNotFound = apperrors.New(apperrors.NotFound, "Product not found")

// ProductSource 상품 레코드를 조회하는 읽기 전용 데이터 소스입니다.
type ProductSource interface {
	// Connected 데이터 스토어와의 연결이 수립되어 있는지 여부를 반환합니다.
	Connected() bool

	// Ensure 데이터 스토어와의 연결을 보장합니다.
	// 이미 연결되어 있으면 아무 일도 하지 않으며, 동시에 호출되더라도
	// 연결 시도는 최대 한 번만 일어납니다.
	Ensure(ctx context.Context) error

	// Find 기준 조건(카테고리 제외)에 일치하는 상품 레코드 목록을 반환합니다.
	Find(ctx context.Context, criteria catalog.Criteria) ([]catalog.Record, error)

	// FindByNameOrSKU 상품명 또는 SKU에 대한 대소문자 무시 부분 일치로
	// 상품 레코드 목록을 반환합니다. 검색어가 비어있으면 전체를 반환합니다.
	FindByNameOrSKU(ctx context.Context, query string) ([]catalog.Record, error)

	// FindCategories 카테고리 집계에 필요한 필드만 담긴 전체 레코드 목록을 반환합니다.
	FindCategories(ctx context.Context) ([]catalog.Record, error)

	// FindByID 식별자 후보(스토어 고유 식별자, id, SKU, 숫자형 ID)와 일치하는
	// 상품 레코드를 반환합니다. 일치하는 레코드가 없으면 ErrProductNotFound를 반환합니다.
	FindByID(ctx context.Context, id string) (catalog.Record, error)
}
