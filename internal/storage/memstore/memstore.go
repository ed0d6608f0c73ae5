// Package memstore 데이터 스토어 연결 없이 동작하는 내장 상품 데이터셋 기반의
// ProductSource 구현입니다.
//
// 연결 문자열이 설정되지 않은 환경에서 서비스가 기능 축소 모드로 기동할 때
// 사용되며, 필터링 의미론은 스토어 기반 구현과 동일합니다.
package memstore

import (
	"context"
	_ "embed"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/internal/storage"
	"github.com/tidwall/gjson"
)

//go:embed fallback.json
var fallbackJSON []byte

// Store 내장 데이터셋 기반 ProductSource 구현체입니다.
// 데이터셋은 생성 시점에 한 번 파싱되며 이후 읽기 전용으로 사용됩니다.
type Store struct {
	records []catalog.Record
}

var _ storage.ProductSource = (*Store)(nil)

// New 내장 데이터셋을 파싱하여 Store를 생성합니다.
func New() (*Store, error) {
	if !gjson.ValidBytes(fallbackJSON) {
		return nil, apperrors.New(apperrors.ParsingFailed, "내장 상품 데이터셋이 유효한 JSON이 아닙니다.")
	}

	parsed := gjson.ParseBytes(fallbackJSON)
	if !parsed.IsArray() {
		return nil, apperrors.New(apperrors.ParsingFailed, "내장 상품 데이터셋은 배열이어야 합니다.")
	}

	var records []catalog.Record
	for _, item := range parsed.Array() {
		m, ok := item.Value().(map[string]any)
		if !ok {
			return nil, apperrors.New(apperrors.ParsingFailed, "내장 상품 데이터셋에 객체가 아닌 항목이 포함되어 있습니다.")
		}
		records = append(records, catalog.Record(m))
	}

	return &Store{records: records}, nil
}

// Connected 항상 false를 반환합니다. 내장 데이터셋은 외부 연결을 사용하지 않습니다.
func (s *Store) Connected() bool {
	return false
}

// Ensure 아무 일도 하지 않습니다.
func (s *Store) Ensure(_ context.Context) error {
	return nil
}

// Find 기준 조건에 일치하는 레코드 목록을 반환합니다.
func (s *Store) Find(_ context.Context, criteria catalog.Criteria) ([]catalog.Record, error) {
	matched := make([]catalog.Record, 0, len(s.records))
	for _, r := range s.records {
		if criteria.MatchesBase(catalog.Normalize(r)) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// FindByNameOrSKU 검색어 조건만으로 레코드 목록을 반환합니다.
func (s *Store) FindByNameOrSKU(ctx context.Context, query string) ([]catalog.Record, error) {
	return s.Find(ctx, catalog.Criteria{Query: query})
}

// FindCategories 전체 레코드 목록을 반환합니다.
// 내장 데이터셋은 projection이 필요할 만큼 크지 않으므로 전체를 그대로 반환합니다.
func (s *Store) FindCategories(_ context.Context) ([]catalog.Record, error) {
	return append([]catalog.Record(nil), s.records...), nil
}

// FindByID 식별자 후보와 일치하는 레코드를 반환합니다.
func (s *Store) FindByID(_ context.Context, id string) (catalog.Record, error) {
	for _, r := range s.records {
		candidates := []string{
			r.Str(catalog.FieldMongoID),
			r.Str(catalog.FieldID),
			r.Str(catalog.FieldSKU),
			r.Str(catalog.FieldNumericID),
		}
		for _, candidate := range candidates {
			if candidate != "" && candidate == id {
				return r, nil
			}
		}
	}
	return nil, storage.ErrProductNotFound
}
