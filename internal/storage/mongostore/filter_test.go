package mongostore

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilter(t *testing.T) {
	t.Run("조건이 없으면 빈 필터", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildFilter(catalog.Criteria{}))
	})

	t.Run("검색어는 이름/SKU/설명 필드의 정규식 조건", func(t *testing.T) {
		filter := buildFilter(catalog.Criteria{Query: "galaxy"})

		conditions, ok := filter["$and"].(bson.A)
		require.True(t, ok)
		require.Len(t, conditions, 1)

		or, ok := conditions[0].(bson.M)["$or"].(bson.A)
		require.True(t, ok)
		assert.Len(t, or, 4)
	})

	t.Run("정규식 메타 문자는 리터럴로 취급", func(t *testing.T) {
		regex := containsRegex("1.5kVA (Tower)")
		assert.Equal(t, regexp.QuoteMeta("1.5kVA (Tower)"), regex.Pattern)
		assert.Equal(t, "i", regex.Options)
	})

	t.Run("유형은 완전 일치 조건", func(t *testing.T) {
		filter := buildFilter(catalog.Criteria{Type: "simple"})

		conditions := filter["$and"].(bson.A)
		require.Len(t, conditions, 1)
		assert.Equal(t, bson.M{"Type": "simple"}, conditions[0])
	})

	t.Run("복합 조건", func(t *testing.T) {
		filter := buildFilter(catalog.Criteria{
			Query:     "ups",
			Type:      "simple",
			InStock:   catalog.True,
			Featured:  catalog.False,
			Published: catalog.True,
		})

		conditions := filter["$and"].(bson.A)
		assert.Len(t, conditions, 5)
	})
}

// evalFilter 필터 동등성 검증을 위한 소형 MongoDB 필터 평가기입니다.
// buildFilter가 생성하는 연산자($and, $or, $nor, $in, $exists, 정규식)만 지원합니다.
func evalFilter(filter bson.M, r catalog.Record) bool {
	for key, cond := range filter {
		switch key {
		case "$and":
			for _, sub := range cond.(bson.A) {
				if !evalFilter(sub.(bson.M), r) {
					return false
				}
			}
		case "$or":
			matched := false
			for _, sub := range cond.(bson.A) {
				if evalFilter(sub.(bson.M), r) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		case "$nor":
			for _, sub := range cond.(bson.A) {
				if evalFilter(sub.(bson.M), r) {
					return false
				}
			}
		default:
			if !evalField(r, key, cond) {
				return false
			}
		}
	}
	return true
}

func evalField(r catalog.Record, field string, cond any) bool {
	value, exists := r[field]

	switch c := cond.(type) {
	case bson.M:
		for op, operand := range c {
			switch op {
			case "$in":
				if !exists {
					return false
				}
				found := false
				for _, candidate := range operand.(bson.A) {
					if looseEqual(value, candidate) {
						found = true
						break
					}
				}
				if !found {
					return false
				}
			case "$exists":
				if operand.(bool) != exists {
					return false
				}
			default:
				panic(fmt.Sprintf("지원하지 않는 연산자: %s", op))
			}
		}
		return true
	case primitive.Regex:
		s, ok := value.(string)
		if !exists || !ok {
			return false
		}
		return regexp.MustCompile("(?i)" + c.Pattern).MatchString(s)
	default:
		return exists && looseEqual(value, cond)
	}
}

// looseEqual MongoDB의 숫자 타입 간 동등 비교를 흉내냅니다.
func looseEqual(a, b any) bool {
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return af == bf
		}
		return false
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

// TestFilterEquivalence 스토어 경로의 필터 변환이 인메모리 경로의 기준 조건
// 평가와 동일한 레코드 집합을 선택하는지 검증합니다.
func TestFilterEquivalence(t *testing.T) {
	records := []catalog.Record{
		{
			"_id": "p1", "SKU": "UPS-1500", "Name": "Galaxy Online UPS",
			"Type": "simple", "In stock?": 1, "Is featured?": "1", "Published": true,
			"descriptionText": "Double conversion online UPS",
		},
		{
			"_id": "p2", "SKU": "ACC-77", "Name": "Rail Kit",
			"Type": "accessory", "inStock": "true", "isFeatured": 0, "published": "0",
			"Description": "Mounting rail kit",
		},
		{
			"_id": "p3", "SKU": "BAT-9", "Name": "Replacement Battery",
			"Type": "simple", "In stock?": "0", "Is featured?": false,
		},
		{
			"_id": "p4", "SKU": "PDU-24", "Name": "Rack PDU",
			"In stock?": "unknown-encoding", "Published": int64(1),
		},
		{
			"_id": "p5", "SKU": "CAB-1", "Name": "Copper Cable",
		},
	}

	criteriaSet := []catalog.Criteria{
		{},
		{Query: "ups"},
		{Query: "rail kit"},
		{Query: "battery"},
		{Type: "simple"},
		{Type: "accessory"},
		{InStock: catalog.True},
		{InStock: catalog.False},
		{Featured: catalog.True},
		{Featured: catalog.False},
		{Published: catalog.True},
		{Published: catalog.False},
		{Query: "ups", InStock: catalog.True},
		{Type: "simple", Featured: catalog.True, Published: catalog.True},
		{Query: "cable", InStock: catalog.False, Published: catalog.False},
	}

	for i, criteria := range criteriaSet {
		criteria := criteria
		t.Run(fmt.Sprintf("criteria_%02d", i), func(t *testing.T) {
			filter := buildFilter(criteria)

			var storePath, memoryPath []string
			for _, r := range records {
				if evalFilter(filter, r) {
					storePath = append(storePath, r.Str(catalog.FieldMongoID))
				}
				if criteria.MatchesBase(catalog.Normalize(r)) {
					memoryPath = append(memoryPath, r.Str(catalog.FieldMongoID))
				}
			}

			assert.Equal(t, memoryPath, storePath, "두 경로가 동일한 레코드 집합을 선택해야 한다")
		})
	}
}
