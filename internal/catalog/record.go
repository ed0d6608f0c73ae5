// Package catalog 스키마가 고정되지 않은 상품 원본 레코드를 정규화된 조회 모델로
// 변환하고, 카테고리 분류/집계, 필터링, 정렬, 페이지네이션을 수행하는 핵심 도메인 패키지입니다.
//
// 상품 데이터는 역사적으로 필드명이 일관되지 않게 적재되어 왔습니다.
// (예: Categories와 category 혼용, Published가 0/1, "0"/"1", true/false로 혼재)
// 이 패키지는 임의의 키를 허용하는 Record 타입과 인식 가능한 필드 변형별
// 접근자를 통해, 알 수 없는 키에 대한 관용성을 유지하면서 인식된 필드는
// 정적으로 다룰 수 있도록 합니다.
package catalog

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 인식 가능한 원본 레코드 필드명 상수입니다.
// 동일한 의미의 필드가 여러 이름으로 적재되어 있으므로, 변형까지 함께 정의합니다.
const (
	FieldMongoID   = "_id"
	FieldID        = "id"
	FieldNumericID = "ID"
	FieldSKU       = "SKU"

	FieldName    = "Name"
	FieldNameAlt = "name"
	FieldType    = "Type"

	FieldCategories    = "Categories"
	FieldCategoriesAlt = "category"

	FieldImages    = "Images"
	FieldHeroImage = "heroImage"

	FieldInStock      = "In stock?"
	FieldInStockAlt   = "inStock"
	FieldFeatured     = "Is featured?"
	FieldFeaturedAlt  = "isFeatured"
	FieldPublished    = "Published"
	FieldPublishedAlt = "published"

	FieldDescription     = "Description"
	FieldDescriptionText = "descriptionText"

	FieldCreatedAt = "createdAt"
)

// Record 외부 데이터 소스에서 적재된 상품 원본 레코드입니다.
//
// 열린(open) 키-값 매핑으로, 어떤 키가 존재하는지에 대한 보장이 없습니다.
// MongoDB의 bson.M과 호환되는 형태이므로 드라이버 디코딩 결과를 그대로 담을 수 있습니다.
type Record map[string]any

// Str 주어진 키들을 순서대로 탐색하여, 처음으로 비어있지 않은 문자열 값을 반환합니다.
// 어떤 키도 존재하지 않거나 모두 빈 값이면 빈 문자열을 반환합니다.
func (r Record) Str(keys ...string) string {
	for _, key := range keys {
		if v, ok := r[key]; ok {
			if s := Stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// Raw 주어진 키들을 순서대로 탐색하여, 처음으로 존재하는 값을 원본 타입 그대로 반환합니다.
func (r Record) Raw(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Time 주어진 키의 값을 시간으로 해석합니다.
// time.Time, MongoDB의 primitive.DateTime, RFC3339 문자열을 허용하며,
// 해석할 수 없는 경우 두 번째 반환값이 false가 됩니다.
func (r Record) Time(key string) (time.Time, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return time.Time{}, false
	}

	switch t := v.(type) {
	case time.Time:
		return t, true
	case primitive.DateTime:
		return t.Time(), true
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Stringify 이기종 타입의 값을 식별자 비교에 사용할 수 있는 문자열로 변환합니다.
//
// MongoDB 디코딩 결과로 유입될 수 있는 숫자 타입(int32, int64, float64)과
// ObjectID를 모두 처리하며, 변환할 수 없는 타입은 빈 문자열을 반환합니다.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case primitive.ObjectID:
		return t.Hex()
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// TriState 불리언 질의 파라미터와 원본 플래그 필드의 3가지 상태를 표현하는 타입입니다.
//
// 단순한 bool로는 "지정되지 않음"과 "false"를 구분할 수 없어 필터 동등성이
// 깨지므로, 명시적인 3값 타입으로 모델링합니다.
type TriState int

const (
	// Unset 값이 지정되지 않았거나 해석할 수 없는 상태 (필터링하지 않음 / 플래그로는 false)
	Unset TriState = iota

	// False 명시적인 거짓
	False

	// True 명시적인 참
	True
)

// Bool 표시용 플래그 값으로 읽습니다. Unset은 false로 간주합니다.
func (t TriState) Bool() bool {
	return t == True
}

// Defined 값이 명시적으로 지정되었는지 여부를 반환합니다.
func (t TriState) Defined() bool {
	return t != Unset
}

// ToBool 혼재된 인코딩의 불리언 값을 TriState로 강제 변환합니다.
//
// 허용되는 인코딩: true/false, 숫자 1/0 (int, int32, int64, float64 포함),
// 문자열 "1"/"0"/"true"/"false". 그 외의 값(누락 포함)은 Unset입니다.
func ToBool(v any) TriState {
	switch t := v.(type) {
	case bool:
		if t {
			return True
		}
		return False
	case int:
		return numericTriState(float64(t))
	case int32:
		return numericTriState(float64(t))
	case int64:
		return numericTriState(float64(t))
	case float64:
		return numericTriState(t)
	case float32:
		return numericTriState(float64(t))
	case string:
		switch t {
		case "1", "true":
			return True
		case "0", "false":
			return False
		}
	}
	return Unset
}

func numericTriState(f float64) TriState {
	switch f {
	case 1:
		return True
	case 0:
		return False
	}
	return Unset
}

// ParseTriState HTTP 질의 파라미터 문자열을 TriState로 해석합니다.
// 빈 문자열 및 해석 불가능한 값은 Unset(필터링하지 않음)으로 처리합니다.
func ParseTriState(s string) TriState {
	if s == "" {
		return Unset
	}
	return ToBool(s)
}
