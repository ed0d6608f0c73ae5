package mongostore

import (
	"regexp"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// trueEncodings 참으로 해석되는 플래그 필드 인코딩 목록입니다.
// catalog.ToBool이 참으로 해석하는 값과 반드시 같아야 합니다.
var trueEncodings = bson.A{1, true, "1", "true"}

// buildFilter 기준 조건을 MongoDB 필터로 변환합니다.
//
// 변환 결과는 인메모리 경로의 catalog.Criteria.MatchesBase와 행동이 동일해야
// 합니다. 특히 플래그 필터는 혼재된 인코딩(1/true/"1"/"true")과 필드명 변형,
// 그리고 필드 누락(미지정은 false로 비교)까지 인메모리 의미론을 따릅니다.
func buildFilter(criteria catalog.Criteria) bson.M {
	conditions := bson.A{}

	if criteria.Query != "" {
		regex := containsRegex(criteria.Query)
		conditions = append(conditions, bson.M{"$or": bson.A{
			bson.M{catalog.FieldName: regex},
			bson.M{catalog.FieldSKU: regex},
			bson.M{catalog.FieldDescription: regex},
			bson.M{catalog.FieldDescriptionText: regex},
		}})
	}

	if criteria.Type != "" {
		conditions = append(conditions, bson.M{catalog.FieldType: criteria.Type})
	}

	if criteria.InStock.Defined() {
		conditions = append(conditions, flagFilter(catalog.FieldInStock, catalog.FieldInStockAlt, criteria.InStock))
	}
	if criteria.Featured.Defined() {
		conditions = append(conditions, flagFilter(catalog.FieldFeatured, catalog.FieldFeaturedAlt, criteria.Featured))
	}
	if criteria.Published.Defined() {
		conditions = append(conditions, flagFilter(catalog.FieldPublished, catalog.FieldPublishedAlt, criteria.Published))
	}

	if len(conditions) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": conditions}
}

// flagFilter 3값 플래그 조건을 MongoDB 필터로 변환합니다.
//
// 플래그가 참인 레코드는 "기본 필드가 참 인코딩이거나, 기본 필드가 없고
// 변형 필드가 참 인코딩인" 레코드입니다. 거짓 조건은 그 부정($nor)으로,
// 플래그 필드가 아예 없거나 해석 불가능한 레코드도 거짓에 포함됩니다.
func flagFilter(field, altField string, state catalog.TriState) bson.M {
	truthy := bson.M{"$or": bson.A{
		bson.M{field: bson.M{"$in": trueEncodings}},
		bson.M{"$and": bson.A{
			bson.M{field: bson.M{"$exists": false}},
			bson.M{altField: bson.M{"$in": trueEncodings}},
		}},
	}}

	if state == catalog.True {
		return truthy
	}
	return bson.M{"$nor": bson.A{truthy}}
}

// containsRegex 대소문자를 무시하는 부분 일치 정규식을 생성합니다.
// 검색어의 정규식 메타 문자는 리터럴로 취급합니다.
func containsRegex(query string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}
