package catalog

import (
	"strings"

	"github.com/darkkaiser/catalog-server/pkg/strutil"
)

// CanonicalCategories 카탈로그가 인정하는 주 카테고리의 정식 명칭과 노출 순서입니다.
// 카테고리 집계 결과는 항상 이 순서를 따르며, 목록에 없는 카테고리는 뒤쪽에
// 사전순으로 배치됩니다.
var CanonicalCategories = []string{
	"BATTERY",
	"COPPER ACCESSORIES",
	"COPPER CABLES",
	"ELEVATOR CABLES",
	"FIBER ACCESSORIES",
	"FIBER CABLES",
	"PDU",
	"RACK ACCESSORIES",
	"RACKS AND CABINETS",
	"TELECOM IP RACKS",
	"UPS",
	"UPS ACCESSORIES",
}

var canonicalCategoryIndex = func() map[string]int {
	m := make(map[string]int, len(CanonicalCategories))
	for i, name := range CanonicalCategories {
		m[name] = i
	}
	return m
}()

// categoryIndex 카테고리명의 정식 순서 인덱스를 반환합니다.
// 정식 목록에 없는 카테고리는 항상 목록 뒤에 오도록 큰 값을 반환합니다.
func categoryIndex(name string) int {
	if idx, ok := canonicalCategoryIndex[name]; ok {
		return idx
	}
	return len(CanonicalCategories)
}

// detectionRule 정규화된 카테고리 텍스트에서 탐지할 부분 문자열과
// 매칭시 반환할 정식 카테고리명의 쌍입니다.
type detectionRule struct {
	needles  []string
	category string
}

// detectionRules 카테고리 탐지 규칙 목록입니다.
//
// 순서가 곧 우선순위입니다. 더 구체적인 규칙이 항상 먼저 와야 하며,
// 특히 "ups"는 "ups accessories"와 "groups" 등 다른 문자열에도 포함되므로
// 반드시 마지막에 평가되어야 합니다.
var detectionRules = []detectionRule{
	{needles: []string{"ups accessories", "ups accessory"}, category: "UPS ACCESSORIES"},
	{needles: []string{"telecom ip racks", "telecom ip rack"}, category: "TELECOM IP RACKS"},
	{needles: []string{"racks and cabinets", "rack and cabinet"}, category: "RACKS AND CABINETS"},
	{needles: []string{"rack accessories", "rack accessory"}, category: "RACK ACCESSORIES"},
	{needles: []string{"fiber accessories", "fiber accessory"}, category: "FIBER ACCESSORIES"},
	{needles: []string{"fiber cables", "fiber cable"}, category: "FIBER CABLES"},
	{needles: []string{"copper accessories", "copper accessory"}, category: "COPPER ACCESSORIES"},
	{needles: []string{"copper cables", "copper cable"}, category: "COPPER CABLES"},
	{needles: []string{"elevator cables", "elevator cable"}, category: "ELEVATOR CABLES"},
	{needles: []string{"battery", "batteries"}, category: "BATTERY"},
	{needles: []string{"pdu", "power distribution unit"}, category: "PDU"},
	{needles: []string{"ups"}, category: "UPS"},
}

// ResolveCategory 상품의 최상위 카테고리 구간과 전체 카테고리 텍스트로부터
// 정식 주 카테고리명을 결정합니다.
//
// 결정 순서:
//  1. 최상위 구간, 전체 텍스트 순으로 탐지 규칙을 적용하여 첫 매칭을 채택
//  2. 탐지 실패시 최상위 구간의 대문자 표기가 정식 목록에 있으면 그대로 채택
//  3. 그 외에는 최상위 구간을 그대로 사용하고, 비어있으면 "Uncategorized"
func ResolveCategory(topSegment, fullText string) string {
	inputs := make([]string, 0, 2)
	if topSegment != "" {
		inputs = append(inputs, strutil.NormalizeMatchText(topSegment))
	}
	if fullText != "" {
		inputs = append(inputs, strutil.NormalizeMatchText(fullText))
	}

	for _, input := range inputs {
		for _, rule := range detectionRules {
			for _, needle := range rule.needles {
				if strings.Contains(input, needle) {
					return rule.category
				}
			}
		}
	}

	explicit := strings.ToUpper(strings.TrimSpace(topSegment))
	if _, ok := canonicalCategoryIndex[explicit]; ok {
		return explicit
	}

	if trimmed := strings.TrimSpace(topSegment); trimmed != "" {
		return trimmed
	}
	return "Uncategorized"
}

// ParseTopCategory 원본 레코드의 카테고리 텍스트에서 최상위 카테고리명을 해석합니다.
//
// 카테고리 텍스트는 "상위 > 하위" 형태의 계층 표기나 쉼표로 구분된 다중 표기가
// 혼재할 수 있으므로, '>'와 ',' 기준으로 첫 구간만 취한 뒤 정식 명칭으로 결정합니다.
func ParseTopCategory(r Record) string {
	categoryText := strings.TrimSpace(r.Str(FieldCategories, FieldCategoriesAlt))
	if categoryText == "" {
		return "Uncategorized"
	}

	first := strings.SplitN(categoryText, ">", 2)[0]
	first = strings.SplitN(first, ",", 2)[0]
	return ResolveCategory(strings.TrimSpace(first), categoryText)
}
