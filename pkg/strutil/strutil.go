// Package strutil은 카탈로그 데이터 정규화에 필요한 문자열 처리 유틸리티를 제공합니다.
package strutil

import (
	"regexp"
	"strings"
)

var (
	// Slugify에서 사용하는 정규식
	// 영문 소문자/숫자가 아닌 문자의 연속을 하나의 하이픈으로 축약합니다.
	nonAlnumRegexp = regexp.MustCompile(`[^a-z0-9]+`)

	// 슬러그 앞뒤에 남은 하이픈을 제거하는 정규식
	edgeHyphenRegexp = regexp.MustCompile(`^-+|-+$`)
)

// Slugify 표시용 이름을 URL-safe한 소문자 하이픈 식별자로 변환합니다.
// 예: "UPS Accessories" -> "ups-accessories", "Racks & Cabinets" -> "racks-and-cabinets"
//
// 변환 규칙:
//  1. 앞뒤 공백 제거 후 소문자로 변환
//  2. '&' 문자는 단어 "and"로 치환
//  3. 영문/숫자가 아닌 문자의 연속은 하이픈 하나로 축약
//  4. 앞뒤에 남은 하이픈 제거
func Slugify(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = strings.ReplaceAll(s, "&", "and")
	s = nonAlnumRegexp.ReplaceAllString(s, "-")
	return edgeHyphenRegexp.ReplaceAllString(s, "")
}

// NormalizeMatchText 카테고리 매칭 휴리스틱에 사용할 비교용 문자열을 생성합니다.
// Slugify와 동일한 규칙을 적용한 뒤 하이픈을 공백으로 되돌려,
// "UPS > Single Phase Online RT" 같은 자유 형식 텍스트를
// "ups single phase online rt"처럼 단어 단위 부분 일치가 가능한 형태로 만듭니다.
func NormalizeMatchText(value string) string {
	return strings.ReplaceAll(Slugify(value), "-", " ")
}

// NormalizeSpaces 문자열의 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  hello   world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}

// IsBlank 문자열이 비어있거나 공백 문자로만 구성되어 있는지 여부를 반환합니다.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Mask 민감한 문자열을 로그에 남길 수 있는 형태로 마스킹합니다.
// 앞 4자만 남기고 나머지는 "***"로 대체하며, 4자 이하의 문자열은 전체를 가립니다.
// 예: "secret123" -> "secr***"
func Mask(s string) string {
	if len(s) <= 4 {
		return "***"
	}
	return s[:4] + "***"
}

// SplitAndTrim 문자열을 구분자로 분리한 뒤 각 항목의 앞뒤 공백을 제거하고,
// 빈 항목은 결과에서 제외합니다. 순서는 입력 순서를 유지합니다.
func SplitAndTrim(s string, sep string) []string {
	if s == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(s, sep) {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
