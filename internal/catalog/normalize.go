package catalog

import (
	"encoding/json"
	"strings"

	"github.com/darkkaiser/catalog-server/pkg/strutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product 원본 레코드를 정규화한 상품 조회 모델입니다.
//
// 원본 레코드의 모든 키를 보존한 채, 조회/필터링/정렬에 필요한 파생 필드를
// 정적 타입으로 함께 보관합니다. JSON 직렬화시 파생 필드는 원본 키 위에
// 덮어씌워져 하나의 객체로 평탄화됩니다.
type Product struct {
	Raw Record

	// ID 레코드 식별자입니다. _id, id, ID, SKU 순으로 처음 존재하는 값을 취합니다.
	ID string

	// TopCategory 정식 주 카테고리명 (없으면 "Uncategorized")
	TopCategory string

	// CategorySlug TopCategory의 URL 슬러그
	CategorySlug string

	// ImageList 상품 이미지 URL 목록 (배열/쉼표 구분 문자열 모두 허용)
	ImageList []string

	// HeroImage 대표 이미지 URL. 명시된 값이 없으면 ImageList의 첫 항목입니다.
	HeroImage string

	InStock     TriState
	IsFeatured  TriState
	IsPublished TriState
}

// Normalize 스키마가 고정되지 않은 원본 레코드를 정규화된 상품 모델로 변환합니다.
func Normalize(r Record) Product {
	topCategory := ParseTopCategory(r)
	images := parseImageList(r)

	heroImage := r.Str(FieldHeroImage)
	if heroImage == "" && len(images) > 0 {
		heroImage = images[0]
	}

	return Product{
		Raw:          r,
		ID:           r.Str(FieldMongoID, FieldID, FieldNumericID, FieldSKU),
		TopCategory:  topCategory,
		CategorySlug: strutil.Slugify(topCategory),
		ImageList:    images,
		HeroImage:    heroImage,
		InStock:      recordFlag(r, FieldInStock, FieldInStockAlt),
		IsFeatured:   recordFlag(r, FieldFeatured, FieldFeaturedAlt),
		IsPublished:  recordFlag(r, FieldPublished, FieldPublishedAlt),
	}
}

// NormalizeAll 레코드 목록 전체를 정규화합니다.
func NormalizeAll(records []Record) []Product {
	products := make([]Product, 0, len(records))
	for _, r := range records {
		products = append(products, Normalize(r))
	}
	return products
}

// Name 정렬 및 검색에 사용하는 상품명입니다.
func (p Product) Name() string {
	return p.Raw.Str(FieldName, FieldNameAlt)
}

// Type 상품 유형입니다. 유형 필드가 없으면 빈 문자열을 반환합니다.
func (p Product) Type() string {
	return p.Raw.Str(FieldType)
}

// MarshalJSON 원본 레코드의 모든 키를 유지하면서 파생 필드를 덮어쓴
// 단일 JSON 객체로 직렬화합니다.
func (p Product) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Raw)+8)
	for k, v := range p.Raw {
		m[k] = v
	}

	imageList := p.ImageList
	if imageList == nil {
		imageList = []string{}
	}

	m["id"] = p.ID
	m["topCategory"] = p.TopCategory
	m["categorySlug"] = p.CategorySlug
	m["imageList"] = imageList
	m["heroImage"] = p.HeroImage
	m["inStock"] = p.InStock.Bool()
	m["isFeatured"] = p.IsFeatured.Bool()
	m["isPublished"] = p.IsPublished.Bool()

	return json.Marshal(m)
}

// recordFlag 동일한 의미의 플래그 필드 변형들 중 처음으로 존재하는 값을
// TriState로 강제 변환합니다.
func recordFlag(r Record, keys ...string) TriState {
	v, ok := r.Raw(keys...)
	if !ok {
		return Unset
	}
	return ToBool(v)
}

// parseImageList 이미지 필드를 URL 목록으로 해석합니다.
// 배열(디코딩 결과에 따라 []string 또는 []any)과 쉼표로 구분된 문자열을
// 모두 허용하며, 빈 항목은 제거합니다.
func parseImageList(r Record) []string {
	v, ok := r[FieldImages]
	if !ok || v == nil {
		return []string{}
	}

	switch t := v.(type) {
	case []string:
		images := make([]string, 0, len(t))
		for _, entry := range t {
			if entry != "" {
				images = append(images, entry)
			}
		}
		return images
	case []any:
		return stringifyEntries(t)
	case primitive.A:
		return stringifyEntries(t)
	case string:
		return strutil.SplitAndTrim(t, ",")
	}
	return []string{}
}

func stringifyEntries(entries []any) []string {
	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s := Stringify(entry); s != "" {
			images = append(images, s)
		}
	}
	return images
}

// haystack 텍스트 검색 대상이 되는 필드들을 합친 소문자 문자열입니다.
func (p Product) haystack() string {
	parts := []string{
		p.Raw.Str(FieldName),
		p.Raw.Str(FieldSKU),
		p.Raw.Str(FieldDescription),
		p.Raw.Str(FieldDescriptionText),
	}
	return strings.ToLower(strings.Join(parts, " "))
}
