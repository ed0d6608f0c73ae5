package catalog

import "sort"

// Bucket 카테고리별 상품 집계 결과입니다.
// 카테고리 목록 조회에서는 Items 없이 건수만, 카테고리별 그룹 조회에서는
// 해당 카테고리의 상품 목록까지 포함합니다.
type Bucket struct {
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Count int       `json:"count"`
	Items []Product `json:"items,omitempty"`
}

// BuildBuckets 상품 목록을 카테고리 슬러그 기준으로 집계합니다.
//
// 동일 슬러그에서 처음 만난 상품의 주 카테고리명이 버킷의 표시 이름이 되며,
// 결과는 정식 카테고리 순서, 그 다음 이름의 사전순으로 정렬됩니다.
func BuildBuckets(products []Product) []Bucket {
	return buildBuckets(products, false)
}

// GroupByCategory 상품 목록을 카테고리별로 그룹화하여 각 버킷에
// 소속 상품 목록까지 담아 반환합니다. 정렬 규칙은 BuildBuckets와 동일합니다.
func GroupByCategory(products []Product) []Bucket {
	return buildBuckets(products, true)
}

func buildBuckets(products []Product, withItems bool) []Bucket {
	index := make(map[string]int)
	buckets := make([]Bucket, 0)

	for _, p := range products {
		slug := p.CategorySlug
		if slug == "" {
			slug = "uncategorized"
		}

		pos, ok := index[slug]
		if !ok {
			name := p.TopCategory
			if name == "" {
				name = "Uncategorized"
			}
			pos = len(buckets)
			index[slug] = pos
			buckets = append(buckets, Bucket{Name: name, Slug: slug})
		}

		buckets[pos].Count++
		if withItems {
			buckets[pos].Items = append(buckets[pos].Items, p)
		}
	}

	sortBuckets(buckets)
	return buckets
}

// sortBuckets 버킷 목록을 정식 카테고리 순서, 동순위는 이름의 사전순으로 정렬합니다.
// 정식 목록에 없는 카테고리는 항상 뒤쪽에 배치됩니다.
func sortBuckets(buckets []Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		iIdx, jIdx := categoryIndex(buckets[i].Name), categoryIndex(buckets[j].Name)
		if iIdx != jIdx {
			return iIdx < jIdx
		}
		return buckets[i].Name < buckets[j].Name
	})
}
