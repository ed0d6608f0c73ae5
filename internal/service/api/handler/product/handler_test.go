package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/model/response"
	"github.com/darkkaiser/catalog-server/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

// fakeSource 테스트용 ProductSource 구현체입니다.
// 실제 데이터 소스와 동일한 기준 조건 의미론으로 인메모리 레코드를 필터링합니다.
type fakeSource struct {
	records []catalog.Record
	err     error
}

func (f *fakeSource) Connected() bool                { return true }
func (f *fakeSource) Ensure(_ context.Context) error { return f.err }

func (f *fakeSource) Find(_ context.Context, criteria catalog.Criteria) ([]catalog.Record, error) {
	if f.err != nil {
		return nil, f.err
	}

	var matched []catalog.Record
	for _, r := range f.records {
		if criteria.MatchesBase(catalog.Normalize(r)) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeSource) FindByNameOrSKU(ctx context.Context, query string) ([]catalog.Record, error) {
	return f.Find(ctx, catalog.Criteria{Query: query})
}

func (f *fakeSource) FindCategories(_ context.Context) ([]catalog.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeSource) FindByID(_ context.Context, id string) (catalog.Record, error) {
	if f.err != nil {
		return nil, f.err
	}

	for _, r := range f.records {
		for _, key := range []string{"_id", "id", "SKU", "ID"} {
			if v, ok := r[key]; ok && catalog.Stringify(v) == id {
				return r, nil
			}
		}
	}
	return nil, storage.ErrProductNotFound
}

// 상품 모델은 직렬화 전용이므로, 응답 검증은 JSON 디코딩용 경량 구조체로 수행합니다.
type bucketJSON struct {
	Name  string           `json:"name"`
	Slug  string           `json:"slug"`
	Count int              `json:"count"`
	Items []map[string]any `json:"items"`
}

type listRespJSON struct {
	Items      []map[string]any   `json:"items"`
	Pagination catalog.Pagination `json:"pagination"`
	Filters    struct {
		Categories []bucketJSON `json:"categories"`
		Types      []string     `json:"types"`
	} `json:"filters"`
}

type bucketsRespJSON struct {
	Items []bucketJSON `json:"items"`
}

type itemRespJSON struct {
	Item map[string]any `json:"item"`
}

// testRecords 카테고리/플래그/검색 시나리오를 모두 덮는 테스트 데이터셋입니다.
func testRecords() []catalog.Record {
	return []catalog.Record{
		{
			"_id":        "p1",
			"Name":       "Eaton 9PX Online UPS",
			"SKU":        "UPS-9PX",
			"Type":       "Online",
			"Categories": "UPS > Online",
			"Images":     "https://cdn.example.com/9px-front.jpg, https://cdn.example.com/9px-rear.jpg",
			"In stock?":  1,
			"Published":  1,
		},
		{
			"_id":          "p2",
			"Name":         "Replacement Battery Cartridge",
			"SKU":          "BAT-RBC7",
			"Type":         "Battery",
			"Categories":   "Batteries",
			"Images":       []any{"https://cdn.example.com/rbc7.jpg"},
			"In stock?":    0,
			"Is featured?": "1",
			"Published":    "1",
		},
		{
			"_id":        "p3",
			"Name":       "Rack Mount Rail Kit",
			"SKU":        "ACC-RAIL",
			"Type":       "Accessory",
			"Categories": "UPS Accessories, UPS",
			"In stock?":  "true",
			"Published":  true,
		},
	}
}

func itemIDs(items []map[string]any) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		id, _ := item["id"].(string)
		ids = append(ids, id)
	}
	return ids
}

func doListRequest(t *testing.T, h *Handler, params url.Values) listRespJSON {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProductsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listRespJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 올바른 의존성으로 핸들러 생성", func(t *testing.T) {
		t.Parallel()
		assert.NotNil(t, NewHandler(&fakeSource{}))
	})

	t.Run("실패: ProductSource가 nil인 경우 Panic", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, constants.PanicMsgProductSourceRequired, func() {
			NewHandler(nil)
		})
	})
}

// =============================================================================
// List Products Tests
// =============================================================================

func TestHandler_ListProductsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params url.Values
		verify func(t *testing.T, resp listRespJSON)
	}{
		{
			name:   "성공: 조건 없이 전체 조회",
			params: url.Values{},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, 3, resp.Pagination.Total)
				assert.Len(t, resp.Items, 3)
				assert.Equal(t, 1, resp.Pagination.Page)
				assert.Equal(t, catalog.DefaultPageSize, resp.Pagination.Limit)
			},
		},
		{
			name:   "성공: 카테고리 필터 (ups, 부분 일치 포함)",
			params: url.Values{"category": {"ups"}, "limit": {"1"}, "page": {"1"}},
			verify: func(t *testing.T, resp listRespJSON) {
				// 카테고리 슬러그 부분 일치 규칙상 ups는 ups-accessories에도 일치한다.
				assert.Equal(t, 2, resp.Pagination.Total)
				assert.Len(t, resp.Items, 1)
			},
		},
		{
			name:   "성공: 카테고리 필터 (batteries)",
			params: url.Values{"category": {"batteries"}},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, []string{"p2"}, itemIDs(resp.Items))
			},
		},
		{
			name:   "성공: 검색어 필터",
			params: url.Values{"q": {"battery"}},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, []string{"p2"}, itemIDs(resp.Items))
			},
		},
		{
			name:   "성공: 유형 완전 일치 필터",
			params: url.Values{"type": {"Online"}},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, []string{"p1"}, itemIDs(resp.Items))
			},
		},
		{
			name:   "성공: 재고 플래그 필터 (inStock=1)",
			params: url.Values{"inStock": {"1"}},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, 2, resp.Pagination.Total)
				assert.NotContains(t, itemIDs(resp.Items), "p2")
			},
		},
		{
			name:   "성공: 재고 플래그 필터 (inStock=false)",
			params: url.Values{"inStock": {"false"}},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, []string{"p2"}, itemIDs(resp.Items))
			},
		},
		{
			name:   "성공: 해석 불가능한 플래그 값은 필터링하지 않음",
			params: url.Values{"inStock": {"maybe"}},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, 3, resp.Pagination.Total)
			},
		},
		{
			name:   "성공: 잘못된 page/limit 값은 기본값으로 보정",
			params: url.Values{"page": {"abc"}, "limit": {"-5"}},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, 1, resp.Pagination.Page)
				assert.Equal(t, catalog.DefaultPageSize, resp.Pagination.Limit)
			},
		},
		{
			name:   "성공: limit 상한 초과 시 최대값으로 보정",
			params: url.Values{"limit": {"999"}},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, catalog.MaxPageSize, resp.Pagination.Limit)
			},
		},
		{
			name:   "성공: 이름 오름차순 정렬",
			params: url.Values{"sort": {"name-asc"}},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, []string{"p1", "p3", "p2"}, itemIDs(resp.Items))
			},
		},
		{
			name:   "성공: 필터 후보 정보 추출 (categories/types)",
			params: url.Values{},
			verify: func(t *testing.T, resp listRespJSON) {
				assert.Equal(t, []string{"Accessory", "Battery", "Online"}, resp.Filters.Types)

				require.Len(t, resp.Filters.Categories, 3)
				// 고정된 표시 순서: BATTERY -> UPS -> UPS ACCESSORIES
				assert.Equal(t, "BATTERY", resp.Filters.Categories[0].Name)
				assert.Equal(t, "UPS", resp.Filters.Categories[1].Name)
				assert.Equal(t, "UPS ACCESSORIES", resp.Filters.Categories[2].Name)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(&fakeSource{records: testRecords()})

			tt.verify(t, doListRequest(t, h, tt.params))
		})
	}
}

func TestHandler_ListProductsHandler_StoreError(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakeSource{err: errors.New("server selection timeout")})
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListProductsHandler(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.Code)

	errResp, ok := he.Message.(*response.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, "server selection timeout", errResp.Message)
}

// =============================================================================
// Grouped By Category Tests
// =============================================================================

func TestHandler_GroupedByCategoryHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 전체 상품 카테고리 그룹핑", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(&fakeSource{records: testRecords()})
		e := echo.New()

		req := httptest.NewRequest(http.MethodGet, "/api/products/grouped-by-category", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.GroupedByCategoryHandler(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp bucketsRespJSON
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		require.Len(t, resp.Items, 3)
		for _, bucket := range resp.Items {
			assert.Equal(t, bucket.Count, len(bucket.Items), "그룹에는 상품 목록이 포함되어야 합니다")
		}
	})

	t.Run("성공: 검색어로 그룹 축소", func(t *testing.T) {
		t.Parallel()

		h := NewHandler(&fakeSource{records: testRecords()})
		e := echo.New()

		req := httptest.NewRequest(http.MethodGet, "/api/products/grouped-by-category?q=rail", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.GroupedByCategoryHandler(c))

		var resp bucketsRespJSON
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		require.Len(t, resp.Items, 1)
		assert.Equal(t, "UPS ACCESSORIES", resp.Items[0].Name)
		assert.Equal(t, 1, resp.Items[0].Count)
	})
}

// =============================================================================
// Categories Tests
// =============================================================================

func TestHandler_CategoriesHandler(t *testing.T) {
	t.Parallel()

	h := NewHandler(&fakeSource{records: testRecords()})
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CategoriesHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp bucketsRespJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Items, 3)

	// 고정된 표시 순서 검증
	assert.Equal(t, "BATTERY", resp.Items[0].Name)
	assert.Equal(t, "UPS", resp.Items[1].Name)
	assert.Equal(t, "UPS ACCESSORIES", resp.Items[2].Name)

	// 요약 목록에는 상품 목록이 포함되지 않아야 함
	for _, bucket := range resp.Items {
		assert.Empty(t, bucket.Items)
		assert.Equal(t, 1, bucket.Count)
	}
}

// =============================================================================
// Product By ID Tests
// =============================================================================

func TestHandler_ProductByIDHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		id           string
		expectedCode int
		expectedID   string
		expectedHero string
	}{
		{
			name:         "성공: 스토어 식별자로 조회",
			id:           "p1",
			expectedCode: http.StatusOK,
			expectedID:   "p1",
			expectedHero: "https://cdn.example.com/9px-front.jpg",
		},
		{
			name:         "성공: SKU로 조회",
			id:           "BAT-RBC7",
			expectedCode: http.StatusOK,
			expectedID:   "p2",
			expectedHero: "https://cdn.example.com/rbc7.jpg",
		},
		{
			name:         "실패: 존재하지 않는 식별자",
			id:           "missing",
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(&fakeSource{records: testRecords()})
			e := echo.New()

			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tt.id, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/api/products/:id")
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := h.ProductByIDHandler(c)

			if tt.expectedCode == http.StatusOK {
				require.NoError(t, err)
				require.Equal(t, http.StatusOK, rec.Code)

				var resp itemRespJSON
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedID, resp.Item["id"])
				if tt.expectedHero != "" {
					assert.Equal(t, tt.expectedHero, resp.Item["heroImage"], "대표 이미지가 없으면 첫 이미지 URL을 사용한다")
				}
				return
			}

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.expectedCode, he.Code)

			if tt.expectedCode == http.StatusNotFound {
				errResp, ok := he.Message.(*response.ErrorResponse)
				require.True(t, ok)
				assert.Equal(t, constants.ErrMsgProductNotFound, errResp.Message)
			}
		})
	}
}
