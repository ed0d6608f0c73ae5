// Package product 상품 조회 엔드포인트 핸들러를 제공합니다.
//
// 모든 엔드포인트는 읽기 전용이며, 데이터 소스에서 조회한 레코드를
// 정규화한 뒤 필터링/정렬/페이지네이션을 적용하여 응답합니다.
package product

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/darkkaiser/catalog-server/internal/catalog"
	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/darkkaiser/catalog-server/internal/service/api/constants"
	"github.com/darkkaiser/catalog-server/internal/service/api/httputil"
	"github.com/darkkaiser/catalog-server/internal/service/api/model/product"
	"github.com/darkkaiser/catalog-server/internal/storage"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// Handler 상품 조회 엔드포인트 핸들러
type Handler struct {
	productSource storage.ProductSource
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(productSource storage.ProductSource) *Handler {
	if productSource == nil {
		panic(constants.PanicMsgProductSourceRequired)
	}

	return &Handler{
		productSource: productSource,
	}
}

// ListProductsHandler godoc
// @Summary 상품 목록 조회
// @Description 검색어, 유형, 카테고리, 플래그 조건으로 상품을 필터링하고
// @Description 정렬/페이지네이션을 적용한 목록을 반환합니다.
// @Description
// @Description 플래그 파라미터(inStock, featured, published)는 1/0, true/false,
// @Description "1"/"0" 등의 느슨한 불리언 인코딩을 허용하며, 해석할 수 없거나
// @Description 생략된 값은 필터링하지 않습니다. 잘못된 page/limit 값은 400 에러
// @Description 대신 안전한 기본값으로 보정됩니다.
// @Tags Product
// @Produce json
// @Param q query string false "상품명/SKU/설명 부분 일치 검색어"
// @Param type query string false "상품 유형 완전 일치 조건"
// @Param category query string false "카테고리 슬러그"
// @Param sort query string false "정렬 기준 (name-asc, name-desc, newest, featured)"
// @Param page query int false "페이지 번호 (기본 1)"
// @Param limit query int false "페이지 크기 (1~60, 기본 12)"
// @Param inStock query string false "재고 여부 필터"
// @Param featured query string false "추천 상품 필터"
// @Param published query string false "공개 여부 필터"
// @Success 200 {object} product.ListResponse "상품 목록"
// @Failure 500 {object} response.ErrorResponse "조회 실패"
// @Router /api/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	criteria := parseCriteria(c)
	sortKey := catalog.ParseSortKey(c.QueryParam("sort"))

	// 잘못된 페이지 값은 거부하지 않고 기본값으로 보정한다.
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	records, err := h.productSource.Find(c.Request().Context(), criteria)
	if err != nil {
		return h.storeError(c, "/api/products", err)
	}

	// 기준 조건(검색어/유형/플래그)은 데이터 소스에서 적용되었으므로
	// 카테고리 조건만 정규화 이후에 평가한다.
	products := criteria.FilterCategory(catalog.NormalizeAll(records))

	// 필터 후보는 카테고리 조건까지 적용된 결과에서 추출한다.
	types := lo.Uniq(lo.FilterMap(products, func(p catalog.Product, _ int) (string, bool) {
		t := p.Type()
		return t, t != ""
	}))
	sort.Strings(types)

	filters := product.Filters{
		Categories: catalog.BuildBuckets(products),
		Types:      types,
	}

	sorted := catalog.SortProducts(products, sortKey)
	items, pagination := catalog.Paginate(sorted, page, limit)

	return c.JSON(http.StatusOK, product.ListResponse{
		Items:      items,
		Pagination: pagination,
		Filters:    filters,
	})
}

// GroupedByCategoryHandler godoc
// @Summary 카테고리별 상품 그룹 조회
// @Description 검색어에 일치하는 상품을 카테고리 단위로 묶어 반환합니다.
// @Description 검색어는 상품명과 SKU에 대해서만 부분 일치로 평가됩니다.
// @Tags Product
// @Produce json
// @Param q query string false "상품명/SKU 부분 일치 검색어"
// @Success 200 {object} product.BucketsResponse "카테고리별 상품 그룹"
// @Failure 500 {object} response.ErrorResponse "조회 실패"
// @Router /api/products/grouped-by-category [get]
func (h *Handler) GroupedByCategoryHandler(c echo.Context) error {
	records, err := h.productSource.FindByNameOrSKU(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.storeError(c, "/api/products/grouped-by-category", err)
	}

	buckets := catalog.GroupByCategory(catalog.NormalizeAll(records))

	return c.JSON(http.StatusOK, product.BucketsResponse{
		Items: buckets,
	})
}

// CategoriesHandler godoc
// @Summary 카테고리 목록 조회
// @Description 전체 상품을 카테고리별로 집계한 요약 목록을 반환합니다.
// @Tags Product
// @Produce json
// @Success 200 {object} product.BucketsResponse "카테고리 목록"
// @Failure 500 {object} response.ErrorResponse "조회 실패"
// @Router /api/categories [get]
func (h *Handler) CategoriesHandler(c echo.Context) error {
	records, err := h.productSource.FindCategories(c.Request().Context())
	if err != nil {
		return h.storeError(c, "/api/categories", err)
	}

	buckets := catalog.BuildBuckets(catalog.NormalizeAll(records))

	return c.JSON(http.StatusOK, product.BucketsResponse{
		Items: buckets,
	})
}

// ProductByIDHandler godoc
// @Summary 단일 상품 조회
// @Description 경로 파라미터의 식별자와 일치하는 상품을 반환합니다.
// @Description 스토어 고유 식별자, id, SKU, 숫자형 ID 순으로 일치를 시도합니다.
// @Tags Product
// @Produce json
// @Param id path string true "상품 식별자"
// @Success 200 {object} product.ItemResponse "상품 정보"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Failure 500 {object} response.ErrorResponse "조회 실패"
// @Router /api/products/{id} [get]
func (h *Handler) ProductByIDHandler(c echo.Context) error {
	record, err := h.productSource.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, apperrors.NotFound) {
			return httputil.NewNotFoundError(constants.ErrMsgProductNotFound)
		}
		return h.storeError(c, "/api/products/:id", err)
	}

	return c.JSON(http.StatusOK, product.ItemResponse{
		Item: catalog.Normalize(record),
	})
}

// parseCriteria 질의 파라미터에서 필터 조건을 구성합니다.
func parseCriteria(c echo.Context) catalog.Criteria {
	return catalog.Criteria{
		Query:     c.QueryParam("q"),
		Type:      c.QueryParam("type"),
		Category:  c.QueryParam("category"),
		InStock:   catalog.ParseTriState(c.QueryParam("inStock")),
		Featured:  catalog.ParseTriState(c.QueryParam("featured")),
		Published: catalog.ParseTriState(c.QueryParam("published")),
	}
}

// storeError 데이터 소스 조회 실패를 로깅하고 500 에러로 변환합니다.
func (h *Handler) storeError(c echo.Context, endpoint string, err error) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  endpoint,
		"remote_ip": c.RealIP(),
		"error":     err,
	}).Error("상품 저장소 조회 실패")

	return httputil.NewInternalServerError(err.Error())
}
