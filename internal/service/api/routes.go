package api

import (
	"github.com/darkkaiser/catalog-server/internal/service/api/handler/product"
	"github.com/darkkaiser/catalog-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes API 서비스의 전역 라우트를 등록합니다.
//
// 이 함수는 다음과 같은 엔드포인트들을 설정합니다:
//   - 시스템 엔드포인트: 서비스 상태 확인(/health, /api/health) 및 버전 정보(/version)
//   - 상품 엔드포인트: 카테고리/상품 조회 API (/api/*)
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, productHandler *product.Handler) {
	registerSystemRoutes(e, systemHandler)
	registerProductRoutes(e, productHandler)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
	e.GET("/api/health", h.StoreHealthHandler)
}

func registerProductRoutes(e *echo.Echo, h *product.Handler) {
	e.GET("/api/categories", h.CategoriesHandler)
	e.GET("/api/products/grouped-by-category", h.GroupedByCategoryHandler)
	e.GET("/api/products", h.ListProductsHandler)
	e.GET("/api/products/:id", h.ProductByIDHandler)
}
