// Package constants API 서비스 전반에서 사용되는 상수를 정의합니다.
package constants

// 로깅 시 로그의 발생 위치(컴포넌트)를 식별하기 위한 상수입니다.
const (
	// ComponentService 서비스 로그의 컴포넌트 이름입니다.
	ComponentService = "api.service"

	// ComponentHandler 핸들러 로그의 컴포넌트 이름입니다.
	ComponentHandler = "api.handler"

	// ComponentMiddlewareRateLimit 속도 제한 미들웨어 컴포넌트 이름입니다.
	ComponentMiddlewareRateLimit = "api.middleware.rate_limit"

	// ComponentMiddlewarePanicRecovery 패닉 복구 미들웨어 컴포넌트 이름입니다.
	ComponentMiddlewarePanicRecovery = "api.middleware.panic_recovery"

	// ComponentErrorHandler 에러 핸들러 로그의 컴포넌트 이름입니다.
	ComponentErrorHandler = "api.error_handler"
)

// 헬스체크 관련 상수입니다.
const (
	// HealthStatusHealthy 정상 상태를 나타냅니다.
	HealthStatusHealthy = "healthy"

	// HealthStatusUnhealthy 비정상 상태를 나타냅니다.
	HealthStatusUnhealthy = "unhealthy"

	// DependencyProductStore 상품 저장소 의존성의 식별자입니다.
	DependencyProductStore = "product_store"

	// MsgDepStatusHealthy 의존성이 정상일 때의 상태 메시지입니다.
	MsgDepStatusHealthy = "정상 동작중"

	// MsgDepStatusFallback 저장소 미연결로 내장 데이터셋으로 동작할 때의 상태 메시지입니다.
	MsgDepStatusFallback = "저장소 미연결, 내장 데이터셋으로 동작중"
)
