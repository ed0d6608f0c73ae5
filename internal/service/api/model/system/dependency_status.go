// Package system은 시스템 API 응답 모델을 정의합니다.
package system

// DependencyStatus 개별 의존성의 상태 정보
type DependencyStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:"connection refused"`
}
