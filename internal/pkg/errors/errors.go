// Package errors 애플리케이션 전용 에러 처리 시스템을 제공합니다.
//
// 이 패키지는 표준 errors 패키지를 확장하여 타입 기반 에러 분류와
// 에러 체이닝을 지원합니다. 모든 에러는 ErrorType으로 분류되며,
// Wrap 함수를 통해 컨텍스트를 누적할 수 있습니다.
//
// # ErrorType 선택 가이드
//
// Unknown:
//   - 분류할 수 없는 에러 (기본값, 사용 지양)
//
// Internal:
//   - 애플리케이션 내부 로직 오류 (버그로 간주)
//
// System:
//   - 시스템 또는 인프라 수준의 장애 (파일 I/O, 설정 로드 실패 등)
//
// InvalidInput:
//   - 입력값 검증 실패 (설정 파일 정합성 오류 등)
//
// NotFound:
//   - 요청한 리소스를 찾을 수 없음 (예: 존재하지 않는 상품 ID)
//
// StoreUnavailable:
//   - 데이터 저장소(MongoDB) 연결 실패, 질의 실패, 질의 타임아웃
//   - 요청 단위의 장애로 처리하며 재시도하지 않음
//
// ParsingFailed:
//   - 데이터 파싱, 변환, 디코딩 실패 (Fallback 데이터셋 파싱 오류 등)
package errors

import (
	"errors"
	"fmt"
)

// ErrorType 에러의 종류를 나타내는 타입
type ErrorType string

const (
	// 일반적인 에러 타입
	Unknown      ErrorType = "Unknown"
	Internal     ErrorType = "Internal"
	System       ErrorType = "System"
	InvalidInput ErrorType = "InvalidInput"
	NotFound     ErrorType = "NotFound"

	// Domain Specific Errors
	StoreUnavailable ErrorType = "StoreUnavailable"
	ParsingFailed    ErrorType = "ParsingFailed"
)

// AppError 애플리케이션 전용 에러 구조체
type AppError struct {
	Type    ErrorType // 에러 종류
	Message string    // 사용자에게 보여줄 메시지
	Cause   error     // 원인 에러 (Wrapping)
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, msg string) error {
	return &AppError{
		Type:    errType,
		Message: msg,
	}
}

// Newf 포맷 문자열을 사용하여 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 기존 에러를 감싸서 새로운 에러를 생성합니다.
func Wrap(err error, errType ErrorType, msg string) error {
	return &AppError{
		Type:    errType,
		Message: msg,
		Cause:   err,
	}
}

// Is 에러 타입이 일치하는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// As 표준 errors.As 함수를 래핑합니다.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetType 에러 타입을 반환합니다. AppError가 아니거나 nil이면 Unknown을 반환합니다.
func GetType(err error) ErrorType {
	if err == nil {
		return Unknown
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return Unknown
}

// RootCause 에러 체인의 최상위 원인 에러를 반환합니다.
// 중첩된 에러를 재귀적으로 unwrap하여 가장 근본적인 원인을 찾습니다.
func RootCause(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
