// Package response는 API 공통 응답 모델을 정의합니다.
package response

// ErrorResponse API 에러 응답 구조체
type ErrorResponse struct {
	Message string `json:"message" example:"Product not found"`
}

// NewErrorResponse ErrorResponse 객체를 생성하여 반환한다.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Message: message,
	}
}
