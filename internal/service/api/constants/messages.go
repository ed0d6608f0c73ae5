package constants

// 클라이언트에게 반환되는 에러 메시지 상수입니다.
const (
	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// ErrMsgProductNotFound 상품 조회 실패 메시지입니다.
	// 외부 클라이언트와의 호환성을 위해 응답 본문 메시지는 영문으로 고정합니다.
	ErrMsgProductNotFound = "Product not found"

	// 429 Too Many Requests
	ErrMsgTooManyRequests = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"
)
