package constants

// 서비스 생명주기 로그 메시지 상수입니다.
const (
	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작된 상태입니다"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"

	LogMsgServiceHTTPServerStarting      = "HTTP 서버 시작"
	LogMsgServiceHTTPServerStopped       = "HTTP 서버 중지됨"
	LogMsgServiceHTTPServerFatalError    = "HTTP 서버 실행중에 치명적인 에러가 발생하였습니다"
	LogMsgServiceHTTPServerShutdownError = "HTTP 서버 종료중에 에러가 발생하였습니다"
	LogMsgServiceUnexpectedExit          = "HTTP 서버가 예기치 않게 종료되었습니다"
)

// HTTP 요청 처리 로그 메시지 상수입니다.
const (
	LogMsgHTTP4xxClientError = "HTTP 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 서버 내부 오류"

	LogMsgHealthCheck = "헬스체크 요청 수신"
	LogMsgVersionInfo = "버전 정보 요청 수신"
)
