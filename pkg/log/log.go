package log

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// SetDebugMode 디버그 모드 활성화 여부에 따라 전역 로그 레벨을 조정합니다.
// 환경설정 로드가 완료된 이후, 최종 로그 레벨을 확정할 때 사용합니다.
func SetDebugMode(debug bool) {
	if debug {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// New 독립적인 로거 인스턴스를 생성하여 반환합니다.
// 전역 로거와 설정을 공유하지 않아야 하는 경우(테스트, 외부 라이브러리 연동 등)에 사용합니다.
func New() *log.Logger {
	return log.New()
}

// SetOutput 전역 로거의 출력 Writer를 설정합니다.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetFormatter 전역 로거의 포맷터를 설정합니다.
func SetFormatter(formatter log.Formatter) {
	log.SetFormatter(formatter)
}

// SetLevel 전역 로거의 레벨을 설정합니다.
func SetLevel(level Level) {
	log.SetLevel(level)
}

// StandardLogger 전역 logrus 로거 인스턴스를 반환합니다.
// Echo 프레임워크 등 외부 라이브러리와의 로거 통합에 사용합니다.
func StandardLogger() *log.Logger {
	return log.StandardLogger()
}

// WithFields 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields log.Fields) *log.Entry {
	return log.WithFields(fields)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
// 모든 로그에 component 필드를 일관되게 추가하기 위해 사용합니다.
func WithComponent(component string) *log.Entry {
	return log.WithFields(log.Fields{
		"component": component,
	})
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields log.Fields) *log.Entry {
	newFields := make(log.Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return log.WithFields(newFields)
}
