package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 로그를 여러 Writer로 분배하는 logrus Hook 구현체입니다.
//
// 단일 로그 이벤트를 중요도에 따라 Main, Critical 채널로 선별적으로 라우팅하여
// 운영 로그의 명확성을 보장하고, 콘솔 출력이 활성화된 경우 모든 레벨을 표준 출력으로도 내보냅니다.
type hook struct {
	mainWriter     io.Writer // 모든 로그를 기록하는 메인 로깅 채널
	criticalWriter io.Writer // 치명적 장애(ERROR / FATAL / PANIC)를 별도로 격리하여 보존하는 채널
	consoleWriter  io.Writer // 실시간 모니터링을 위한 표준 출력(Stdout)

	formatter Formatter

	mu sync.RWMutex // 로그 기록(Read Lock)과 종료 처리(Write Lock) 간의 동시성 제어

	closed bool // true일 경우 모든 로그 기록 요청을 거부
}

// Levels 이 Hook이 수신할 로그 레벨의 집합을 반환합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 발생한 로그 이벤트를 수신하여 레벨 기반 라우팅 정책에 따라 Writer로 분배합니다.
func (h *hook) Fire(entry *Entry) error {
	// Read Lock으로 동시 로깅을 허용하면서, 기록 중 Hook이 종료되지 않도록 보호합니다.
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	// 로그 포맷팅 (한 번만 수행하여 재사용)
	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 출력은 전체 로깅 시스템의 가용성에 영향을 주지 않도록 쓰기 실패를 전파하지 않습니다.
	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 표준 출력(Console) 쓰기 실패: %v\n", err)
		}
	}

	var firstErr error

	// Critical Writer (Error 이상)
	// 이 단계에서 쓰기 에러가 발생하더라도 메인 로그 기록은 반드시 수행되어야 하므로 에러를 유예합니다.
	if entry.Level <= ErrorLevel && h.criticalWriter != nil {
		if _, err := h.criticalWriter.Write(msg); err != nil {
			firstErr = err
		}
	}

	// Main Writer
	if h.mainWriter != nil {
		if _, err := h.mainWriter.Write(msg); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Close Hook을 비활성화하여 이후의 모든 로그 기록 요청을 차단합니다.
// 로그 파일 리소스를 해제하기 전에 호출하여, 닫힌 파일에 쓰기를 시도하는 경쟁 상태를 방지합니다.
func (h *hook) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
}
