// Package service 애플리케이션을 구성하는 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 독립적인 생명주기를 가지는 백그라운드 서비스입니다.
//
// 서비스는 Start 호출로 고루틴에서 실행을 시작하며, 전달받은 Context가
// 취소되면 정리 작업을 수행한 뒤 WaitGroup에 종료 완료를 알립니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
