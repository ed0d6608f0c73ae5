package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/darkkaiser/catalog-server/internal/config"
	"github.com/darkkaiser/catalog-server/internal/pkg/version"
	"github.com/darkkaiser/catalog-server/internal/service"
	"github.com/darkkaiser/catalog-server/internal/service/api"
	"github.com/darkkaiser/catalog-server/internal/storage"
	"github.com/darkkaiser/catalog-server/internal/storage/memstore"
	"github.com/darkkaiser/catalog-server/internal/storage/mongostore"
	applog "github.com/darkkaiser/catalog-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// 빌드 정보 변수 (Dockerfile의 ldflags로 주입됨)
var (
	Version     = "dev"     // Git 커밋 해시
	BuildDate   = "unknown" // 빌드 날짜
	BuildNumber = "0"       // 빌드 번호
)

const (
	banner = `
   ____        _          _                   ____
  / ___| __ _ | |_  __ _ | |  ___    __ _    / ___|   ___  _ __ __   __  ___  _ __
 | |    / _' || __|/ _' || | / _ \  / _' |   \___ \  / _ \| '__|\ \ / / / _ \| '__|
 | |___| (_| || |_| (_| || || (_) || (_| |    ___) ||  __/| |    \ V / |  __/| |
  \____|\__,_| \__|\__,_||_| \___/  \__, |   |____/  \___||_|     \_/   \___||_|
                                    |___/                         %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, Version)

	// 빌드 정보 설정 (전역 싱글톤 등록)
	buildInfo := version.Info{
		Version:     Version,
		BuildDate:   BuildDate,
		BuildNumber: BuildNumber,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
	version.Set(buildInfo)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 상품 데이터 소스 선택
	// 연결 문자열이 설정되어 있으면 MongoDB를, 없으면 내장 데이터셋을 사용한다.
	var productSource storage.ProductSource
	if appConfig.Store.UseStore() {
		productSource = mongostore.New(mongostore.Config{
			URI:             appConfig.Store.URI,
			Database:        appConfig.Store.Database,
			Collection:      appConfig.Store.Collection,
			QueryTimeout:    appConfig.Store.QueryTimeout,
			CategoryTimeout: appConfig.Store.CategoryTimeout,
		})

		applog.WithComponentAndFields("main", log.Fields{
			"database":   appConfig.Store.Database,
			"collection": appConfig.Store.Collection,
		}).Info("MongoDB 상품 스토어를 사용합니다")
	} else {
		memStore, err := memstore.New()
		if err != nil {
			log.Fatalf("내장 상품 데이터셋 로드에 실패하였습니다: %v", err)
		}
		productSource = memStore

		applog.WithComponent("main").Warn("스토어 연결 문자열이 설정되지 않아 내장 데이터셋으로 동작합니다")
	}

	// 서비스를 생성하고 초기화한다.
	apiService := api.NewService(appConfig, productSource, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done
}
