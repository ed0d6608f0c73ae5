// Package version 빌드 시점에 주입되는 애플리케이션 버전 정보를 관리합니다.
package version

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
)

const unknown = "unknown"

var globalBuildInfo atomic.Value

// 빌드 정보 변수 (Dockerfile의 ldflags로 주입됨)
var (
	appVersion  = "" // 애플리케이션 버전 (예: v1.0.1-155-gf25b8bf)
	buildDate   = "" // 빌드 수행 시간
	buildNumber = "" // CI/CD 파이프라인 빌드 번호
)

func init() {
	Set(Info{
		Version:     strings.TrimSpace(appVersion),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
	})
}

// Info 애플리케이션의 빌드 정보를 담는 구조체
type Info struct {
	Version     string `json:"version"`      // 애플리케이션의 버전
	BuildDate   string `json:"build_date"`   // 빌드 날짜 (ISO 8601 형식 권장)
	BuildNumber string `json:"build_number"` // CI/CD 빌드 번호
	GoVersion   string `json:"go_version"`   // 빌드에 사용된 Go 컴파일러 버전
	OS          string `json:"os"`           // 실행 중인 운영체제
	Arch        string `json:"arch"`         // 실행 중인 시스템 아키텍처
}

// Set 전역 빌드 정보를 등록합니다.
// 비어있는 필드는 기본값(unknown 또는 런타임 정보)으로 채워집니다.
func Set(bi Info) {
	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.BuildDate == "" {
		bi.BuildDate = unknown
	}
	if bi.BuildNumber == "" {
		bi.BuildNumber = unknown
	}
	if bi.GoVersion == "" {
		bi.GoVersion = runtime.Version()
	}
	if bi.OS == "" {
		bi.OS = runtime.GOOS
	}
	if bi.Arch == "" {
		bi.Arch = runtime.GOARCH
	}

	globalBuildInfo.Store(bi)
}

// Get 전역 빌드 정보를 반환합니다.
func Get() Info {
	bi := globalBuildInfo.Load()
	if bi == nil {
		return Info{
			Version:     unknown,
			BuildDate:   unknown,
			BuildNumber: unknown,
			GoVersion:   runtime.Version(),
			OS:          runtime.GOOS,
			Arch:        runtime.GOARCH,
		}
	}
	return bi.(Info)
}

// String 빌드 정보를 사람이 읽기 쉬운 한 줄 문자열로 반환합니다.
func (i Info) String() string {
	return fmt.Sprintf("%s (build: %s, date: %s, %s %s/%s)",
		i.Version, i.BuildNumber, i.BuildDate, i.GoVersion, i.OS, i.Arch)
}
