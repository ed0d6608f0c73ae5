// Package config 애플리케이션 설정의 로드와 유효성 검증을 담당합니다.
//
// 설정은 "기본값 -> JSON 설정 파일 -> 환경 변수" 순서로 로드되며,
// 뒤쪽이 앞쪽을 덮어씁니다. 설정 파일은 선택 사항으로, 존재하지 않으면
// 기본값과 환경 변수만으로 동작합니다.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "catalog-server"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// ------------------------------------------------------------------------------------------------
	// 설정 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultListenPort 웹 서버 포트 기본값
	DefaultListenPort = 4000

	// DefaultDatabase 데이터베이스명 기본값
	DefaultDatabase = "Extell"

	// DefaultCollection 상품 컬렉션명 기본값
	DefaultCollection = "Products"

	// DefaultQueryTimeout 상품 목록 조회 제한 시간 기본값
	DefaultQueryTimeout = "15s"

	// DefaultCategoryTimeout 카테고리/그룹 조회 제한 시간 기본값
	DefaultCategoryTimeout = "12s"
)

// validate 설정 구조체의 태그 기반 유효성 검사에 사용하는 공용 Validator 인스턴스입니다.
var validate = newValidator()

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug bool        `json:"debug"`
	WS    WSConfig    `json:"ws"`
	CORS  CORSConfig  `json:"cors"`
	Store StoreConfig `json:"store"`
}

// validate 설정 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.WS.validate(); err != nil {
		return err
	}
	if err := c.CORS.validate(); err != nil {
		return err
	}
	return c.Store.validate()
}

// VerifyRecommendations 서비스 운영의 안정성을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.WS.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.WS.ListenPort))
	}

	// 스토어 연결 문자열 미설정 경고 (내장 데이터셋으로 동작)
	if !c.Store.UseStore() {
		warnings = append(warnings, "데이터 스토어 연결 문자열(store.uri)이 설정되지 않았습니다. 서버는 내장 상품 데이터셋만으로 동작합니다")
	}

	return warnings
}

// WSConfig 웹 서버의 포트 설정을 정의하는 구조체
type WSConfig struct {
	ListenPort int `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate() error {
	if err := validate.Struct(c); err != nil {
		return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	}
	return nil
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	if err := validate.Struct(c); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록에 유효하지 않은 Origin이 포함되어 있습니다")
	}
	return nil
}

// StoreConfig 상품 데이터 스토어 연결 정보를 정의하는 구조체
type StoreConfig struct {
	// URI MongoDB 연결 문자열. 비어있으면 내장 데이터셋으로 동작합니다.
	URI string `json:"uri"`

	Database   string `json:"database"`
	Collection string `json:"collection"`

	QueryTimeout    time.Duration `json:"query_timeout"`
	CategoryTimeout time.Duration `json:"category_timeout"`
}

// UseStore 데이터 스토어를 사용하도록 설정되어 있는지 여부를 반환합니다.
func (c *StoreConfig) UseStore() bool {
	return strings.TrimSpace(c.URI) != ""
}

func (c *StoreConfig) validate() error {
	if strings.TrimSpace(c.Database) == "" {
		return apperrors.New(apperrors.InvalidInput, "데이터베이스명(store.database)이 설정되지 않았습니다")
	}
	if strings.TrimSpace(c.Collection) == "" {
		return apperrors.New(apperrors.InvalidInput, "상품 컬렉션명(store.collection)이 설정되지 않았습니다")
	}
	if c.QueryTimeout <= 0 {
		return apperrors.New(apperrors.InvalidInput, "상품 목록 조회 제한 시간(store.query_timeout)은 0보다 커야 합니다")
	}
	if c.CategoryTimeout <= 0 {
		return apperrors.New(apperrors.InvalidInput, "카테고리 조회 제한 시간(store.category_timeout)은 0보다 커야 합니다")
	}
	return nil
}

// legacyEnvKeys 하위 호환을 위해 별도로 인식하는 환경 변수와 설정 키의 대응 관계입니다.
var legacyEnvKeys = map[string]string{
	"PORT":            "ws.listen_port",
	"MONGODB_URI":     "store.uri",
	"DB_NAME":         "store.database",
	"COLLECTION_NAME": "store.collection",
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	err := k.Load(confmap.Provider(map[string]interface{}{
		"ws.listen_port":         DefaultListenPort,
		"cors.allow_origins":     []string{"*"},
		"store.database":         DefaultDatabase,
		"store.collection":       DefaultCollection,
		"store.query_timeout":    DefaultQueryTimeout,
		"store.category_timeout": DefaultCategoryTimeout,
	}, "."), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	// 설정 파일은 선택 사항이므로 존재하지 않는 경우는 건너뜁니다.
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 하위 호환 환경 변수 로드 (PORT, MONGODB_URI, DB_NAME, COLLECTION_NAME)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return legacyEnvKeys[s]
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 환경 변수 로드 (최우선 순위)
	// 접두사: CATALOG_
	// 구분자: 이중 언더스코어(__)를 점(.)으로 변환 (계층 구조 표현)
	// 예: CATALOG_STORE__QUERY_TIMEOUT -> store.query_timeout
	if err := k.Load(env.Provider("CATALOG_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "CATALOG_")
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 5. 구조체 언마샬링 (Strict Validation 적용)
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 6. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정의 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}
