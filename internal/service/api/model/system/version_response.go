package system

// VersionResponse 버전 정보 응답 구조체
type VersionResponse struct {
	Version     string `json:"version" example:"v1.0.1-155-gf25b8bf"`
	BuildDate   string `json:"build_date" example:"2025-01-01T00:00:00Z"`
	BuildNumber string `json:"build_number" example:"155"`
	GoVersion   string `json:"go_version" example:"go1.24.1"`
}
