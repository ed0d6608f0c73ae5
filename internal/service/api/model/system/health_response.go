package system

// HealthResponse 헬스체크 응답 구조체
type HealthResponse struct {
	Status       string                      `json:"status" example:"healthy"`
	Uptime       int64                       `json:"uptime" example:"5425"`
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}
