package system

// StoreHealthResponse 저장소 연결 상태 응답 구조체
type StoreHealthResponse struct {
	OK          bool   `json:"ok" example:"true"`
	DBConnected bool   `json:"dbConnected" example:"true"`
	Message     string `json:"message,omitempty" example:"server selection timeout"`
}
