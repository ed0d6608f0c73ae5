package constants

// Panic 메시지 상수입니다.
const (
	PanicMsgAppConfigRequired     = "Config 객체가 초기화되지 않았습니다"
	PanicMsgProductSourceRequired = "ProductSource 객체가 초기화되지 않았습니다"
)
