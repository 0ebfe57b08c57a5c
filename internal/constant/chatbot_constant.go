package constant

const (
	// Messages returned by the chat proxy when the assistant server is unreachable.
	ChatbotUnavailableMessage = "❌ Chatbot server chưa chạy. Vui lòng chạy: ./bin/assistant"
	ChatbotTimeoutMessage     = "⏱️ Chatbot timeout. Vui lòng thử lại."
	ChatbotErrorMessage       = "❌ Lỗi khi gọi chatbot. Vui lòng thử lại."
)
