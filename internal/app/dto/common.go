package dto

// ============ Общие структуры ответов ============

type ErrorResponse struct {
	Message string `json:"message"`
}

// Полевая ошибка схемы запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// Тело ответа шлюза при недоступном upstream
type ProxyErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	URL     string `json:"url"`
	Method  string `json:"method"`
}

// Тело ответа шлюза при обрыве/таймауте соединения
type GatewayTimeoutResponse struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

type PingResponse struct {
	Message string `json:"message"`
}
