// Package response описывает JSON-ответы служебных конечных точек.
package response

// Response стандартная форма JSON-ответа.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// Статусы ответа.
const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// OK успешный ответ без данных.
func OK() Response {
	return Response{Status: StatusOK}
}

// OKWithData успешный ответ с данными.
func OKWithData(data any) Response {
	return Response{Status: StatusOK, Data: data}
}

// Error ответ с сообщением об ошибке.
func Error(msg string) Response {
	return Response{Status: StatusError, Error: msg}
}
