package dto

// ErrorResponse foutbody voor HTTP-responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
