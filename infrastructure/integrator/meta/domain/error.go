package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

var (
	rateLimitCodes  = map[int]bool{4: true, 17: true, 32: true, 613: true, 80000: true, 80003: true, 80004: true, 80014: true}
	authCodes       = map[int]bool{102: true, 190: true}
	permissionCodes = map[int]bool{10: true, 200: true, 294: true}
)

const invalidFieldCode = 100

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

func (e *ErrorResponse) IsRateLimited() bool {
	return rateLimitCodes[e.Error.Code]
}

func (e *ErrorResponse) IsAuth() bool {
	return authCodes[e.Error.Code] || e.IsTokenExpired()
}

// IsPermission inclui a faixa 200-299 de permissões da Graph API
func (e *ErrorResponse) IsPermission() bool {
	return permissionCodes[e.Error.Code] || (e.Error.Code >= 200 && e.Error.Code <= 299)
}

func (e *ErrorResponse) IsInvalidField() bool {
	return e.Error.Code == invalidFieldCode
}
