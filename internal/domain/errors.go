package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifica a falha para decidir retry e propagação
type ErrorKind string

const (
	KindAuth       ErrorKind = "auth"
	KindPermission ErrorKind = "permission"
	KindRateLimit  ErrorKind = "rate_limit"
	KindTransient  ErrorKind = "transient"
	KindData       ErrorKind = "data"
	KindConfig     ErrorKind = "config"
)

// Error é o erro tipado do pipeline de sincronização
type Error struct {
	Kind ErrorKind // Categoria do erro
	Op   string    // Operação que falhou
	Code int       // Código retornado pela plataforma (0 quando não se aplica)
	Err  error     // Erro base
}

var (
	ErrNoActiveConnection = &Error{Kind: KindConfig, Op: "connection", Err: errors.New("nenhuma conexão ativa para a marca")}
	ErrNoAccountSelected  = &Error{Kind: KindConfig, Op: "connection", Err: errors.New("nenhuma conta de anúncios selecionada")}
	ErrTokenExpired       = &Error{Kind: KindAuth, Op: "connection", Err: errors.New("token de acesso expirado")}
	ErrInvalidDateWindow  = &Error{Kind: KindConfig, Op: "date_window", Err: errors.New("janela de datas inválida")}
)

func NewError(kind ErrorKind, op string, code int, err error) *Error {
	return &Error{Kind: kind, Op: op, Code: code, Err: err}
}

// Error implementa a interface error
func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (%s, code %d): %v", e.Op, e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable informa se a falha pode ser repetida com backoff
func (e *Error) Retryable() bool {
	return e.Kind == KindRateLimit || e.Kind == KindTransient
}

// KindOf percorre a cadeia de erros e retorna a categoria do primeiro *Error encontrado
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsRetryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable()
	}
	return false
}

func IsAuth(err error) bool {
	return KindOf(err) == KindAuth
}
