package domain

// AuthorizationStatus - статус авторизации пользователя.
type AuthorizationStatus string

const (
	// AuthStatusUnknown - статус ещё не выяснен (до первого ответа сервера).
	AuthStatusUnknown AuthorizationStatus = "UNKNOWN"
	AuthStatusAuth    AuthorizationStatus = "AUTH"
	AuthStatusNoAuth  AuthorizationStatus = "NO_AUTH"
)

// AuthInfo - данные авторизованного пользователя вместе с токеном сессии.
type AuthInfo struct {
	ID        int
	Name      string
	AvatarURL string
	IsPro     bool
	Email     string
	Token     string
}
