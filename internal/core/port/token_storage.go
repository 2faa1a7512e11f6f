package port

// TokenStoragePort - контракт для долговременного хранилища токена сессии.
// Хранилище одноключевое: кроме токена, никакое состояние не переживает
// перезапуск клиента.
type TokenStoragePort interface {
	// Token возвращает сохранённый токен и признак его наличия.
	Token() (string, bool)

	// Save записывает токен, заменяя предыдущий.
	Save(token string) error

	// Clear удаляет токен. Отсутствие токена не является ошибкой.
	Clear() error
}
