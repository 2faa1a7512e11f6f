package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileTokenStorage - одноключевое долговременное хранилище токена сессии:
// один файл с одной строкой. Токен доступен до того, как in-memory сессия
// будет заполнена ответом сервера.
type FileTokenStorage struct {
	mu   sync.RWMutex
	path string
}

// DefaultTokenPath возвращает путь файла токена в пользовательском
// каталоге конфигурации.
func DefaultTokenPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, "six-cities", "token"), nil
}

// NewFileTokenStorage создает хранилище поверх указанного файла.
func NewFileTokenStorage(path string) *FileTokenStorage {
	return &FileTokenStorage{path: path}
}

// Token читает сохранённый токен. Отсутствие файла означает отсутствие токена.
func (s *FileTokenStorage) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Save записывает токен, заменяя предыдущий.
func (s *FileTokenStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Clear удаляет токен. Отсутствие файла не является ошибкой.
func (s *FileTokenStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
