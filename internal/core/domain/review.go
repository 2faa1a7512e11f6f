package domain

import "time"

// ReviewUser - автор отзыва.
type ReviewUser struct {
	Name      string
	AvatarURL string
	IsPro     bool
}

// Review - отзыв на предложение. Список отзывов предложения пополняется
// только добавлением в конец; при переходе на другое предложение список
// заменяется целиком.
type Review struct {
	ID      string
	User    ReviewUser
	Rating  int
	Comment string
	Date    time.Time
}

// Границы длины текста отзыва. Валидация выполняется до обращения к API.
const (
	MinCommentLength = 50
	MaxCommentLength = 300
)
