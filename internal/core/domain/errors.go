package domain

import "errors"

// Ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrNotFound           = errors.New("offer not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("authorization required")
	ErrValidation         = errors.New("request rejected by server")
	ErrCommentLength      = errors.New("comment must be between 50 and 300 characters")
)

// Сообщения по умолчанию для ошибок, у которых нет собственного текста.
const (
	MsgFetchOffersFailed    = "Не удалось загрузить предложения"
	MsgFetchFavoritesFailed = "Не удалось загрузить избранное"
	MsgAddToFavoritesFailed = "Не удалось добавить в избранное"
	MsgDefaultError         = "Произошла ошибка"
)
