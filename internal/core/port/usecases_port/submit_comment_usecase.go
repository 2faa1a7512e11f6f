package usecases_port

import "context"

// SubmitCommentUseCasePort - контракт для сценария отправки отзыва.
// Длина текста проверяется до обращения к API.
type SubmitCommentUseCasePort interface {
	Execute(ctx context.Context, offerID, comment string, rating int) error
}
