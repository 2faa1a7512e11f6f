package usecases_port

import "context"

// FetchOffersUseCasePort - контракт для сценария загрузки полного списка
// предложений. Результат фиксируется в состоянии, ошибка возвращается
// вызывающему для решения о повторе.
type FetchOffersUseCasePort interface {
	Execute(ctx context.Context) error
}
