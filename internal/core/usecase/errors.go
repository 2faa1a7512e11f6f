package usecase

// errorMessage возвращает текст ошибки для показа пользователю или
// сообщение по умолчанию, если у ошибки нет собственного текста.
func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
