package tts

// Классы ошибок компонентов. Конкретика добавляется обёрткой fmt.Errorf("%w: ..."),
// диспетчеризация у вызывающего — через errors.Is.
const (
	// ErrCredential — не удалось собрать учётные данные. Фатально для сессии:
	// ни каталог, ни синтез работать не будут.
	ErrCredential = Error("credential setup failed")
	// ErrCatalogFetch — запрос списка голосов не удался. Приложение продолжает
	// работать с пустым каталогом.
	ErrCatalogFetch = Error("voice catalog fetch failed")
	// ErrValidation — предусловия запроса нарушены локально, до сети.
	ErrValidation = Error("invalid synthesis request")
	// ErrSynthesis — провайдер отклонил запрос синтеза. Повторных попыток нет.
	ErrSynthesis = Error("speech synthesis failed")
)

// Error — строковая ошибка-константа.
type Error string

func (e Error) Error() string { return string(e) }
