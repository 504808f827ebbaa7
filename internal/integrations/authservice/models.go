package authservice

// User идентичность пользователя, получаемая от auth-сервиса
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"isSuperuser"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
