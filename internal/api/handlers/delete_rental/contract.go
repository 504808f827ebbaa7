package delete_rental

import "context"

type RentalsService interface {
	Delete(ctx context.Context, id int64, actorID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
