package calendar

import "time"

// Clock источник текущего времени. Вынесен в интерфейс, чтобы тесты
// могли зафиксировать "сегодня".
type Clock interface {
	Now() time.Time
}

// RealClock реальные часы для production
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time { return time.Now() }

// Calendar вычисляет календарные границы в одной фиксированной
// civil-таймзоне. Все решения о границе дня (проверка даты, квота)
// проходят через него, чтобы не зависеть от локали сервера или клиента.
type Calendar struct {
	clock Clock
	loc   *time.Location
}

// New создает календарь в указанной таймзоне
func New(clock Clock, timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Calendar{clock: clock, loc: loc}, nil
}

// Today возвращает сегодняшнюю дату в фиксированной таймзоне,
// нормализованную к полуночи UTC (как хранятся даты бронирований)
func (c *Calendar) Today() time.Time {
	now := c.clock.Now().In(c.loc)
	return Date(now.Year(), now.Month(), now.Day())
}

// WeekOf возвращает включительные границы ISO-недели, содержащей дату:
// понедельник и воскресенье
func (c *Calendar) WeekOf(d time.Time) (time.Time, time.Time) {
	day := Date(d.Year(), d.Month(), d.Day())
	start := day.AddDate(0, 0, -ISOWeekday(day))
	end := start.AddDate(0, 0, 6)
	return start, end
}

// ISOWeekday возвращает день недели с понедельником = 0
func ISOWeekday(d time.Time) int {
	wd := int(d.Weekday()) // Sunday = 0
	return (wd + 6) % 7
}

// Date строит нормализованную календарную дату (полночь UTC)
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize обнуляет время у даты, оставляя только календарный день
func Normalize(d time.Time) time.Time {
	return Date(d.Year(), d.Month(), d.Day())
}
