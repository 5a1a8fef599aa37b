package walks

import (
	"fmt"
	"strings"
	"time"

	"animal-shelter/internal/platform/apperror"
)

// LocalLayout es el formato de <input type="datetime-local">.
const LocalLayout = "2006-01-02T15:04"

const (
	msgPastDate   = "The date cannot be in the past."
	msgOutOfHours = "Please select a time between %02d:00 and %02d:00."
)

// Window define cuándo se puede pasear: horas [OpenHour, CloseHour] en hora local
// del refugio, y hasta DaysAhead días hacia adelante para los límites sugeridos.
type Window struct {
	OpenHour  int
	CloseHour int
	DaysAhead int
	Location  *time.Location
}

func DefaultWindow() Window {
	return Window{OpenHour: 10, CloseHour: 17, DaysAhead: 1, Location: time.Local}
}

func (w Window) loc() *time.Location {
	if w.Location == nil {
		return time.Local
	}
	return w.Location
}

// Bounds devuelve los límites sugeridos para el formulario:
// {hoy}T{open}:00 y {hoy+DaysAhead}T{close}:00. Son orientativos; Check
// no rechaza fechas posteriores a max.
func (w Window) Bounds(now time.Time) (earliest, latest string) {
	today := now.In(w.loc())
	y, m, d := today.Date()

	lo := time.Date(y, m, d, w.OpenHour, 0, 0, 0, w.loc())
	hi := time.Date(y, m, d+w.DaysAhead, w.CloseHour, 0, 0, 0, w.loc())
	return lo.Format(LocalLayout), hi.Format(LocalLayout)
}

// Check valida la fecha de un paseo contra now.
func (w Window) Check(date, now time.Time) error {
	if !date.After(now) {
		return apperror.Field(apperror.ErrOutOfWindow, "date", msgPastDate)
	}
	h := date.In(w.loc()).Hour()
	if h < w.OpenHour || h > w.CloseHour {
		return apperror.Field(apperror.ErrOutOfWindow, "date", fmt.Sprintf(msgOutOfHours, w.OpenHour, w.CloseHour))
	}
	return nil
}

// ParseDate acepta RFC3339 o el formato local (sin zona, en hora del refugio).
func (w Window) ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(LocalLayout, raw, w.loc())
	if err != nil {
		return time.Time{}, apperror.Field(apperror.ErrInvalidEntity, "date", "Enter a valid date/time.")
	}
	return t, nil
}
