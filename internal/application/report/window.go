// Package report contiene el motor de agregación de reportes del punto de
// venta: ventanas de fecha, filtros, rollups, ranking Top-N, detección de
// stock bajo, series diarias y el ensamblado de los cinco reportes.
//
// Todo el paquete es puro sobre instantáneas inmutables: ninguna operación
// muta estado compartido ni cachea resultados entre llamadas.
package report

import (
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain"
)

// Window es un rango de fechas calendario inclusivo, resuelto a
// [inicio 00:00:00.000, fin 23:59:59.999] en la zona horaria de entrada.
// El límite final incluye el día completo: una venta a las 23:59:59.500 del
// último día pertenece a la ventana; una a las 00:00:00.001 del día
// siguiente, no.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow normaliza dos fechas calendario a una ventana inclusiva.
// Devuelve domain.ErrInvalidRange si start es posterior a end.
func NewWindow(start, end time.Time) (Window, error) {
	s := startOfDay(start)
	e := endOfDay(end)
	if s.After(e) {
		return Window{}, domain.ErrInvalidRange
	}
	return Window{Start: s, End: e}, nil
}

// Day devuelve la ventana de un único día calendario.
func Day(t time.Time) Window {
	return Window{Start: startOfDay(t), End: endOfDay(t)}
}

// MonthToDate devuelve la ventana del día 1 del mes de now hasta now inclusive.
func MonthToDate(now time.Time) Window {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Window{Start: first, End: endOfDay(now)}
}

// WeekToDate devuelve la ventana de la semana en curso, con inicio el domingo
// (calendario local), hasta now inclusive.
func WeekToDate(now time.Time) Window {
	sunday := now.AddDate(0, 0, -int(now.Weekday()))
	return Window{Start: startOfDay(sunday), End: endOfDay(now)}
}

// TrailingDays devuelve la ventana de los últimos n días calendario
// terminando en el día de now (now incluido como último día).
func TrailingDays(now time.Time, n int) Window {
	if n < 1 {
		n = 1
	}
	first := now.AddDate(0, 0, -(n - 1))
	return Window{Start: startOfDay(first), End: endOfDay(now)}
}

// Contains indica si t cae dentro de la ventana (ambos extremos inclusivos).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay resuelve el fin de día a 23:59:59.999 (política del sistema:
// nunca excluir ventas del mismo día por un límite exclusivo).
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}
