package report

import (
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TrendPoint es un día de la serie: total vendido y etiqueta corta del día
// de la semana para la gráfica.
type TrendPoint struct {
	Date  time.Time
	Label string // Mon, Tue, ... (formato "Mon")
	Total decimal.Decimal
}

// DailySeries construye una serie de `days` días consecutivos terminando en
// el día de ref (ref incluido como último punto), del más antiguo al más
// reciente.
//
// Cada punto suma las ventas completed cuyo CreatedAt cae en ese día según
// la semántica de Window (día completo inclusivo). Los días sin ventas
// aportan un cero explícito: la serie siempre tiene exactamente `days`
// entradas.
//
// Esta es la única implementación de la serie diaria; la tendencia de 7 días
// y la gráfica semanal del dashboard la consumen por igual.
func DailySeries(txns []entity.Transaction, days int, ref time.Time) []TrendPoint {
	if days < 1 {
		days = 1
	}
	completed := WithStatus(txns, entity.StatusCompleted)

	series := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		bucket := Day(day)
		series = append(series, TrendPoint{
			Date:  bucket.Start,
			Label: bucket.Start.Format("Mon"),
			Total: Sum(InWindow(completed, bucket)),
		})
	}
	return series
}
