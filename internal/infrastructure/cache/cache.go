// Package cache implementa la caché opcional de reportes para el polling
// repetido del dashboard. La clave incluye tipo de reporte, ventana y
// operador: dos llamadores con claves distintas nunca se ven entre sí.
//
// Es una optimización de despliegue, no parte del contrato de corrección del
// motor: un fallo de caché degrada a recomputar, nunca a error.
package cache

import (
	"context"
	"strings"
	"time"
)

// ReportCache guarda respuestas JSON ya serializadas de un reporte.
type ReportCache interface {
	// Get devuelve el payload cacheado y found = true si existe.
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)
	// Set guarda el payload con el TTL dado.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// Key construye la clave canónica de un reporte a partir de sus parámetros.
// Las partes vacías se conservan como posición para que "sales::2026-08-01"
// y "sales:2026-08-01:" no colisionen.
func Key(reportType string, parts ...string) string {
	return "report:" + reportType + ":" + strings.Join(parts, ":")
}

// NoopReportCache desactiva la caché (Redis no configurado).
type NoopReportCache struct{}

func (NoopReportCache) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}
