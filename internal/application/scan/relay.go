// Package scan implementa el relay de "último escaneo": un buzón de una sola
// posición por sesión, publicado por el lector de códigos y sondeado por la
// caja. Es un colaborador periférico; vive fuera del motor de reportes.
package scan

import (
	"sync"
	"time"
)

// Scan es el último código leído en una sesión.
type Scan struct {
	ID         string    `json:"id"`
	SessionKey string    `json:"session_key"`
	Code       string    `json:"code"`
	ScannedAt  time.Time `json:"scanned_at"`
}

// slot guarda el último escaneo de una sesión con su marca explícita de
// entregado. Una publicación nueva sobrescribe la anterior aunque nadie la
// haya sondeado todavía (gana el más reciente).
type slot struct {
	scan      Scan
	delivered bool
}

// Relay es el registro de buzones por sesión. Seguro para uso concurrente;
// un productor y un consumidor por clave de sesión.
type Relay struct {
	mu    sync.Mutex
	slots map[string]*slot
}

// NewRelay construye un relay vacío.
func NewRelay() *Relay {
	return &Relay{slots: make(map[string]*slot)}
}

// Publish deja el escaneo como el último de la sesión y lo marca como no
// entregado. Reemplaza cualquier escaneo pendiente anterior.
func (r *Relay) Publish(s Scan) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.slots[s.SessionKey]
	if ok && s.ScannedAt.Before(existing.scan.ScannedAt) {
		// Llegada fuera de orden: el buzón ya tiene uno más reciente.
		return
	}
	r.slots[s.SessionKey] = &slot{scan: s}
}

// Poll devuelve el último escaneo de la sesión si aún no fue entregado, y lo
// marca como entregado. ok = false si no hay nada nuevo: el mismo escaneo
// nunca se entrega dos veces.
func (r *Relay) Poll(sessionKey string) (Scan, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.slots[sessionKey]
	if !exists || s.delivered {
		return Scan{}, false
	}
	s.delivered = true
	return s.scan, true
}

// Drop elimina el buzón de la sesión (cierre de caja).
func (r *Relay) Drop(sessionKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, sessionKey)
}
