// Package events implementa el bus en memoria de invalidación de páginas.
// Cada mutación exitosa del núcleo publica una señal (tipo de entidad + scope)
// para que las vistas cacheadas de listados se re-consulten; es un contrato
// visible al caller, no un valor de retorno.
package events

import "sync"

// Invalidation identifica las páginas afectadas por una mutación: el tipo de
// entidad listada ("box", "tray", "lot", "box_type", ...) y el uid del padre
// que delimita el listado ("" para listados globales).
type Invalidation struct {
	Entity   string
	ScopeUID string
}

// Subscriber recibe señales de invalidación.
type Subscriber func(inv Invalidation)

// MemoryInvalidator despacha señales a los suscriptores en memoria.
// La entrega es sincrónica y en orden de publicación; los suscriptores deben
// ser baratos (marcar una página como vencida, no re-consultarla).
type MemoryInvalidator struct {
	mu   sync.RWMutex
	subs []Subscriber
}

// NewMemoryInvalidator construye el bus vacío.
func NewMemoryInvalidator() *MemoryInvalidator {
	return &MemoryInvalidator{}
}

// Subscribe registra un suscriptor. No hay unsubscribe: los suscriptores viven
// lo que vive el proceso.
func (m *MemoryInvalidator) Subscribe(fn Subscriber) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Invalidate publica la señal a todos los suscriptores.
func (m *MemoryInvalidator) Invalidate(entity, scopeUID string) {
	m.mu.RLock()
	subs := make([]Subscriber, len(m.subs))
	copy(subs, m.subs)
	m.mu.RUnlock()

	inv := Invalidation{Entity: entity, ScopeUID: scopeUID}
	for _, fn := range subs {
		fn(inv)
	}
}
