package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/kardex-api/internal/application/inventory"
)

var _ inventory.AuditSink = (*AuditRecorder)(nil)

// AuditRecorder acumula eventos de auditoría en memoria. FailWith permite
// simular un sink caído para verificar que el motor no revierte por ello.
type AuditRecorder struct {
	mu     sync.Mutex
	events []inventory.AuditEvent
	err    error
}

// NewAuditRecorder construye el recorder.
func NewAuditRecorder() *AuditRecorder {
	return &AuditRecorder{}
}

// FailWith hace que Notify devuelva err en adelante (nil lo restablece).
func (r *AuditRecorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Notify registra el evento o devuelve el error simulado.
func (r *AuditRecorder) Notify(ctx context.Context, event inventory.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

// Events devuelve una copia de los eventos registrados.
func (r *AuditRecorder) Events() []inventory.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]inventory.AuditEvent, len(r.events))
	copy(out, r.events)
	return out
}
