package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/packtrack-api/internal/infrastructure/events"
)

func TestMemoryInvalidator_EntregaATodos(t *testing.T) {
	bus := events.NewMemoryInvalidator()

	var a, b []events.Invalidation
	bus.Subscribe(func(inv events.Invalidation) { a = append(a, inv) })
	bus.Subscribe(func(inv events.Invalidation) { b = append(b, inv) })

	bus.Invalidate("lot", "tray-1")

	assert.Equal(t, []events.Invalidation{{Entity: "lot", ScopeUID: "tray-1"}}, a)
	assert.Equal(t, a, b, "ambos suscriptores deben recibir la misma señal")
}

func TestMemoryInvalidator_SinSuscriptoresNoFalla(t *testing.T) {
	bus := events.NewMemoryInvalidator()
	assert.NotPanics(t, func() { bus.Invalidate("box", "") })
}

func TestMemoryInvalidator_OrdenDePublicacion(t *testing.T) {
	bus := events.NewMemoryInvalidator()

	var got []string
	bus.Subscribe(func(inv events.Invalidation) { got = append(got, inv.Entity) })

	bus.Invalidate("box", "")
	bus.Invalidate("tray", "box-1")
	bus.Invalidate("lot", "tray-1")

	assert.Equal(t, []string{"box", "tray", "lot"}, got)
}
