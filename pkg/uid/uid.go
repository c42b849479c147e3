package uid

import (
	"time"

	"github.com/google/uuid"
)

// Generator produce identificadores opacos determinísticos para las entidades
// del almacén. El UID se deriva (UUID v5, SHA-1) del namespace configurado,
// la clave de negocio y el instante de creación: con el mismo namespace,
// clave e instante el resultado es reproducible, y el componente de tiempo
// evita colisiones entre registros con la misma clave.
type Generator struct {
	ns uuid.UUID
}

// New construye el generador a partir del secreto de namespace configurado.
func New(namespace string) *Generator {
	return &Generator{ns: uuid.NewSHA1(uuid.NameSpaceOID, []byte(namespace))}
}

// ForKey genera el UID para una clave de negocio en el instante dado.
func (g *Generator) ForKey(businessKey string, at time.Time) string {
	payload := businessKey + "|" + at.UTC().Format(time.RFC3339Nano)
	return uuid.NewSHA1(g.ns, []byte(payload)).String()
}

// NewUID genera el UID para la clave de negocio con el instante actual.
func (g *Generator) NewUID(businessKey string) string {
	return g.ForKey(businessKey, time.Now())
}
