package entity

import "time"

// Estados del ciclo de vida de una caja. "active" es el inicial; ambos son
// re-entrables (el despacho se puede deshacer).
const (
	BoxStatusActive  = "active"
	BoxStatusShipped = "shipped"
)

// Box es el contenedor despachable de nivel superior: referencia un BoxType
// (que fija su capacidad de bandejas) y un Shipdoc. El total de bandejas no se
// almacena; se deriva contando las filas hijas.
type Box struct {
	UID        string
	BoxTypeUID string
	ShipdocUID string
	Status     string // BoxStatusActive | BoxStatusShipped
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Shipped indica si la caja está despachada.
func (b *Box) Shipped() bool { return b.Status == BoxStatusShipped }

// BoxSummary es el modelo de lectura para listados: la caja con su referencia
// resuelta y los agregados derivados en el momento de la consulta.
type BoxSummary struct {
	UID           string
	PartNumber    string // del BoxType
	ShipdocNumber string
	Status        string
	CurrentTray   int // derivado: count(tray) de la caja
	MaxTray       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
