package entity

import "time"

// Roles de la aplicación. Solo admin gestiona datos de referencia y usuarios;
// operador muta el inventario; consulta solo lee.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleConsulta = "consulta"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // RoleAdmin | RoleOperador | RoleConsulta
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
