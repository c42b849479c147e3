package packing

import "github.com/tu-usuario/packtrack-api/internal/domain"

// CheckShippable es la guarda de despacho: una caja solo puede pasar a
// "shipped" con al menos una bandeja y al menos un drive en total. Los dos
// totales deben re-derivarse de las filas persistidas dentro de la misma
// transacción que cambia el estado; una caja vaciada por otro operador no debe
// alcanzar a despacharse.
//
// Devuelve el error con el mensaje exacto que esperan los operadores:
// primero se reporta la falta de bandejas, luego la falta de drives.
func CheckShippable(trayCount, driveTotal int) error {
	if trayCount <= 0 {
		return domain.ErrShipNoTrays
	}
	if driveTotal <= 0 {
		return domain.ErrShipNoDrives
	}
	return nil
}

// Shippable indica si la caja cumple la guarda sin detallar el motivo.
func Shippable(trayCount, driveTotal int) bool {
	return CheckShippable(trayCount, driveTotal) == nil
}
