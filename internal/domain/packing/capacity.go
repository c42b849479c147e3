// Package packing contiene las reglas puras del núcleo de empaque: capacidad
// de contención (bandejas por caja, drives por bandeja) y la guarda de
// despacho. Opera solo sobre totales ya derivados de filas persistidas; aquí
// no hay acceso a datos.
package packing

import "github.com/tu-usuario/packtrack-api/internal/domain"

// CheckTrayCapacity valida que agregar addQty drives a una bandeja con
// currentDrive no supere maxDrive. currentDrive debe venir recién derivado de
// los lotes persistidos, nunca de un agregado cacheado.
func CheckTrayCapacity(currentDrive, addQty, maxDrive int) error {
	if currentDrive+addQty > maxDrive {
		return domain.ErrTrayCapacity
	}
	return nil
}

// CheckTrayCapacityReplacing valida el reemplazo de la cantidad de un lote
// (edición): el total menos la cantidad anterior más la nueva no debe superar
// maxDrive.
func CheckTrayCapacityReplacing(currentDrive, oldQty, newQty, maxDrive int) error {
	if currentDrive-oldQty+newQty > maxDrive {
		return domain.ErrTrayCapacity
	}
	return nil
}

// CheckBoxCapacity valida que una caja con currentTray bandejas admita una más.
func CheckBoxCapacity(currentTray, maxTray int) error {
	if currentTray >= maxTray {
		return domain.ErrBoxCapacity
	}
	return nil
}
