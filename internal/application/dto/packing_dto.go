package dto

import "time"

// ── Box ───────────────────────────────────────────────────────────────────────

// CreateBoxRequest crea una caja resolviendo ambas claves de negocio.
type CreateBoxRequest struct {
	BoxPartNumber string `json:"box_part_number"`
	ShipdocNumber string `json:"shipdoc_number"`
}

// BoxResponse caja en respuestas de listado/detalle, con agregados derivados.
type BoxResponse struct {
	UID           string    `json:"uid"`
	PartNumber    string    `json:"part_number"`
	ShipdocNumber string    `json:"shipdoc_number"`
	Status        string    `json:"status"`
	CurrentTray   int       `json:"current_tray"`
	MaxTray       int       `json:"max_tray"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BoxStatusResponse resultado de una transición de estado de caja.
type BoxStatusResponse struct {
	UID       string    `json:"uid"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BoxListResponse página de cajas.
type BoxListResponse struct {
	Items []BoxResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// ── Tray ──────────────────────────────────────────────────────────────────────

// CreateTrayRequest crea una bandeja bajo una caja resolviendo el tipo por part number.
type CreateTrayRequest struct {
	TrayPartNumber string `json:"tray_part_number"`
}

// TrayResponse bandeja en respuestas, con el total de drives derivado.
type TrayResponse struct {
	UID          string    `json:"uid"`
	PartNumber   string    `json:"part_number"`
	BoxUID       string    `json:"box_uid"`
	CurrentDrive int       `json:"current_drive"`
	MaxDrive     int       `json:"max_drive"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TrayListResponse página de bandejas de una caja.
type TrayListResponse struct {
	Items []TrayResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ── Lot ───────────────────────────────────────────────────────────────────────

// CreateLotRequest crea un lote bajo una bandeja.
type CreateLotRequest struct {
	LotID string `json:"lot_id"`
	Qty   int    `json:"qty"`
}

// UpdateLotRequest sobreescribe la cantidad de un lote.
type UpdateLotRequest struct {
	Qty int `json:"qty"`
}

// LotResponse lote en respuestas.
type LotResponse struct {
	UID       string    `json:"uid"`
	TrayUID   string    `json:"tray_uid"`
	LotID     string    `json:"lot_id"`
	Qty       int       `json:"qty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LotListResponse página de lotes de una bandeja.
type LotListResponse struct {
	Items []LotResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
