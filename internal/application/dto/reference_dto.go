package dto

import "time"

// ── BoxType ───────────────────────────────────────────────────────────────────

// CreateBoxTypeRequest datos para registrar un tipo de caja.
type CreateBoxTypeRequest struct {
	PartNumber string `json:"part_number"`
	MaxTray    int    `json:"max_tray"`
}

// BoxTypeResponse tipo de caja en respuestas.
type BoxTypeResponse struct {
	UID        string    `json:"uid"`
	PartNumber string    `json:"part_number"`
	MaxTray    int       `json:"max_tray"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BoxTypeListResponse página de tipos de caja.
type BoxTypeListResponse struct {
	Items []BoxTypeResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ── TrayType ──────────────────────────────────────────────────────────────────

// CreateTrayTypeRequest datos para registrar un tipo de bandeja.
type CreateTrayTypeRequest struct {
	PartNumber string `json:"part_number"`
	MaxDrive   int    `json:"max_drive"`
}

// UpdateTrayTypeRequest solo la capacidad es actualizable.
type UpdateTrayTypeRequest struct {
	MaxDrive int `json:"max_drive"`
}

// TrayTypeResponse tipo de bandeja en respuestas.
type TrayTypeResponse struct {
	UID        string    `json:"uid"`
	PartNumber string    `json:"part_number"`
	MaxDrive   int       `json:"max_drive"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TrayTypeListResponse página de tipos de bandeja.
type TrayTypeListResponse struct {
	Items []TrayTypeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Shipdoc ───────────────────────────────────────────────────────────────────

// CreateShipdocRequest datos para registrar un documento de despacho.
type CreateShipdocRequest struct {
	Number  string `json:"number"`
	Contact string `json:"contact"`
}

// UpdateShipdocRequest solo el contacto es actualizable.
type UpdateShipdocRequest struct {
	Contact string `json:"contact"`
}

// ShipdocResponse documento de despacho en respuestas.
type ShipdocResponse struct {
	UID       string    `json:"uid"`
	Number    string    `json:"number"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShipdocListResponse página de documentos de despacho.
type ShipdocListResponse struct {
	Items []ShipdocResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
