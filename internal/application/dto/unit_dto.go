package dto

import "time"

// RegisterUnitRequest entrada para registrar una unidad (ID externo, no generado).
type RegisterUnitRequest struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// UpdateUnitTypeRequest corrección de la clasificación de una unidad.
type UpdateUnitTypeRequest struct {
	Type string `json:"type"`
}

// UnitResponse salida de una unidad con su colocación actual.
type UnitResponse struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	CurrentDepartment string    `json:"currentDepartment"`
	CurrentSection    string    `json:"currentSection"`
	LastMovementTime  time.Time `json:"lastMovementTime"`
}
