package dto

// SummaryStats respuesta de GET /api/stats.
type SummaryStats struct {
	TotalUnits     int `json:"totalUnits"`
	UnitsInOps     int `json:"unitsInOps"`
	UnitsInTech    int `json:"unitsInTech"`
	TotalEmployees int `json:"totalEmployees"`
}

// OperationsStats conteos por sección del tablero de operaciones.
type OperationsStats struct {
	ReadyForLoading int `json:"readyForLoading"`
	UnderLoading    int `json:"underLoading"`
	InTransitLoaded int `json:"inTransitLoaded"`
	UnderUnloading  int `json:"underUnloading"`
	InTransitEmpty  int `json:"inTransitEmpty"`
	Delivered       int `json:"delivered"`
}

// TechnicalStats conteos por sección del tablero técnico.
type TechnicalStats struct {
	AwaitingMaintenance  int `json:"awaitingMaintenance"`
	InMaintenance        int `json:"inMaintenance"`
	AwaitingSpareParts   int `json:"awaitingSpareParts"`
	MaintenanceCompleted int `json:"maintenanceCompleted"`
}

// CommercialStats conteos por sección del tablero comercial.
type CommercialStats struct {
	AwaitingDocuments  int `json:"awaitingDocuments"`
	DocumentProcessing int `json:"documentProcessing"`
	DocumentCompleted  int `json:"documentCompleted"`
}

// FuelStats conteos por sección del tablero de combustible.
type FuelStats struct {
	AwaitingRefuel   int `json:"awaitingRefuel"`
	RefuelInProgress int `json:"refuelInProgress"`
	RefuelCompleted  int `json:"refuelCompleted"`
}

// ComprehensiveStats respuesta de GET /api/stats/comprehensive: los cuatro
// tableros más el desglose por tipo de unidad de cada sección (clave =
// nombre de sección).
type ComprehensiveStats struct {
	Operations    OperationsStats           `json:"operations"`
	Technical     TechnicalStats            `json:"technical"`
	Commercial    CommercialStats           `json:"commercial"`
	Fuel          FuelStats                 `json:"fuel"`
	UnitTypeStats map[string]map[string]int `json:"unitTypeStats"`
}
