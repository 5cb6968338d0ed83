package entity

import "time"

// Departamentos que poseen secciones del flujo de trabajo.
// "management" existe solo como departamento de empleados; no tiene secciones
// y por lo tanto ninguna unidad puede estar colocada en él.
const (
	DepartmentOperations = "operations"
	DepartmentTechnical  = "technical"
	DepartmentCommercial = "commercial"
	DepartmentFuel       = "fuel"
	DepartmentManagement = "management"
)

// Secciones del flujo de operaciones.
const (
	SectionReadyForLoading = "ready_for_loading"
	SectionUnderLoading    = "under_loading"
	SectionInTransitLoaded = "in_transit_loaded"
	SectionUnderUnloading  = "under_unloading"
	SectionInTransitEmpty  = "in_transit_empty"
	SectionDelivered       = "delivered"
)

// Secciones del flujo técnico.
const (
	SectionAwaitingMaintenance  = "awaiting_maintenance"
	SectionInMaintenance        = "in_maintenance"
	SectionAwaitingSpareParts   = "awaiting_spare_parts"
	SectionMaintenanceCompleted = "maintenance_completed"
)

// Secciones del flujo comercial.
const (
	SectionAwaitingDocuments  = "awaiting_documents"
	SectionDocumentProcessing = "document_processing"
	SectionDocumentCompleted  = "document_completed"
)

// Secciones del flujo de combustible.
const (
	SectionAwaitingRefuel   = "awaiting_refuel"
	SectionRefuelInProgress = "refuel_in_progress"
	SectionRefuelCompleted  = "refuel_completed"
)

// SectionsByDepartment particiona las secciones: cada sección pertenece a
// exactamente un departamento. Una unidad nunca puede tener una sección que
// no pertenezca a su departamento actual.
var SectionsByDepartment = map[string][]string{
	DepartmentOperations: {
		SectionReadyForLoading, SectionUnderLoading, SectionInTransitLoaded,
		SectionUnderUnloading, SectionInTransitEmpty, SectionDelivered,
	},
	DepartmentTechnical: {
		SectionAwaitingMaintenance, SectionInMaintenance,
		SectionAwaitingSpareParts, SectionMaintenanceCompleted,
	},
	DepartmentCommercial: {
		SectionAwaitingDocuments, SectionDocumentProcessing, SectionDocumentCompleted,
	},
	DepartmentFuel: {
		SectionAwaitingRefuel, SectionRefuelInProgress, SectionRefuelCompleted,
	},
}

// Colocación inicial de toda unidad recién registrada.
const (
	DefaultDepartment = DepartmentOperations
	DefaultSection    = SectionReadyForLoading
)

// ValidPlacement verifica que la sección pertenezca al conjunto de secciones
// del departamento indicado.
func ValidPlacement(department, section string) bool {
	for _, s := range SectionsByDepartment[department] {
		if s == section {
			return true
		}
	}
	return false
}

// AllSections devuelve todas las secciones en orden estable por departamento
// (operations, technical, commercial, fuel). Lo usan las estadísticas y el
// export para producir filas/claves completas aunque una sección esté vacía.
func AllSections() []string {
	out := make([]string, 0, 16)
	for _, dept := range []string{DepartmentOperations, DepartmentTechnical, DepartmentCommercial, DepartmentFuel} {
		out = append(out, SectionsByDepartment[dept]...)
	}
	return out
}

// Unit representa un activo físico rastreado (vehículo/contenedor) con su
// colocación actual (departamento, sección). El ID es externo e inmutable.
type Unit struct {
	ID                string
	Type              string // clasificación: "Tipper", "Cargo", "Tanker", "Silo", ...
	CurrentDepartment string
	CurrentSection    string
	LastMovementTime  time.Time
}
