package stats

import (
	"context"

	"github.com/jhoicas/unitflow-api/internal/application/dto"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
	"github.com/jhoicas/unitflow-api/internal/domain/repository"
)

// UseCase tableros derivados del estado actual del registro (pull, solo
// lectura). Las estadísticas son consultivas: cada consulta refleja una
// instantánea consistente, no consistencia global linealizable.
type UseCase struct {
	statsRepo repository.StatsRepository
}

// NewUseCase construye el agregador de estadísticas.
func NewUseCase(statsRepo repository.StatsRepository) *UseCase {
	return &UseCase{statsRepo: statsRepo}
}

// Summary totales del registro y del directorio.
func (uc *UseCase) Summary(ctx context.Context) (*dto.SummaryStats, error) {
	total, inOps, inTech, err := uc.statsRepo.SummaryCounts(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := uc.statsRepo.TotalEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryStats{
		TotalUnits:     total,
		UnitsInOps:     inOps,
		UnitsInTech:    inTech,
		TotalEmployees: employees,
	}, nil
}

// Comprehensive los cuatro tableros por sección más el desglose por tipo.
// Las secciones sin unidades aparecen con conteo cero y clave presente en
// unitTypeStats (mapa vacío), igual que en los tableros.
func (uc *UseCase) Comprehensive(ctx context.Context) (*dto.ComprehensiveStats, error) {
	bySection, err := uc.statsRepo.CountsBySection(ctx)
	if err != nil {
		return nil, err
	}
	typesBySection, err := uc.statsRepo.TypeCountsBySection(ctx)
	if err != nil {
		return nil, err
	}

	unitTypeStats := make(map[string]map[string]int, 16)
	for _, section := range entity.AllSections() {
		if types := typesBySection[section]; types != nil {
			unitTypeStats[section] = types
		} else {
			unitTypeStats[section] = map[string]int{}
		}
	}

	return &dto.ComprehensiveStats{
		Operations: dto.OperationsStats{
			ReadyForLoading: bySection[entity.SectionReadyForLoading],
			UnderLoading:    bySection[entity.SectionUnderLoading],
			InTransitLoaded: bySection[entity.SectionInTransitLoaded],
			UnderUnloading:  bySection[entity.SectionUnderUnloading],
			InTransitEmpty:  bySection[entity.SectionInTransitEmpty],
			Delivered:       bySection[entity.SectionDelivered],
		},
		Technical: dto.TechnicalStats{
			AwaitingMaintenance:  bySection[entity.SectionAwaitingMaintenance],
			InMaintenance:        bySection[entity.SectionInMaintenance],
			AwaitingSpareParts:   bySection[entity.SectionAwaitingSpareParts],
			MaintenanceCompleted: bySection[entity.SectionMaintenanceCompleted],
		},
		Commercial: dto.CommercialStats{
			AwaitingDocuments:  bySection[entity.SectionAwaitingDocuments],
			DocumentProcessing: bySection[entity.SectionDocumentProcessing],
			DocumentCompleted:  bySection[entity.SectionDocumentCompleted],
		},
		Fuel: dto.FuelStats{
			AwaitingRefuel:   bySection[entity.SectionAwaitingRefuel],
			RefuelInProgress: bySection[entity.SectionRefuelInProgress],
			RefuelCompleted:  bySection[entity.SectionRefuelCompleted],
		},
		UnitTypeStats: unitTypeStats,
	}, nil
}
