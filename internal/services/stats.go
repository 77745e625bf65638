package services

import (
	"context"

	"go.uber.org/zap"

	"gear-tracker/internal/dto"
	"gear-tracker/internal/repositories"
)

type StatsServiceInterface interface {
	Summarize(ctx context.Context, orgID string) (*dto.StatsDTO, error)
}

type StatsService struct {
	statsRepo repositories.StatsRepositoryInterface
	logger    *zap.Logger
}

func NewStatsService(statsRepo repositories.StatsRepositoryInterface, logger *zap.Logger) StatsServiceInterface {
	return &StatsService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Summarize never returns nil slices, so a fresh organization still
// gets a well-formed zeroed summary.
func (s *StatsService) Summarize(ctx context.Context, orgID string) (*dto.StatsDTO, error) {
	totals, err := s.statsRepo.GetTotals(ctx, orgID)
	if err != nil {
		return nil, err
	}

	byCondition, err := s.statsRepo.CountByCondition(ctx, orgID)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.statsRepo.CountByCategory(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := &dto.StatsDTO{
		TotalEquipment:     totals.TotalEquipment,
		TotalValue:         totals.TotalValue,
		TotalPurchasePrice: totals.TotalPurchasePrice,
		ByCondition:        make([]dto.ConditionCountDTO, len(byCondition)),
		ByCategory:         make([]dto.CategoryCountDTO, len(byCategory)),
	}
	for i, c := range byCondition {
		out.ByCondition[i] = dto.ConditionCountDTO{Condition: c.Label, Count: c.Count}
	}
	for i, c := range byCategory {
		out.ByCategory[i] = dto.CategoryCountDTO{Category: c.Label, Count: c.Count}
	}
	return out, nil
}
