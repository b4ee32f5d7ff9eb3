package service

import (
	"github.com/FrancoCalegari/demobodega/internal/core"
)

// StatsService feeds the counter strip on the admin dashboard.
type StatsService struct {
	store core.RecordStore
}

func NewStatsService(store core.RecordStore) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) GetDashboardStats() (*core.DashboardStats, error) {
	tours, err := s.store.Count(tableTours, nil)
	if err != nil {
		return nil, err
	}
	gallery, err := s.store.Count(tableGallery, nil)
	if err != nil {
		return nil, err
	}
	users, err := s.store.Count(tableUsers, nil)
	if err != nil {
		return nil, err
	}

	return &core.DashboardStats{
		Tours:         tours,
		GalleryImages: gallery,
		Users:         users,
	}, nil
}
