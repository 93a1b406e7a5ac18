package globalschedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// Service read-only сервис глобального расписания учреждения.
// Записи редактируются административным сервисом, здесь только раздача.
type Service struct {
	globalRepo GlobalScheduleRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса глобального расписания
func NewService(globalRepo GlobalScheduleRepository, logger Logger) *Service {
	return &Service{
		globalRepo: globalRepo,
		logger:     logger,
	}
}

// EntryResponse ответ с записью глобального расписания для одного дня недели
type EntryResponse struct {
	ID        int64            `json:"id"`
	DayOfWeek int              `json:"dayOfWeek"`
	TimeSlots []WindowResponse `json:"timeSlots"`
	CreatedAt time.Time        `json:"createdAt"`
}

// WindowResponse одно окно работы
type WindowResponse struct {
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// ListResponse ответ со списком записей глобального расписания
type ListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// List получает все записи глобального расписания
func (s *Service) List(ctx context.Context) (*ListResponse, error) {
	s.logger.Info("List: fetching global schedule")

	entries, err := s.globalRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &ListResponse{Entries: make([]EntryResponse, 0, len(entries))}
	for _, entry := range entries {
		windows := make([]WindowResponse, 0, len(entry.TimeSlots))
		for _, w := range entry.TimeSlots {
			windows = append(windows, WindowResponse{StartTime: w.StartTime, EndTime: w.EndTime})
		}
		resp.Entries = append(resp.Entries, EntryResponse{
			ID:        entry.ID,
			DayOfWeek: entry.DayOfWeek,
			TimeSlots: windows,
			CreatedAt: entry.CreatedAt,
		})
	}

	s.logger.Info("List: fetched %d global schedule entries", len(entries))
	return resp, nil
}
