package models

import (
	"time"

	"github.com/m04kA/HSC-AvailabilityService/internal/domain"
	"github.com/m04kA/HSC-AvailabilityService/pkg/types"
)

// Request модели

// CreateEntryRequest запрос на создание записи недельного расписания.
// DayOfWeek и TemplateID - указатели: 0 - валидный день недели (воскресенье),
// поэтому "не задано" отличается от нулевого значения.
type CreateEntryRequest struct {
	DoctorID   int64
	DayOfWeek  *int
	TemplateID *int64
}

// Response модели

// TemplateResponse ответ с данными шаблона временного слота
type TemplateResponse struct {
	ID                  int64            `json:"id"`
	Name                string           `json:"name"`
	StartTime           types.TimeString `json:"startTime"`
	EndTime             types.TimeString `json:"endTime"`
	SlotDurationMinutes int              `json:"slotDurationMinutes"`
	BufferTimeMinutes   int              `json:"bufferTimeMinutes"`
}

// EntryResponse ответ с данными записи недельного расписания
type EntryResponse struct {
	ID         int64            `json:"id"`
	DoctorID   int64            `json:"doctorId"`
	DayOfWeek  int              `json:"dayOfWeek"`
	TemplateID int64            `json:"templateId"`
	Template   TemplateResponse `json:"template"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// EntryListResponse ответ со списком записей недельного расписания
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// TemplateListResponse ответ со списком шаблонов
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// Методы конвертации

// FromDomainTemplate конвертирует domain модель шаблона в DTO
func FromDomainTemplate(t *domain.TimeSlotTemplate) TemplateResponse {
	return TemplateResponse{
		ID:                  t.ID,
		Name:                t.Name,
		StartTime:           t.StartTime,
		EndTime:             t.EndTime,
		SlotDurationMinutes: t.SlotDurationMinutes,
		BufferTimeMinutes:   t.BufferTimeMinutes,
	}
}

// FromDomainEntry конвертирует domain модель записи в DTO
func FromDomainEntry(e *domain.WeeklyScheduleEntry) *EntryResponse {
	if e == nil {
		return nil
	}

	return &EntryResponse{
		ID:         e.ID,
		DoctorID:   e.DoctorID,
		DayOfWeek:  e.DayOfWeek,
		TemplateID: e.TemplateID,
		Template:   FromDomainTemplate(&e.Template),
		CreatedAt:  e.CreatedAt,
	}
}

// FromDomainEntryList конвертирует список domain моделей в DTO
func FromDomainEntryList(entries []*domain.WeeklyScheduleEntry) *EntryListResponse {
	resp := &EntryListResponse{
		Entries: make([]EntryResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		if entryResp := FromDomainEntry(entry); entryResp != nil {
			resp.Entries = append(resp.Entries, *entryResp)
		}
	}

	return resp
}

// FromDomainTemplateList конвертирует список шаблонов в DTO
func FromDomainTemplateList(templates []*domain.TimeSlotTemplate) *TemplateListResponse {
	resp := &TemplateListResponse{
		Templates: make([]TemplateResponse, 0, len(templates)),
	}

	for _, tpl := range templates {
		resp.Templates = append(resp.Templates, FromDomainTemplate(tpl))
	}

	return resp
}
