package services

import (
	"gear-tracker/internal/dto"
	"gear-tracker/internal/entities"
	"gear-tracker/internal/repositories"
)

func toCategoryRef(row *repositories.EquipmentRow) *dto.ShortCategoryDTO {
	if !row.CategoryID.Valid || !row.CategoryName.Valid {
		return nil
	}
	return &dto.ShortCategoryDTO{
		ID:   row.CategoryID.String,
		Name: row.CategoryName.String,
	}
}

func toAssigneeRef(row *repositories.EquipmentRow) *dto.ShortUserDTO {
	if !row.AssignedToID.Valid || !row.AssigneeName.Valid {
		return nil
	}
	return &dto.ShortUserDTO{
		ID:    row.AssignedToID.String,
		Name:  row.AssigneeName.String,
		Email: row.AssigneeEmail.String,
	}
}

func toPhotoDTO(p entities.EquipmentPhoto) dto.PhotoDTO {
	return dto.PhotoDTO{
		ID:        p.ID,
		PhotoURL:  p.PhotoURL,
		IsPrimary: p.IsPrimary,
		CreatedAt: p.CreatedAt,
	}
}

func toScheduleDTO(s entities.MaintenanceSchedule) dto.MaintenanceScheduleDTO {
	return dto.MaintenanceScheduleDTO{
		ID:              s.ID,
		MaintenanceType: s.MaintenanceType,
		Frequency:       s.Frequency,
		NextDue:         s.NextDue,
		Notes:           s.Notes,
	}
}

func toLogDTO(l repositories.MaintenanceLogRow) dto.MaintenanceLogDTO {
	out := dto.MaintenanceLogDTO{
		ID:            l.ID,
		PerformedDate: l.PerformedDate,
		Description:   l.Description,
		Cost:          l.Cost,
	}
	if l.PerformedByID.Valid && l.PerformerName.Valid {
		out.PerformedBy = &dto.ShortUserDTO{
			ID:    l.PerformedByID.String,
			Name:  l.PerformerName.String,
			Email: l.PerformerEmail.String,
		}
	}
	return out
}

func toEventUsageDTO(u repositories.EventUsageRow) dto.EventUsageDTO {
	out := dto.EventUsageDTO{
		ID:         u.ID,
		CheckedOut: u.CheckedOut,
		CheckedIn:  u.CheckedIn,
		Event: &dto.EventDTO{
			ID:        u.Event.ID,
			Name:      u.Event.Name,
			StartDate: u.Event.StartDate,
			EndDate:   u.Event.EndDate,
			Location:  u.Event.Location,
		},
	}
	if u.CheckedOutByID.Valid && u.CheckedOutByName.Valid {
		out.CheckedOutBy = &dto.ShortUserDTO{
			ID:    u.CheckedOutByID.String,
			Name:  u.CheckedOutByName.String,
			Email: u.CheckedOutByEmail.String,
		}
	}
	if u.CheckedInByID.Valid && u.CheckedInByName.Valid {
		out.CheckedInBy = &dto.ShortUserDTO{
			ID:    u.CheckedInByID.String,
			Name:  u.CheckedInByName.String,
			Email: u.CheckedInByEmail.String,
		}
	}
	return out
}

func toCategoryDTO(c entities.EquipmentCategory) dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:               c.ID,
		Name:             c.Name,
		ParentCategoryID: c.ParentCategoryID,
		CreatedAt:        c.CreatedAt,
	}
}
