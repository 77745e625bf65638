package dto

import "github.com/aarondl/null/v8"

type EventDTO struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	StartDate null.Time   `json:"startDate"`
	EndDate   null.Time   `json:"endDate"`
	Location  null.String `json:"location"`
}

type EventUsageDTO struct {
	ID           string        `json:"id"`
	Event        *EventDTO     `json:"event"`
	CheckedOut   null.Time     `json:"checkedOut"`
	CheckedIn    null.Time     `json:"checkedIn"`
	CheckedOutBy *ShortUserDTO `json:"checkedOutBy"`
	CheckedInBy  *ShortUserDTO `json:"checkedInBy"`
}
