package dto

// ── Vacation days ──

// ToggleVacationRequest flip a day's vacation state
type ToggleVacationRequest struct {
	Date string `json:"date" binding:"required,isodate"`
}

// SetVacationRequest set a day's vacation state explicitly
type SetVacationRequest struct {
	OnVacation *bool `json:"on_vacation" binding:"required"`
}

// VacationStateResponse a day's vacation state after a change
type VacationStateResponse struct {
	Date       string `json:"date"`
	OnVacation bool   `json:"on_vacation"`
}

// VacationImportResponse result of an ICS import
type VacationImportResponse struct {
	Events int      `json:"events"`
	Added  int      `json:"added"`
	Dates  []string `json:"dates"`
}

// ImportCalendarRequest import from a calendar URL (http, https or webcal)
type ImportCalendarRequest struct {
	URL string `json:"url" binding:"required,max=2048"`
}

// VacationListRequest vacation days query
type VacationListRequest struct {
	DateRangeRequest
}
