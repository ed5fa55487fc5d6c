package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"summer-success/tracker/internal/api/middleware"
	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/service"
	"summer-success/tracker/pkg/response"
)

// VacationHandler vacation day endpoints
type VacationHandler struct {
	vacationSvc service.VacationService
}

// NewVacationHandler creates a VacationHandler
func NewVacationHandler(vacationSvc service.VacationService) *VacationHandler {
	return &VacationHandler{vacationSvc: vacationSvc}
}

// ListVacationDays GET /api/v1/vacation-days?start=&end=
func (h *VacationHandler) ListVacationDays(c *gin.Context) {
	var req dto.VacationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	days, err := h.vacationSvc.List(c.Request.Context(), req.Start, req.End)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": days})
}

// ToggleVacationDay POST /api/v1/vacation-days/toggle
func (h *VacationHandler) ToggleVacationDay(c *gin.Context) {
	var req dto.ToggleVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	state, err := h.vacationSvc.Toggle(c.Request.Context(), req.Date)
	if err != nil {
		h.handleVacationError(c, err)
		return
	}

	response.OK(c, state)
}

// SetVacationDay PUT /api/v1/vacation-days/:date
func (h *VacationHandler) SetVacationDay(c *gin.Context) {
	var req dto.SetVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	state, err := h.vacationSvc.Set(c.Request.Context(), c.Param("date"), *req.OnVacation)
	if err != nil {
		h.handleVacationError(c, err)
		return
	}

	response.OK(c, state)
}

// ImportCalendar marks the days covered by an ICS calendar as vacation.
// Accepts a multipart "file" upload or a JSON body with a url.
// POST /api/v1/vacation-days/import
func (h *VacationHandler) ImportCalendar(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if middleware.BodyTooLarge(err) {
		middleware.RespondBodyTooLarge(c)
		return
	}
	if err == nil {
		defer file.Close()
		resp, err := h.vacationSvc.ImportICS(c.Request.Context(), file)
		if err != nil {
			h.handleVacationError(c, err)
			return
		}
		response.OK(c, resp)
		return
	}

	var req dto.ImportCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if middleware.BodyTooLarge(err) {
			middleware.RespondBodyTooLarge(c)
			return
		}
		response.BadRequest(c, 10001, "upload an ICS file or provide a calendar url")
		return
	}

	resp, err := h.vacationSvc.ImportICSFromURL(c.Request.Context(), req.URL)
	if err != nil {
		h.handleVacationError(c, err)
		return
	}

	response.OK(c, resp)
}

// ExportCalendar vacation days as an iCalendar feed
// GET /api/v1/vacation-days/calendar.ics
func (h *VacationHandler) ExportCalendar(c *gin.Context) {
	data, err := h.vacationSvc.ExportICS(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `inline; filename="vacation-days.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

func (h *VacationHandler) handleVacationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "date must be YYYY-MM-DD")
	case errors.Is(err, service.ErrInvalidCalendar):
		response.ErrorWithDetails(c, http.StatusBadRequest, 23001, "calendar could not be parsed", err.Error())
	case errors.Is(err, service.ErrCalendarFetch):
		response.ErrorWithDetails(c, http.StatusBadGateway, 23002, "calendar could not be fetched", err.Error())
	default:
		response.InternalError(c)
	}
}
