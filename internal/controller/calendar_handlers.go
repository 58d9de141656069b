package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/YairBetsalel/tutor-path-finder/internal/calendar"
	"github.com/YairBetsalel/tutor-path-finder/internal/model"
	"github.com/YairBetsalel/tutor-path-finder/internal/service"
)

type CalendarHandlers struct {
	service CalendarService
}

type monthResponse struct {
	Year          int              `json:"year"`
	Month         int              `json:"month"`
	LeadingBlanks int              `json:"leading_blanks"`
	Days          int              `json:"days"`
	Availability  model.MonthIndex `json:"availability"`
}

func (h *CalendarHandlers) handleMonth(w http.ResponseWriter, r *http.Request) {
	grid, ok := parseMonthParams(w, r)
	if !ok {
		return
	}

	index, err := h.service.MonthAvailability(r.Context(), grid.Year, time.Month(grid.Month))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, monthResponse{
		Year:          grid.Year,
		Month:         grid.Month,
		LeadingBlanks: grid.LeadingBlanks,
		Days:          len(grid.Days),
		Availability:  index,
	})
}

func (h *CalendarHandlers) handleMonthImage(w http.ResponseWriter, r *http.Request) {
	grid, ok := parseMonthParams(w, r)
	if !ok {
		return
	}

	index, err := h.service.MonthAvailability(r.Context(), grid.Year, time.Month(grid.Month))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	png, err := calendar.RenderMonthImage(grid, index)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

type addAvailabilityRequest struct {
	Date  string              `json:"date" validate:"required"`
	Slots []service.SlotInput `json:"slots" validate:"required,dive"`
}

func (h *CalendarHandlers) handleAddAvailability(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token")
		return
	}

	var req addAvailabilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	date, err := time.ParseInLocation(model.DateKeyLayout, req.Date, time.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date")
		return
	}

	slots, err := h.service.AddAvailability(r.Context(), claims.UserID, date, req.Slots)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, slots)
}

// parseMonthParams reads {year}/{month} and builds the grid, writing the
// error response itself on bad input.
func parseMonthParams(w http.ResponseWriter, r *http.Request) (calendar.Grid, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_year")
		return calendar.Grid{}, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_month")
		return calendar.Grid{}, false
	}

	grid, err := calendar.MonthGrid(year, time.Month(month), time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_month")
		return calendar.Grid{}, false
	}
	return grid, true
}
