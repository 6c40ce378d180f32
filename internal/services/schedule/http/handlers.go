// Package http provides HTTP transport for the schedule service
package http

import (
	stdhttp "net/http"
	"strconv"

	"huddle/internal/modkit/httpkit"
	"huddle/internal/platform/logger"
	"huddle/internal/services/schedule/domain"
)

// Register mounts schedule endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ConflictInput](r, "/conflicts", h.conflicts)
	httpkit.PostJSON[domain.AvailabilityInput](r, "/availability", h.availability)
	httpkit.PostJSON[domain.BusyInput](r, "/busy", h.busy)

	httpkit.Get(r, "/users/{userID}/occurrences", h.occurrences)
	r.Get("/users/{userID}/busy.ics", h.busyICS)
}

type handlers struct{ svc domain.ServicePort }

func window(r *stdhttp.Request) domain.WindowQuery {
	q := r.URL.Query()
	return domain.WindowQuery{Start: q.Get("start"), End: q.Get("end")}
}

// swagger:route POST /schedule/conflicts Schedule scheduleConflicts
// @Summary Check a candidate slot against existing commitments
// @Description Unparseable input yields checked=false instead of an error
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body domain.ConflictInput true "Candidate"
// @Success 200 {object} domain.ConflictReport "ok"
// @Failure 503 {object} httpkit.Envelope "commitments unavailable"
// @Router /schedule/conflicts [post]
func (h *handlers) conflicts(r *stdhttp.Request, in domain.ConflictInput) (any, error) {
	return h.svc.CheckConflicts(r.Context(), in)
}

// swagger:route POST /schedule/availability Schedule scheduleAvailability
// @Summary Slots where every user is free
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body domain.AvailabilityInput true "Query"
// @Success 200 {object} domain.AvailabilityReport "ok"
// @Failure 400 {object} httpkit.Envelope "invalid query"
// @Router /schedule/availability [post]
func (h *handlers) availability(r *stdhttp.Request, in domain.AvailabilityInput) (any, error) {
	return h.svc.ResolveAvailability(r.Context(), in)
}

// swagger:route POST /schedule/busy Schedule scheduleBusy
// @Summary Merged busy and free windows per user
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body domain.BusyInput true "Query"
// @Success 200 {array} domain.UserBusy "ok"
// @Failure 400 {object} httpkit.Envelope "invalid query"
// @Router /schedule/busy [post]
func (h *handlers) busy(r *stdhttp.Request, in domain.BusyInput) (any, error) {
	return h.svc.Busy(r.Context(), in)
}

// swagger:route GET /schedule/users/{userID}/occurrences Schedule scheduleOccurrences
// @Summary Expanded occurrences of one user
// @Tags Schedule
// @Produce json
// @Param userID path string true "User"
// @Param start query string true "Window start" example(2025-01-01T00:00:00)
// @Param end query string true "Window end" example(2025-02-01T00:00:00)
// @Success 200 {object} domain.OccurrenceReport "ok"
// @Failure 400 {object} httpkit.Envelope "invalid query"
// @Router /schedule/users/{userID}/occurrences [get]
func (h *handlers) occurrences(r *stdhttp.Request) (any, error) {
	user := domain.UserID(httpkit.URLParam(r, "userID"))
	return h.svc.Occurrences(r.Context(), user, window(r))
}

// swagger:route GET /schedule/users/{userID}/busy.ics Schedule scheduleBusyICS
// @Summary Busy time of one user as iCalendar
// @Tags Schedule
// @Produce text/calendar
// @Param userID path string true "User"
// @Param start query string true "Window start" example(2025-01-01T00:00:00)
// @Param end query string true "Window end" example(2025-02-01T00:00:00)
// @Success 200 {string} string "VCALENDAR"
// @Failure 400 {object} httpkit.Envelope "invalid query"
// @Router /schedule/users/{userID}/busy.ics [get]
func (h *handlers) busyICS(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	user := domain.UserID(httpkit.URLParam(r, "userID"))
	body, err := h.svc.ExportBusy(r.Context(), user, window(r))
	if err != nil {
		httpkit.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(stdhttp.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.C(r.Context()).Warn().Err(err).Msg("write busy calendar")
	}
}
