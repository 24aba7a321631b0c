package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/staffhive/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Mark implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var markReq attendance.MarkAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := a.attendanceService.Mark(r.Context(), actor.ID, markReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked", "user_id", actor.ID, "date", created.Date, "status", created.Status)
	response.Created(w, "Attendance marked", created)
}

func parseAttendanceFilter(r *http.Request) attendance.ListFilter {
	filter := attendance.ListFilter{}
	if from := r.URL.Query().Get("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.From = &t
		}
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filter.To = &t
		}
	}
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if d := r.URL.Query().Get("department"); d != "" {
		filter.Department = &d
	}
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return filter
}

// ListMine implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := a.attendanceService.ListMine(r.Context(), actor.ID, parseAttendanceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := a.attendanceService.List(r.Context(), actor, parseAttendanceFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
