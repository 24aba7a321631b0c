package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffhive/hrms-backend-go/internal/domain/leave"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var applyReq leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.Apply(r.Context(), actor.ID, applyReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave applied", "leave_id", created.ID, "user_id", actor.ID)
	response.Created(w, "Leave request submitted", created)
}

// Decide implements LeaveHandler.
func (l *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaveID := chi.URLParam(r, "id")
	if leaveID == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	var decideReq leave.DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := l.leaveService.Decide(r.Context(), actor, leaveID, decideReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave decided", "leave_id", leaveID, "status", decided.Status, "approver", actor.ID)
	response.SuccessWithMessage(w, "Leave request "+decided.Status, decided)
}

// Get implements LeaveHandler.
func (l *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaveID := chi.URLParam(r, "id")
	if leaveID == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	result, err := l.leaveService.Get(r.Context(), actor, leaveID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements LeaveHandler.
func (l *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var status *leave.Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := leave.Status(s)
		status = &st
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	leaves, err := l.leaveService.ListMine(r.Context(), actor.ID, status, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}

// List implements LeaveHandler.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := leave.ListFilter{}
	if s := r.URL.Query().Get("status"); s != "" {
		st := leave.Status(s)
		filter.Status = &st
	}
	if d := r.URL.Query().Get("department"); d != "" {
		filter.Department = &d
	}
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	leaves, err := l.leaveService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leaves)
}
