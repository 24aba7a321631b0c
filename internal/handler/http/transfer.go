package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffhive/hrms-backend-go/internal/domain/transfer"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/response"
)

type TransferHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type TransferHandlerImpl struct {
	transferService transfer.TransferService
}

func NewTransferHandler(transferService transfer.TransferService) TransferHandler {
	return &TransferHandlerImpl{
		transferService: transferService,
	}
}

// Request implements TransferHandler.
func (t *TransferHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var transferReq transfer.RequestTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&transferReq); err != nil {
		slog.Error("Request transfer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := t.transferService.Request(r.Context(), actor.ID, transferReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Transfer requested", "transfer_id", created.ID, "user_id", actor.ID)
	response.Created(w, "Transfer request submitted", created)
}

// Decide implements TransferHandler.
func (t *TransferHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	transferID := chi.URLParam(r, "id")
	if transferID == "" {
		response.BadRequest(w, "Transfer ID is required", nil)
		return
	}

	var decideReq transfer.DecideTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide transfer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := t.transferService.Decide(r.Context(), actor, transferID, decideReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Transfer decided", "transfer_id", transferID, "status", decided.Status, "approver", actor.ID)
	response.SuccessWithMessage(w, "Transfer request "+decided.Status, decided)
}

// Get implements TransferHandler.
func (t *TransferHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	transferID := chi.URLParam(r, "id")
	if transferID == "" {
		response.BadRequest(w, "Transfer ID is required", nil)
		return
	}

	result, err := t.transferService.Get(r.Context(), actor, transferID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements TransferHandler.
func (t *TransferHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	transfers, err := t.transferService.ListMine(r.Context(), actor.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, transfers)
}

// List implements TransferHandler.
func (t *TransferHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var status *transfer.Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := transfer.Status(s)
		status = &st
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	transfers, err := t.transferService.List(r.Context(), actor, status, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, transfers)
}
