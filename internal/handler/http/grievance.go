package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffhive/hrms-backend-go/internal/domain/grievance"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/response"
)

// maxAttachmentSize caps grievance attachments at 5 MB.
const maxAttachmentSize = 5 << 20

type GrievanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type GrievanceHandlerImpl struct {
	grievanceService grievance.GrievanceService
}

func NewGrievanceHandler(grievanceService grievance.GrievanceService) GrievanceHandler {
	return &GrievanceHandlerImpl{
		grievanceService: grievanceService,
	}
}

// Create implements GrievanceHandler. Accepts multipart form data with a
// JSON "data" field and an optional "attachment" file.
func (g *GrievanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	var createReq grievance.CreateGrievanceRequest
	if err := json.Unmarshal([]byte(dataJSON), &createReq); err != nil {
		slog.Error("Failed to unmarshal grievance data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	var attachment *grievance.Attachment
	formFile, fileHeader, err := r.FormFile("attachment")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if err == nil {
		defer formFile.Close()
		content, readErr := io.ReadAll(io.LimitReader(formFile, maxAttachmentSize+1))
		if readErr != nil {
			slog.Error("Failed to read attachment", "error", readErr)
			response.BadRequest(w, "Invalid file upload", nil)
			return
		}
		if len(content) > maxAttachmentSize {
			response.BadRequest(w, "Attachment exceeds 5MB limit", nil)
			return
		}
		attachment = &grievance.Attachment{
			Content:      content,
			OriginalName: fileHeader.Filename,
			MimeType:     fileHeader.Header.Get("Content-Type"),
			Size:         int64(len(content)),
		}
	}

	created, err := g.grievanceService.Create(r.Context(), actor.ID, createReq, attachment)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Grievance filed", "grievance_id", created.ID, "user_id", actor.ID, "priority", created.Priority)
	response.Created(w, "Grievance filed", created)
}

// Respond implements GrievanceHandler.
func (g *GrievanceHandlerImpl) Respond(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	grievanceID := chi.URLParam(r, "id")
	if grievanceID == "" {
		response.BadRequest(w, "Grievance ID is required", nil)
		return
	}

	var respondReq grievance.RespondGrievanceRequest
	if err := json.NewDecoder(r.Body).Decode(&respondReq); err != nil {
		slog.Error("Respond grievance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := g.grievanceService.Respond(r.Context(), actor, grievanceID, respondReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Grievance responded", "grievance_id", grievanceID, "status", updated.Status, "responder", actor.ID)
	response.SuccessWithMessage(w, "Grievance updated", updated)
}

// Get implements GrievanceHandler.
func (g *GrievanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	grievanceID := chi.URLParam(r, "id")
	if grievanceID == "" {
		response.BadRequest(w, "Grievance ID is required", nil)
		return
	}

	result, err := g.grievanceService.Get(r.Context(), actor, grievanceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements GrievanceHandler.
func (g *GrievanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var status *grievance.Status
	if s := r.URL.Query().Get("status"); s != "" {
		st := grievance.Status(s)
		status = &st
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	grievances, err := g.grievanceService.ListMine(r.Context(), actor.ID, status, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grievances)
}

// List implements GrievanceHandler.
func (g *GrievanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := grievance.ListFilter{}
	if s := r.URL.Query().Get("status"); s != "" {
		st := grievance.Status(s)
		filter.Status = &st
	}
	if c := r.URL.Query().Get("category"); c != "" {
		cat := grievance.Category(c)
		filter.Category = &cat
	}
	if p := r.URL.Query().Get("priority"); p != "" {
		pr := grievance.Priority(p)
		filter.Priority = &pr
	}
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	grievances, err := g.grievanceService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grievances)
}
