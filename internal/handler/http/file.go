package http

import (
	"net/http"
	"strconv"

	"github.com/staffhive/hrms-backend-go/internal/domain/file"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/response"
)

type FileHandler interface {
	Access(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type FileHandlerImpl struct {
	fileService file.FileService
}

func NewFileHandler(fileService file.FileService) FileHandler {
	return &FileHandlerImpl{
		fileService: fileService,
	}
}

// Access implements FileHandler. The blob name arrives as a query parameter
// because blob names contain path separators.
func (f *FileHandlerImpl) Access(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	blobName := r.URL.Query().Get("blob")
	if blobName == "" {
		response.BadRequest(w, "Query parameter 'blob' is required", nil)
		return
	}

	access, err := f.fileService.Access(r.Context(), actor, blobName)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, access)
}

// ListMine implements FileHandler.
func (f *FileHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	files, err := f.fileService.ListMine(r.Context(), actor.ID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, files)
}
