package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// contentTypes maps document extensions to MIME types; anything else is
// served as a generic byte stream.
var contentTypes = map[string]string{
	".txt":  "text/plain; charset=utf-8",
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// DownloadHandler serves document templates from a fixed directory.
type DownloadHandler struct {
	docsDir string
	logger  *slog.Logger
}

func NewDownloadHandler(docsDir string, logger *slog.Logger) *DownloadHandler {
	return &DownloadHandler{docsDir: docsDir, logger: logger}
}

// HandleDownload streams one document as an attachment.
//
// HTTP: GET /api/download/{filename}
//
// filepath.Base strips any path components from the request, so
// "../../etc/passwd" degrades to "passwd" inside docsDir — the lookup can
// never escape the directory.
func (h *DownloadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(chi.URLParam(r, "filename"))
	if filename == "." || filename == "/" || filename == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "a filename is required",
		})
		return
	}

	path := filepath.Join(h.docsDir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: fmt.Sprintf("document not found: %s", filename),
		})
		return
	}

	contentType, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	h.logger.Info("document download", slog.String("file", filename))
	http.ServeFile(w, r, path)
}
