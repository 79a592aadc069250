package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dkireev/filedepot/internal/server/files"
	"github.com/dkireev/filedepot/internal/shared"
)

type createFileRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	// Clients send parentId either as a number (0 for root) or as a record
	// id string; both are accepted.
	ParentID any    `json:"parentId"`
	Data     string `json:"data"`
}

func (req *createFileRequest) parentRef() string {
	switch v := req.ParentID.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	return ""
}

func (s *Server) handleCreateFile(w http.ResponseWriter, r *http.Request) {

	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req createFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, shared.ErrorMissingName)
		return
	}

	var data []byte
	if req.Data != "" {
		if data, err = base64.StdEncoding.DecodeString(req.Data); err != nil {
			s.writeError(w, r, shared.ErrorMissingData)
			return
		}
	}

	file, err := s.files.Create(r.Context(), user.ID, req.Name, req.Type, req.parentRef(), req.IsPublic, data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, file)
}

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {

	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	listing, err := s.files.List(r.Context(), user.ID, r.URL.Query().Get("parentId"), page)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

func (s *Server) handleGetFile(w http.ResponseWriter, r *http.Request) {

	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	file, err := s.files.Get(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, file)
}

func (s *Server) setVisibility(w http.ResponseWriter, r *http.Request, public bool) {

	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	file, err := s.files.SetVisibility(r.Context(), user.ID, r.PathValue("id"), public)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, file)
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	s.setVisibility(w, r, true)
}

func (s *Server) handleUnpublish(w http.ResponseWriter, r *http.Request) {
	s.setVisibility(w, r, false)
}

func (s *Server) handleFileData(w http.ResponseWriter, r *http.Request) {

	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, file, err := s.files.Content(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if file.Type == files.KindImage {
		w.Header().Set("Content-Type", "application/octet-stream")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
