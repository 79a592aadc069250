package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dkireev/filedepot/internal/server/auth"
	"github.com/dkireev/filedepot/internal/server/users"
	"github.com/dkireev/filedepot/internal/shared"
)

type userDocument struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func newUserDocument(u *users.User) userDocument {
	return userDocument{ID: u.ID, Email: u.Email}
}

// authenticate resolves the request token to a full identity via the gate.
func (s *Server) authenticate(r *http.Request) (*users.User, error) {
	return s.gate.Authenticate(r.Context(), r.Header.Get(shared.TokenHeaderName))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	writeJSON(w, http.StatusOK, map[string]bool{
		"redis": s.sessions.Ping(ctx) == nil,
		"db":    s.db != nil && s.db.PingContext(ctx) == nil,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	usersCount, err := s.users.Count(ctx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	filesCount, err := s.files.Count(ctx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"users": usersCount,
		"files": filesCount,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, shared.ErrorMissingEmail)
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newUserDocument(user))
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {

	email, password, err := auth.ParseBasicCredentials(r.Header.Get("Authorization"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	token, err := s.users.Login(r.Context(), email, password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {

	err := s.users.Logout(r.Context(), r.Header.Get(shared.TokenHeaderName))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {

	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newUserDocument(user))
}
