package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"noteshare/internal/server/models"
	"noteshare/internal/server/services"
)

// NoteHandler serves note CRUD and collaborator management. All routes
// sit behind WithAuthentication; the caller identity comes from the
// request context.
type NoteHandler struct {
	notes   *services.NoteService
	collabs *services.CollaborationService
}

func NewNoteHandler(notes *services.NoteService, collabs *services.CollaborationService) *NoteHandler {
	return &NoteHandler{notes: notes, collabs: collabs}
}

type noteRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteResponse(note *models.Note) noteResponse {
	return noteResponse{
		ID:        note.ID,
		OwnerID:   note.OwnerID,
		Title:     note.Title,
		Body:      note.Body,
		Tags:      note.Tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing token")
	}
	return userID, ok
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.notes.Create(r.Context(), userID, req.Title, req.Body, req.Tags)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	note, err := h.notes.Get(r.Context(), userID, chi.URLParam(r, "noteID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.notes.Update(r.Context(), userID, chi.URLParam(r, "noteID"), req.Title, req.Body, req.Tags)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.notes.Delete(r.Context(), userID, chi.URLParam(r, "noteID")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	notes, err := h.notes.List(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	result := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, toNoteResponse(note))
	}
	writeJSON(w, http.StatusOK, result)
}

type collaboratorRequest struct {
	UserID string `json:"user_id"`
}

type collaboratorResponse struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *NoteHandler) AddCollaborator(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req collaboratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	grant, err := h.collabs.Add(r.Context(), userID, chi.URLParam(r, "noteID"), req.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, collaboratorResponse{
		UserID:    grant.UserID,
		CreatedAt: grant.CreatedAt,
	})
}

func (h *NoteHandler) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	err := h.collabs.Remove(r.Context(), userID, chi.URLParam(r, "noteID"), chi.URLParam(r, "userID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NoteHandler) ListCollaborators(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	grants, err := h.collabs.List(r.Context(), userID, chi.URLParam(r, "noteID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	result := make([]collaboratorResponse, 0, len(grants))
	for _, grant := range grants {
		result = append(result, collaboratorResponse{UserID: grant.UserID, CreatedAt: grant.CreatedAt})
	}
	writeJSON(w, http.StatusOK, result)
}
