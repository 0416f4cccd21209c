package rest

import "net/http"

type noteRequest struct {
	Content string `json:"content"`
}

// ListNotes handles GET /api/words/{id}/notes.
func (h *WordHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	wordID, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	notes, err := h.svc.ListNotes(r.Context(), wordID)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	resp := make([]noteResponse, len(notes))
	for i, n := range notes {
		resp[i] = toNoteResponse(n)
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddNote handles POST /api/words/{id}/notes.
func (h *WordHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	wordID, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	note, err := h.svc.AddNote(r.Context(), wordID, req.Content)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(*note))
}

// UpdateNote handles PUT /api/notes/{id}.
func (h *WordHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	note, err := h.svc.UpdateNote(r.Context(), id, req.Content)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(*note))
}

// DeleteNote handles DELETE /api/notes/{id}.
func (h *WordHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
