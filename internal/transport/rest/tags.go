package rest

import (
	"net/http"

	"github.com/heartmarshall/wordbook/internal/service/dictionary"
)

type tagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ListTags handles GET /api/tags.
func (h *WordHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.ListTags(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	resp := make([]tagResponse, len(tags))
	for i, t := range tags {
		resp[i] = toTagResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateTag handles POST /api/tags.
func (h *WordHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	tag, err := h.svc.CreateTag(r.Context(), dictionary.CreateTagInput{Name: req.Name, Color: req.Color})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTagResponse(*tag))
}

// DeleteTag handles DELETE /api/tags/{id}.
func (h *WordHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteTag(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TagWord handles PUT /api/words/{id}/tags/{tagID}.
func (h *WordHandler) TagWord(w http.ResponseWriter, r *http.Request) {
	h.changeTag(w, r, true)
}

// UntagWord handles DELETE /api/words/{id}/tags/{tagID}.
func (h *WordHandler) UntagWord(w http.ResponseWriter, r *http.Request) {
	h.changeTag(w, r, false)
}

func (h *WordHandler) changeTag(w http.ResponseWriter, r *http.Request, attach bool) {
	wordID, err := pathID(r, "id")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	tagID, err := pathID(r, "tagID")
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	change := h.svc.UntagWord
	if attach {
		change = h.svc.TagWord
	}
	word, err := change(r.Context(), wordID, tagID)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(*word))
}
