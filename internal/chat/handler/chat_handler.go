// Package handler exposes the chat services over HTTP.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"msgtags/internal/chat/service"
	"msgtags/internal/common"
)

const defaultHistoryLimit = 50

type ChatHandler struct {
	chatService service.ChatService
	tagManager  service.TagManager
	tagQuery    service.TagQueryEngine
	log         *slog.Logger
}

func NewChatHandler(chatService service.ChatService, tagManager service.TagManager, tagQuery service.TagQueryEngine, log *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		tagManager:  tagManager,
		tagQuery:    tagQuery,
		log:         log.With("component", "chat_handler"),
	}
}

// RegisterRoutes mounts the message routes on r, usually the /api/v1 subrouter.
func (h *ChatHandler) RegisterRoutes(r *mux.Router) {
	messages := r.PathPrefix("/messages").Subrouter()

	// registered before /{id} so it is not taken for an id
	messages.HandleFunc("/grouped-by-tags", h.GetMessagesGroupedByTags).Methods(http.MethodPost)

	messages.HandleFunc("", h.SendMessage).Methods(http.MethodPost)
	messages.HandleFunc("/{id}", h.GetMessage).Methods(http.MethodGet)
	messages.HandleFunc("/{id}", h.DeleteMessage).Methods(http.MethodDelete)
	messages.HandleFunc("/{id}/tags", h.AddTag).Methods(http.MethodPost)
	messages.HandleFunc("/{id}/tags", h.RemoveTag).Methods(http.MethodDelete)
	messages.HandleFunc("/{id}/tags/history", h.TagHistory).Methods(http.MethodGet)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	msg, err := h.chatService.SendMessage(r.Context(), req.ConversationID, req.SenderID, req.Text, req.Tags)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *ChatHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	msg, err := h.chatService.GetMessage(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	msg, err := h.chatService.DeleteMessage(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *ChatHandler) AddTag(w http.ResponseWriter, r *http.Request) {
	var req TagRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	msg, err := h.tagManager.AddTag(r.Context(), req.Tag, req.ActorID, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *ChatHandler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	var req TagRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	msg, err := h.tagManager.RemoveTag(r.Context(), req.Tag, req.ActorID, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (h *ChatHandler) TagHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeError(w, r, common.NewInvalidInputError("limit", "must be a non-negative integer"))
			return
		}
		limit = n
	}

	events, err := h.tagManager.TagHistory(r.Context(), mux.Vars(r)["id"], limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *ChatHandler) GetMessagesGroupedByTags(w http.ResponseWriter, r *http.Request) {
	var req GroupedByTagsRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	groups, err := h.tagQuery.GetMessagesGroupedByTags(r.Context(), req.ConversationIDs, req.Tags)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// writeError maps domain errors to status codes. Unknown errors are logged
// and reported without detail.
func (h *ChatHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
