package handlers

import (
	"net/http"

	services "travel-buddy/service"
)

type PromptHandler struct {
	promptService *services.LocationPromptService
}

func NewPromptHandler(promptService *services.LocationPromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

type promptResponse struct {
	Dismissed    bool `json:"dismissed"`
	Accepted     bool `json:"accepted"`
	ShouldPrompt bool `json:"should_prompt"`
}

func (h *PromptHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.promptService.State(sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promptResponse{state.Dismissed, state.Accepted, state.ShouldPrompt()})
}

func (h *PromptHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	state, err := h.promptService.Dismiss(sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promptResponse{state.Dismissed, state.Accepted, state.ShouldPrompt()})
}

func (h *PromptHandler) Accept(w http.ResponseWriter, r *http.Request) {
	state, err := h.promptService.Accept(sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promptResponse{state.Dismissed, state.Accepted, state.ShouldPrompt()})
}
