package handler

import (
	"errors"
	"net/http"

	"github.com/jmarek/space-voyages/backend/internal/domain"
)

// chatFallbackMessage is shown to the end user whenever the upstream API
// fails; raw upstream errors never reach the chat widget.
const chatFallbackMessage = "Error: unable to get response at this time."

// chatRequest is the body of POST /api/chatbot.
type chatRequest struct {
	Conversation []domain.ChatTurn `json:"conversation"`
}

// chatResponse is the success body of POST /api/chatbot.
type chatResponse struct {
	Reply string `json:"reply"`
}

// Chatbot handles POST /api/chatbot.
// It forwards the conversation history to the text-generation API and returns
// the next assistant turn.
func (s *Server) Chatbot(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil || req.Conversation == nil {
		writeFlatError(w, http.StatusBadRequest, "Invalid request: conversation array is required")
		return
	}

	reply, err := s.chat.Reply(r.Context(), req.Conversation)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeFlatError(w, http.StatusBadRequest, "Invalid request: conversation array is required")
			return
		}
		writeFlatError(w, http.StatusInternalServerError, chatFallbackMessage)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
