package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"krishi/pkg/ai"
	"krishi/pkg/apperr"
	"krishi/pkg/chatbot/controller"
	"krishi/pkg/envelope"
)

type chatbotCtrl struct {
	chat ai.Client
	agri ai.Client
	log  *zap.Logger
}

// New serves /chatbot from chat and /agri-chatbot from agri.
func New(chat, agri ai.Client, log *zap.Logger) controller.ChatbotController {
	return &chatbotCtrl{chat: chat, agri: agri, log: log.Named("chatbot")}
}

// Chat answers {"message": ...}; the message is required.
func (h *chatbotCtrl) Chat(c echo.Context) error {
	payload, err := envelope.Payload(c)
	if err != nil {
		return envelope.Error(c, "Bad Request", http.StatusBadRequest)
	}
	if missing := envelope.Missing(payload, "message"); len(missing) > 0 {
		return envelope.Error(c, envelope.MissingMessage(missing), http.StatusBadRequest)
	}
	msg, err := envelope.Text(payload, "message")
	if err != nil {
		return envelope.Error(c, "Invalid value for message", http.StatusBadRequest)
	}
	return h.reply(c, h.chat, msg)
}

// AgriChat answers {"query": ...}. An empty query is not an error.
func (h *chatbotCtrl) AgriChat(c echo.Context) error {
	payload, err := envelope.Payload(c)
	if err != nil {
		return envelope.Error(c, "Bad Request", http.StatusBadRequest)
	}
	q, err := envelope.Text(payload, "query")
	if err != nil {
		return envelope.Error(c, "Invalid value for query", http.StatusBadRequest)
	}
	if q = strings.TrimSpace(q); q == "" {
		return envelope.Success(c, "Reply generated", echo.Map{"reply": "Please ask something."})
	}
	return h.reply(c, h.agri, q)
}

func (h *chatbotCtrl) reply(c echo.Context, llm ai.Client, msg string) error {
	r, err := llm.Reply(c.Request().Context(), msg)
	if err != nil {
		h.log.Error("reply failed", zap.Error(err))
		return envelope.ErrorWithData(c, "Failed to generate reply", echo.Map{"error": apperr.Diagnostic(err)}, http.StatusInternalServerError)
	}
	return envelope.Success(c, "Reply generated", echo.Map{"reply": r})
}
