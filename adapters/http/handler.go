package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/satriahrh/expert-chat/domain"
	"github.com/satriahrh/expert-chat/usecase"
)

// User-facing sentinel strings. A dispatch failure never surfaces its
// underlying detail to the browser, only one of these.
const (
	SentinelClientInit = "Model initialization failed. Please check the configuration."
	SentinelInvocation = "An error occurred while retrieving the answer. Please try again later."

	EmptyInputWarning = "Please enter your question."
)

type AskHandler struct {
	dispatcher *usecase.DispatchService
}

type AskRequest struct {
	Persona  string `json:"persona"`
	Question string `json:"question"`
}

type AskResponse struct {
	Persona string `json:"persona"`
	Answer  string `json:"answer"`
	Failed  bool   `json:"failed,omitempty"`
}

type PersonaInfo struct {
	Tag         string `json:"tag"`
	DisplayName string `json:"display_name"`
}

func NewAskHandler(dispatcher *usecase.DispatchService) *AskHandler {
	return &AskHandler{dispatcher: dispatcher}
}

// Ask handles POST /api/v1/ask. Blank input is rejected here, before the
// dispatcher runs, so no network call is made for it.
func (h *AskHandler) Ask(c echo.Context) error {
	var req AskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Question) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, EmptyInputWarning)
	}

	persona := domain.Persona(req.Persona)
	answer, err := h.dispatcher.Dispatch(c.Request().Context(), req.Question, persona)
	if err != nil {
		sentinel := SentinelInvocation
		if errors.Is(err, domain.ErrClientInit) {
			sentinel = SentinelClientInit
		}
		return c.JSON(http.StatusOK, AskResponse{
			Persona: string(persona),
			Answer:  sentinel,
			Failed:  true,
		})
	}

	return c.JSON(http.StatusOK, AskResponse{
		Persona: string(persona),
		Answer:  answer,
	})
}

// Personas handles GET /api/v1/personas: the closed set the form offers.
func (h *AskHandler) Personas(c echo.Context) error {
	personas := domain.Personas()
	infos := make([]PersonaInfo, len(personas))
	for i, p := range personas {
		infos[i] = PersonaInfo{Tag: string(p), DisplayName: p.DisplayName()}
	}
	return c.JSON(http.StatusOK, infos)
}

// Health check endpoint
func (h *AskHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "expert-chat",
	})
}
