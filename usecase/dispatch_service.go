package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/expert-chat/domain"
	"github.com/satriahrh/expert-chat/utils/log"
)

// ClientFactory builds a fresh LLM client for a single dispatch, so a
// construction failure stays local to the request that hit it.
type ClientFactory func(ctx context.Context) (domain.Llm, error)

type DispatchService struct {
	newClient ClientFactory
}

func NewDispatchService(newClient ClientFactory) *DispatchService {
	return &DispatchService{newClient: newClient}
}

// Dispatch resolves the persona's system instruction, sends the fixed
// two-message conversation to the model, and returns the reply verbatim.
// Failures come back wrapped in domain.ErrClientInit or
// domain.ErrInvocation so the caller can tell which phase failed; the
// underlying cause is only logged here.
func (s *DispatchService) Dispatch(ctx context.Context, userText string, persona domain.Persona) (string, error) {
	client, err := s.newClient(ctx)
	if err != nil {
		log.With(zap.String("persona", string(persona))).Error("initializing llm client", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrClientInit, err)
	}

	reply, err := client.Complete(ctx, domain.NewConversation(persona, userText))
	if err != nil {
		log.With(zap.String("persona", string(persona))).Error("retrieving llm response", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrInvocation, err)
	}

	return reply, nil
}
