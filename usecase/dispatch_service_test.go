package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriahrh/expert-chat/domain"
)

type fakeLlm struct {
	calls    int
	received []domain.ChatMessage
	reply    string
	err      error
}

func (f *fakeLlm) Complete(_ context.Context, messages []domain.ChatMessage) (string, error) {
	f.calls++
	f.received = messages
	return f.reply, f.err
}

func factoryFor(client domain.Llm) ClientFactory {
	return func(context.Context) (domain.Llm, error) { return client, nil }
}

func TestDispatchReturnsReplyVerbatim(t *testing.T) {
	fake := &fakeLlm{reply: "T"}
	svc := NewDispatchService(factoryFor(fake))

	reply, err := svc.Dispatch(context.Background(), "hello", domain.PersonaHealthAdvisor)

	require.NoError(t, err)
	assert.Equal(t, "T", reply)
}

func TestDispatchSendsTwoMessageConversation(t *testing.T) {
	fake := &fakeLlm{reply: "take a walk"}
	svc := NewDispatchService(factoryFor(fake))

	userText := "I feel anxious about work"
	_, err := svc.Dispatch(context.Background(), userText, domain.PersonaCounselor)
	require.NoError(t, err)

	assert.Equal(t, 1, fake.calls)
	require.Len(t, fake.received, 2)
	assert.Equal(t, domain.SystemRole, fake.received[0].Role)
	assert.Equal(t, domain.PersonaCounselor.Instruction(), fake.received[0].Content)
	assert.Equal(t, domain.UserRole, fake.received[1].Role)
	assert.Equal(t, userText, fake.received[1].Content)
}

func TestDispatchUnknownPersonaUsesGenericInstruction(t *testing.T) {
	fake := &fakeLlm{reply: "ok"}
	svc := NewDispatchService(factoryFor(fake))

	_, err := svc.Dispatch(context.Background(), "hi", domain.Persona("astronaut"))
	require.NoError(t, err)

	require.Len(t, fake.received, 2)
	assert.Equal(t, domain.Persona("astronaut").Instruction(), fake.received[0].Content)
}

func TestDispatchClientInitFailure(t *testing.T) {
	svc := NewDispatchService(func(context.Context) (domain.Llm, error) {
		return nil, errors.New("bad credentials")
	})

	reply, err := svc.Dispatch(context.Background(), "hello", domain.PersonaCounselor)

	assert.Empty(t, reply)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClientInit)
	assert.NotErrorIs(t, err, domain.ErrInvocation)
}

func TestDispatchInvocationFailure(t *testing.T) {
	fake := &fakeLlm{err: errors.New("quota exceeded")}
	svc := NewDispatchService(factoryFor(fake))

	reply, err := svc.Dispatch(context.Background(), "hello", domain.PersonaCounselor)

	assert.Empty(t, reply)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvocation)
	assert.NotErrorIs(t, err, domain.ErrClientInit)
}
