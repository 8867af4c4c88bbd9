package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaInstruction(t *testing.T) {
	tests := []struct {
		persona Persona
		want    string
	}{
		{
			persona: PersonaCounselor,
			want: "You are an experienced and highly empathetic mental health counselor. " +
				"Listen closely to the user's worries and feelings, and give concrete, " +
				"constructive advice grounded in professional knowledge.",
		},
		{
			persona: PersonaHealthAdvisor,
			want: "You are a knowledgeable and trustworthy health advisor. " +
				"For questions about nutrition, exercise, and lifestyle habits, provide clear " +
				"information backed by scientific evidence along with practical advice.",
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.persona), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.persona.Instruction())
		})
	}
}

func TestPersonaInstructionUnknownTagFallsBack(t *testing.T) {
	for _, tag := range []Persona{"", "sommelier", "COUNSELOR"} {
		assert.Equal(t, "You are a kind and capable AI assistant.", tag.Instruction(), "tag %q", tag)
	}
}

func TestPersonasIsClosedSet(t *testing.T) {
	assert.Equal(t, []Persona{PersonaCounselor, PersonaHealthAdvisor}, Personas())
}

func TestPersonaDisplayName(t *testing.T) {
	assert.Equal(t, "Mental Health Counselor", PersonaCounselor.DisplayName())
	assert.Equal(t, "Health Advisor", PersonaHealthAdvisor.DisplayName())
	assert.Equal(t, "sommelier", Persona("sommelier").DisplayName())
}

func TestNewConversation(t *testing.T) {
	userText := "  I feel anxious about work \n"
	messages := NewConversation(PersonaCounselor, userText)

	require.Len(t, messages, 2)
	assert.Equal(t, SystemRole, messages[0].Role)
	assert.Equal(t, PersonaCounselor.Instruction(), messages[0].Content)
	assert.Equal(t, UserRole, messages[1].Role)
	// User text goes through verbatim, whitespace included.
	assert.Equal(t, userText, messages[1].Content)
}
