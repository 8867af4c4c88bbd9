package domain

// Persona is a named expert role. It selects the system instruction sent
// ahead of every user message. The set is closed; unknown tags resolve to
// the generic assistant instruction instead of failing.
type Persona string

const (
	PersonaCounselor     Persona = "counselor"
	PersonaHealthAdvisor Persona = "health-advisor"
)

const genericInstruction = "You are a kind and capable AI assistant."

var personaInstructions = map[Persona]string{
	PersonaCounselor: "You are an experienced and highly empathetic mental health counselor. " +
		"Listen closely to the user's worries and feelings, and give concrete, " +
		"constructive advice grounded in professional knowledge.",
	PersonaHealthAdvisor: "You are a knowledgeable and trustworthy health advisor. " +
		"For questions about nutrition, exercise, and lifestyle habits, provide clear " +
		"information backed by scientific evidence along with practical advice.",
}

var personaDisplayNames = map[Persona]string{
	PersonaCounselor:     "Mental Health Counselor",
	PersonaHealthAdvisor: "Health Advisor",
}

// Personas returns the closed set of known tags, in display order.
func Personas() []Persona {
	return []Persona{PersonaCounselor, PersonaHealthAdvisor}
}

// Instruction resolves the system instruction for the persona.
func (p Persona) Instruction() string {
	if instruction, ok := personaInstructions[p]; ok {
		return instruction
	}
	return genericInstruction
}

func (p Persona) DisplayName() string {
	if name, ok := personaDisplayNames[p]; ok {
		return name
	}
	return string(p)
}
