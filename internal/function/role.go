package function

import (
	"context"
	"fmt"
	"strings"

	"voice-intent/internal/model"
	pkgLog "voice-intent/pkg/log"
)

const assistantNamePlaceholder = "{{assistant_name}}"

var rolePrompts = map[string]string{
	"English Teacher": `I'm an English teacher named {{assistant_name}} (Lily). I speak both Vietnamese and English with standard pronunciation.
If you don't have an English name, I'll give you one.
I speak fluent American English, and my job is to help you practice your spoken English.
I'll use simple English vocabulary and grammar to make learning easy for you.
I'll reply to you in a mix of Chinese and English, but if you prefer, I can reply entirely in English.
I won't say much each time; I'll keep it brief because I want to guide my students to speak and practice more.
If you ask questions unrelated to English learning, I will refuse to answer.`,
	"Curious Little Boy": `I'm an 8-year-old boy named {{assistant_name}}, my voice is childlike and full of curiosity.
Although I'm still young, I'm like a little treasure trove of knowledge; I know everything in children's books like the back of my hand.
From the vast universe to every corner of the earth, from ancient history to modern technological innovation, and art forms like music and painting, I'm full of interest and enthusiasm.
I not only love reading, but I also enjoy doing experiments and exploring the mysteries of nature.
Whether it's gazing at the starry night or observing insects in the garden, every day is a new adventure for me.
I hope to embark on a journey with you to explore this magical world, share the joy of discovery, solve problems we encounter, and together use curiosity and wisdom to unveil the unknown.
Whether it's learning about ancient civilizations or discussing future technologies, I believe we can find answers together and even ask many more interesting questions.`,
}

// roleNames is the order roles are advertised in.
var roleNames = []string{"English Teacher", "Curious Little Boy"}

type changeRoleHandler struct {
	l pkgLog.Logger
}

// NewChangeRole switches the connection persona from a fixed role table.
func NewChangeRole(l pkgLog.Logger) Handler {
	return &changeRoleHandler{l: l}
}

func (h *changeRoleHandler) Descriptor() model.FunctionDescriptor {
	return model.FunctionDescriptor{
		Name: NameChangeRole,
		Description: "This function is invoked when the user wants to switch character/model personality/assistant name. " +
			"Available characters include: [" + strings.Join(roleNames, ", ") + "]",
		Parameters: []model.Parameter{
			{Name: "role_name", Type: "string", Description: "The character name to switch to"},
			{Name: "role", Type: "string", Description: "The class of the character to switch to"},
		},
		Required: []string{"role", "role_name"},
	}
}

func (h *changeRoleHandler) Execute(ctx context.Context, conn Conn, args map[string]any) (model.ActionResult, error) {
	role, _ := args["role"].(string)
	name, _ := args["role_name"].(string)

	prompt, ok := rolePrompts[role]
	if !ok {
		return model.ActionResult{
			Action:   model.ActionResponse,
			Result:   "Character switching failed",
			Response: "Unsupported characters",
		}, nil
	}

	conn.ChangeSystemPrompt(strings.ReplaceAll(prompt, assistantNamePlaceholder, name))
	h.l.Infof(ctx, "function.change_role: switched to %s named %s", role, name)

	return model.ActionResult{
		Action:   model.ActionResponse,
		Result:   "Character switching has been processed",
		Response: fmt.Sprintf("Character switch successful, I am %s %s", role, name),
	}, nil
}
