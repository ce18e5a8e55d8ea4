package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-intent/internal/function"
	"voice-intent/internal/intent"
	"voice-intent/internal/model"
	"voice-intent/internal/session"
	"voice-intent/pkg/log"
)

var (
	_ intent.Session = (*session.Connection)(nil)
	_ function.Conn  = (*session.Connection)(nil)
)

type stubTools struct {
	tools []model.FunctionDescriptor
	err   error
}

func (s stubTools) ListTools(ctx context.Context) ([]model.FunctionDescriptor, error) {
	return s.tools, s.err
}

func TestConnection_PruneDialogue(t *testing.T) {
	c := session.NewConnection("dev-1", nil, nil, "")
	c.Append(
		model.DialogueTurn{Role: model.RoleUser, Content: "what's the weather"},
		model.DialogueTurn{Role: model.RoleFunction, Content: "get_weather"},
		model.DialogueTurn{Role: model.RoleTool, Content: "sunny"},
		model.DialogueTurn{Role: model.RoleAssistant, Content: "It's sunny"},
		model.DialogueTurn{Role: model.RoleUser, Content: "tell me a joke"},
	)

	c.PruneDialogue(model.RoleTool, model.RoleFunction)

	got := c.Dialogue()
	require.Len(t, got, 3)
	assert.Equal(t, "what's the weather", got[0].Content)
	assert.Equal(t, "It's sunny", got[1].Content)
	assert.Equal(t, "tell me a joke", got[2].Content)
}

func TestConnection_PruneNoRoles(t *testing.T) {
	c := session.NewConnection("dev-1", nil, nil, "")
	c.Append(model.DialogueTurn{Role: model.RoleTool, Content: "x"})
	c.PruneDialogue()
	assert.Len(t, c.Dialogue(), 1)
}

func TestConnection_DialogueIsSnapshot(t *testing.T) {
	c := session.NewConnection("dev-1", nil, nil, "")
	c.Append(model.DialogueTurn{Role: model.RoleUser, Content: "hi"})

	snap := c.Dialogue()
	snap[0].Content = "changed"

	assert.Equal(t, "hi", c.Dialogue()[0].Content)
}

func TestConnection_FunctionHandler(t *testing.T) {
	bare := session.NewConnection("dev-1", nil, nil, "")
	assert.False(t, bare.HasFunctionHandler())
	assert.Empty(t, bare.Functions())

	reg, err := function.NewDefaultRegistry(log.NewNop(), nil)
	require.NoError(t, err)

	c := session.NewConnection("dev-1", reg, nil, "")
	assert.True(t, c.HasFunctionHandler())
	assert.Len(t, c.Functions(), 3)
}

func TestConnection_RemoteTools(t *testing.T) {
	ctx := context.Background()

	none := session.NewConnection("dev-1", nil, nil, "")
	tools, err := none.RemoteTools(ctx)
	assert.NoError(t, err)
	assert.Nil(t, tools)

	remote := session.NewConnection("dev-1", nil, stubTools{tools: []model.FunctionDescriptor{{Name: "lookup"}}}, "")
	tools, err = remote.RemoteTools(ctx)
	require.NoError(t, err)
	assert.Equal(t, "lookup", tools[0].Name)

	failing := session.NewConnection("dev-1", nil, stubTools{err: errors.New("down")}, "")
	_, err = failing.RemoteTools(ctx)
	assert.Error(t, err)
}

func TestConnection_Flags(t *testing.T) {
	c := session.NewConnection("dev-1", nil, nil, "base prompt")
	assert.Equal(t, "base prompt", c.SystemPrompt())
	assert.False(t, c.CloseAfterChat())

	c.ChangeSystemPrompt("tutor prompt")
	c.SetCloseAfterChat(true)

	assert.Equal(t, "tutor prompt", c.SystemPrompt())
	assert.True(t, c.CloseAfterChat())
}

func TestConnection_ConcurrentAppendAndPrune(t *testing.T) {
	c := session.NewConnection("dev-1", nil, nil, "")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Append(model.DialogueTurn{Role: model.RoleUser, Content: "u"}, model.DialogueTurn{Role: model.RoleTool, Content: "t"})
		}()
		go func() {
			defer wg.Done()
			c.PruneDialogue(model.RoleTool)
		}()
	}
	wg.Wait()
	c.PruneDialogue(model.RoleTool)

	got := c.Dialogue()
	assert.Len(t, got, 50)
	for _, turn := range got {
		assert.Equal(t, model.RoleUser, turn.Role)
	}
}
