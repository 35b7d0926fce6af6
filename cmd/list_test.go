package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/llm4s/szmigrate/internal/domain"
	domainmocks "github.com/llm4s/szmigrate/internal/domain/mocks"
	m "github.com/llm4s/szmigrate/internal/model"
)

func TestListCmd_ForwardsArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	mockWorkflow.On("Estimate", mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == m.Path("./engine") &&
			len(args.Exclude) == 1 && args.Exclude[0] == `^vendor/`
	})).Return(nil)

	require.NoError(t, executeCommand(t, "list", "-x", `^vendor/`, "./engine"))

	listExcludeFlags = nil
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("exclude"))
}
