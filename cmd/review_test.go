package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainmocks "github.com/llm4s/szmigrate/internal/domain/mocks"
)

func TestReviewCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	swapWorkflow(t, mockWorkflow)

	mockWorkflow.On("Review").Return(nil)

	require.NoError(t, executeCommand(t, "review"))
}

func TestNewReviewCmd(t *testing.T) {
	cmd := newReviewCmd()

	assert.Equal(t, "review", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}
