package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeDeliveryStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewMarkDeliveredCommand(5, 10)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(5), cmd.OrderID())
	assert.Equal(t, int64(10), cmd.ConsumerID())
	assert.True(t, cmd.Delivered())

	cmd, err = commands.NewMarkUndeliveredCommand(5, 10)
	require.NoError(t, err)
	assert.False(t, cmd.Delivered())
}

func TestNewChangeDeliveryStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewChangeDeliveryStatusCommand(0, 0, true)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "order id")
	assert.Contains(t, err.Error(), "consumer id")
}

func TestChangeDeliveryStatusCommand_NotConstructed(t *testing.T) {
	cmd := commands.ChangeDeliveryStatusCommand{}

	require.ErrorIs(t, cmd.Validate(), commands.ErrChangeDeliveryStatusCommandIsNotConstructed)
}
