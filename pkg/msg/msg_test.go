package msg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	require.NoError(t, Init("testdata/messages.yml"))

	assert.Equal(t, `Load data for ID "18228265" and "4" days ...`, GetMessage("forecast.load.start", "18228265", 4))
	assert.Equal(t, "No weather data available", GetMessage("forecast.error.no-data"))
}

func TestGetMessageNonPrimitiveArgument(t *testing.T) {
	messages["test.struct"] = "payload {0}"

	got := GetMessage("test.struct", map[string]int{"days": 2})

	assert.Equal(t, `payload {"days":2}`, got)
}

func TestGetMessageUnknownKey(t *testing.T) {
	assert.Equal(t, "Message not found: unknown.key", GetMessage("unknown.key"))
}
