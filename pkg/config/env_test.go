package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("CMSDESK_TEST_STRING", "  value  ")
	assert.Equal(t, "value", GetEnvString("CMSDESK_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("CMSDESK_TEST_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "25", want: 25},
		{name: "negative", value: "-3", want: -3},
		{name: "invalid falls back", value: "ten", want: 10},
		{name: "empty falls back", value: "", want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CMSDESK_TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("CMSDESK_TEST_INT", 10))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("CMSDESK_TEST_FLOAT", "2.5")
	assert.InDelta(t, 2.5, GetEnvFloat("CMSDESK_TEST_FLOAT", 0), 0.0001)

	t.Setenv("CMSDESK_TEST_FLOAT", "fast")
	assert.InDelta(t, 1.0, GetEnvFloat("CMSDESK_TEST_FLOAT", 1), 0.0001)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("CMSDESK_TEST_BOOL", "true")
	assert.True(t, GetEnvBool("CMSDESK_TEST_BOOL", false))

	t.Setenv("CMSDESK_TEST_BOOL", "0")
	assert.False(t, GetEnvBool("CMSDESK_TEST_BOOL", true))

	t.Setenv("CMSDESK_TEST_BOOL", "maybe")
	assert.True(t, GetEnvBool("CMSDESK_TEST_BOOL", true))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("CMSDESK_TEST_DURATION", "750ms")
	assert.Equal(t, 750*time.Millisecond, GetEnvDuration("CMSDESK_TEST_DURATION", time.Second))

	t.Setenv("CMSDESK_TEST_DURATION", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("CMSDESK_TEST_DURATION", time.Second))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration("timeout", time.Second))
	assert.Error(t, ValidatePositiveDuration("timeout", 0))

	assert.NoError(t, ValidateIntRange("page size", 10, 1, 100))
	assert.Error(t, ValidateIntRange("page size", 0, 1, 100))
	assert.Error(t, ValidateIntRange("page size", 101, 1, 100))
	assert.Error(t, ValidateIntRange("page size", 5, 10, 1))

	assert.NoError(t, ValidateNonNegative("rps", 0))
	assert.Error(t, ValidateNonNegative("rps", -1))
}
