package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T, key string)
	}{
		{
			name:  "string set",
			value: "api.example.com",
			check: func(t *testing.T, key string) { assert.Equal(t, "api.example.com", GetEnv(key, "fallback")) },
		},
		{
			name:  "string empty falls back",
			value: "",
			check: func(t *testing.T, key string) { assert.Equal(t, "fallback", GetEnv(key, "fallback")) },
		},
		{
			name:  "int",
			value: "-7",
			check: func(t *testing.T, key string) { assert.Equal(t, -7, GetEnvInt(key, 10)) },
		},
		{
			name:  "int malformed",
			value: "ten",
			check: func(t *testing.T, key string) { assert.Equal(t, 10, GetEnvInt(key, 10)) },
		},
		{
			name:  "duration",
			value: "1h30m",
			check: func(t *testing.T, key string) { assert.Equal(t, 90*time.Minute, GetEnvDuration(key, time.Second)) },
		},
		{
			name:  "duration without unit",
			value: "30",
			check: func(t *testing.T, key string) { assert.Equal(t, 5*time.Second, GetEnvDuration(key, 5*time.Second)) },
		},
		{
			name:  "bool numeric",
			value: "1",
			check: func(t *testing.T, key string) { assert.True(t, GetEnvBool(key, false)) },
		},
		{
			name:  "bool malformed",
			value: "yes please",
			check: func(t *testing.T, key string) { assert.True(t, GetEnvBool(key, true)) },
		},
		{
			name:  "float",
			value: "2.5",
			check: func(t *testing.T, key string) { assert.Equal(t, 2.5, GetEnvFloat(key, 1)) },
		},
		{
			name:  "float malformed",
			value: "2,5",
			check: func(t *testing.T, key string) { assert.Equal(t, 1.0, GetEnvFloat(key, 1)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const key = "PALANTIR_TEST_VALUE"
			t.Setenv(key, tt.value)
			tt.check(t, key)
		})
	}
}

func TestEnvHelpers_Unset(t *testing.T) {
	const key = "PALANTIR_TEST_UNSET_VALUE"
	assert.Equal(t, "d", GetEnv(key, "d"))
	assert.Equal(t, 3, GetEnvInt(key, 3))
	assert.Equal(t, time.Minute, GetEnvDuration(key, time.Minute))
	assert.False(t, GetEnvBool(key, false))
	assert.Equal(t, 0.5, GetEnvFloat(key, 0.5))
}
