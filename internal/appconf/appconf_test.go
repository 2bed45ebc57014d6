package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	testCases := []struct {
		flag string
		want Environment
	}{
		{"development", Development},
		{"test", Test},
		{"TEST", Test},
		{"production", Production},
		{" prod ", Production},
		{"staging", Development},
		{"", Development},
	}

	for _, tc := range testCases {
		t.Run(tc.flag, func(t *testing.T) {
			assert.Equal(t, tc.want, EnvFlagToEnvironment(tc.flag))
		})
	}
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "development", Development.String())
	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "production", Production.String())
}

func TestParseAPIKeys(t *testing.T) {
	assert.Nil(t, ParseAPIKeys(""))
	assert.Equal(t, []string{"a"}, ParseAPIKeys("a"))
	assert.Equal(t, []string{"a", "b"}, ParseAPIKeys(" a , ,b,"))
}
