// Copyright (C) 2024 Clyso GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	key := "SMARTMON_TEST_KEY"
	fallback := "default_value"

	// Test when the environment variable is not set
	value := getEnv(key, fallback)
	assert.Equal(t, fallback, value)

	// Test when the environment variable is set, even to an empty value
	t.Setenv(key, "expected_value")
	assert.Equal(t, "expected_value", getEnv(key, fallback))

	t.Setenv(key, "")
	assert.Equal(t, "", getEnv(key, fallback))
}

func TestGetEnvInt(t *testing.T) {
	key := "SMARTMON_TEST_INT"
	assert.Equal(t, 5, getEnvInt(key, 5))

	t.Setenv(key, "42")
	assert.Equal(t, 42, getEnvInt(key, 5))

	t.Setenv(key, "forty-two")
	assert.Equal(t, 5, getEnvInt(key, 5))
}

func TestGetEnvFloat(t *testing.T) {
	key := "SMARTMON_TEST_FLOAT"
	assert.Equal(t, 60.0, getEnvFloat(key, 60))

	t.Setenv(key, "10.000")
	assert.Equal(t, 10.0, getEnvFloat(key, 60))
}

func TestSetUpLogs(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)

	assert.NoError(t, setUpLogs("debug"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	assert.Error(t, setUpLogs("chatty"))
}
