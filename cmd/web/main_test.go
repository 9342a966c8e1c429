package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("BOOKBROWSE_TEST_STR", "set")
	assert.Equal(t, "set", getEnv("BOOKBROWSE_TEST_STR", "def"))
	assert.Equal(t, "def", getEnv("BOOKBROWSE_TEST_MISSING", "def"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("BOOKBROWSE_TEST_INT", "7")
	assert.Equal(t, 7, getEnvInt("BOOKBROWSE_TEST_INT", 3))

	t.Setenv("BOOKBROWSE_TEST_INT", "nope")
	assert.Equal(t, 3, getEnvInt("BOOKBROWSE_TEST_INT", 3))

	t.Setenv("BOOKBROWSE_TEST_INT", "-1")
	assert.Equal(t, 3, getEnvInt("BOOKBROWSE_TEST_INT", 3))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("BOOKBROWSE_TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration("BOOKBROWSE_TEST_DUR", time.Minute))

	t.Setenv("BOOKBROWSE_TEST_DUR", "soon")
	assert.Equal(t, time.Minute, getEnvDuration("BOOKBROWSE_TEST_DUR", time.Minute))
}
