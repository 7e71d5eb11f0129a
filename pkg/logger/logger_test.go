package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-backoffice/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	l.Info().Str("resource", "inventory").Msg("listado")
	l.Debug().Msg("no debe aparecer")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "inventory", entry["resource"])
	assert.Equal(t, "listado", entry["message"])
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	c := l.Component("backend")
	c.Debug().Msg("refresh")

	assert.Contains(t, buf.String(), `"component":"backend"`)
}
