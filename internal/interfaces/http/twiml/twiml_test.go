package twiml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	out, err := Message("Rice: 120.00 por kgs. Stock disponible: 60.")
	require.NoError(t, err)
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, "<Response><Message>Rice: 120.00 por kgs. Stock disponible: 60.</Message></Response>")
}

func TestMessageEscapaXML(t *testing.T) {
	out, err := Message("1 < 2 & más")
	require.NoError(t, err)
	assert.Contains(t, out, "1 &lt; 2 &amp; más")
}
