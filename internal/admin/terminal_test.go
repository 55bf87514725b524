package admin

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPasswordReader_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = w.WriteString("first\r\nsecond")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	prompts := &bytes.Buffer{}
	reader := &TerminalPasswordReader{in: r, prompt: prompts}

	got, err := reader.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = reader.ReadPassword("Repeat password: ")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	_, err = reader.ReadPassword("Again: ")
	assert.Error(t, err)
	assert.Equal(t, "Password: Repeat password: Again: ", prompts.String())
}
