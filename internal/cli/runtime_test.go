package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSecret(t *testing.T) {
	const envName = "ENVKEEPER_TEST_SECRET"

	t.Run("environment wins over stdin", func(t *testing.T) {
		t.Setenv(envName, "from-env")
		cmd := &cobra.Command{}
		cmd.SetIn(strings.NewReader("from-stdin\n"))

		got, err := (&RootOptions{}).readSecret(cmd, envName, "")
		require.NoError(t, err)
		assert.Equal(t, "from-env", got)
	})

	t.Run("successive reads share piped stdin", func(t *testing.T) {
		t.Setenv(envName, "")
		cmd := &cobra.Command{}
		cmd.SetIn(strings.NewReader("first\r\nsecond"))
		opts := &RootOptions{}

		got, err := opts.readSecret(cmd, envName, "")
		require.NoError(t, err)
		assert.Equal(t, "first", got)

		got, err = opts.readSecret(cmd, envName, "")
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Setenv(envName, "")
		cmd := &cobra.Command{}
		cmd.SetIn(strings.NewReader("\n"))

		_, err := (&RootOptions{}).readSecret(cmd, envName, "")
		assert.ErrorIs(t, err, errEmptySecret)
		assert.ErrorContains(t, err, envName)
	})
}
