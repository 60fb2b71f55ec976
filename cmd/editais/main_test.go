package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/mapacultural/editais/cmd/editais"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdSources(t *testing.T) {
	t.Parallel()

	t.Run("lists the full registry", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"sources"}, stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "fcc-sc")
		assert.Contains(t, output, "prosas")
		assert.Contains(t, output, "sesc-sc")
		assert.Contains(t, output, "https://www.fcc.sc.gov.br")
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"sources", "--category", "federal"}, stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "rouanet")
		assert.NotContains(t, output, "prosas")
	})

	t.Run("reports empty category", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"sources", "--category", "nope"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No sources found.")
	})
}

func TestCmdHistory(t *testing.T) {
	t.Parallel()

	t.Run("reports when no scans were recorded", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"history"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No scans recorded.")
	})
}
