package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lister/internal/config"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// isolate points HOME, the working directory and LISTER_* at temp dirs and
// returns a database path inside them.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{config.EnvConfig, config.EnvDBPath, config.EnvAddr, config.EnvLogFormat} {
		t.Setenv(key, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
	t.Chdir(t.TempDir())
	return filepath.Join(home, "data", "lister.db")
}

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := RootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--db", dbPath}, args...))
	err := Execute(context.Background(), root)
	return out.String(), err
}

func TestInit_WritesConfigAndSeeds(t *testing.T) {
	dbPath := isolate(t)

	out, err := run(t, dbPath, "init", "--seed")
	require.NoError(t, err)

	assert.Contains(t, out, "Initialized lister database at "+dbPath)
	assert.Contains(t, out, "✓ Demo records added")
	assert.FileExists(t, dbPath)
	assert.FileExists(t, filepath.Join(os.Getenv("HOME"), ".lister", "config.yaml"))

	out, err = run(t, dbPath, "person", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
}

func TestPerson_AddUpdateShow(t *testing.T) {
	dbPath := isolate(t)

	out, err := run(t, dbPath, "person", "add", "--name", "Ana", "--apellido", "Gomez", "--ciudad", "Lima")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Created person 1: Ana Gomez")

	out, err = run(t, dbPath, "person", "update", "1", "--ciudad", "Cusco")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Person 1 updated")

	out, err = run(t, dbPath, "person", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:     Ana")
	assert.Contains(t, out, "Apellido: Gomez")
	assert.Contains(t, out, "Ciudad:   Cusco")
}

func TestPerson_UpdateMissingFails(t *testing.T) {
	dbPath := isolate(t)

	_, err := run(t, dbPath, "person", "update", "5", "--name", "Nadie")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPerson_DeleteTwice(t *testing.T) {
	dbPath := isolate(t)
	_, err := run(t, dbPath, "person", "add", "--name", "Ana")
	require.NoError(t, err)

	_, err = run(t, dbPath, "person", "delete", "1")
	require.NoError(t, err)
	out, err := run(t, dbPath, "person", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "No people found")

	_, err = run(t, dbPath, "person", "show", "1")
	require.Error(t, err)
}

func TestProduct_BudgetScenario(t *testing.T) {
	dbPath := isolate(t)

	out, err := run(t, dbPath, "product", "add", "--name", "Leche", "--brand", "X", "--quantity", "2", "--price", "3.5")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Created product 1: Leche")

	_, err = run(t, dbPath, "budget", "set", "100")
	require.NoError(t, err)

	out, err = run(t, dbPath, "product", "purchase", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Remaining: 93.00")

	out, err = run(t, dbPath, "budget", "set")
	require.NoError(t, err)
	assert.Contains(t, out, "Remaining: -7.00")

	out, err = run(t, dbPath, "product", "unpurchase", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Remaining: 0.00")
}

func TestProduct_MalformedNumbersAreZero(t *testing.T) {
	dbPath := isolate(t)

	_, err := run(t, dbPath, "product", "add", "--name", "Sal", "--quantity", "dos")
	require.NoError(t, err)

	out, err := run(t, dbPath, "--format", "json", "product", "show", "1")
	require.NoError(t, err)

	var got struct {
		Data struct {
			Quantity float64 `json:"quantity"`
			Subtotal float64 `json:"subtotal"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Zero(t, got.Data.Quantity)
	assert.Zero(t, got.Data.Subtotal)
}

func TestProduct_UpdateKeepsSubtotal(t *testing.T) {
	dbPath := isolate(t)
	_, err := run(t, dbPath, "product", "add", "--name", "Leche", "--quantity", "2", "--price", "3.5")
	require.NoError(t, err)

	out, err := run(t, dbPath, "product", "update", "1", "--quantity", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "7.00*")
}

func TestRoot_RejectsUnknownFormat(t *testing.T) {
	dbPath := isolate(t)

	_, err := run(t, dbPath, "--format", "xml", "person", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRoot_MalformedIDFails(t *testing.T) {
	dbPath := isolate(t)

	_, err := run(t, dbPath, "product", "delete", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid record id")
}
