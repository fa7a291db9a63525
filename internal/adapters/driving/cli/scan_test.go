package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

func TestScanCmd_Use(t *testing.T) {
	assert.Equal(t, "scan", scanCmd.Use)
}

func TestScanCmd_HasLimitFlag(t *testing.T) {
	flag := scanCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestScanCmd_Table(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"scan"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Codes:")
	assert.Contains(t, out, "[1] 482913  +15551234567")
	assert.Contains(t, out, "[2] 5512  Unknown")
	assert.Contains(t, out, "[3] 771  bank@example.com")
	assert.Contains(t, out, "Your verification code is 482913")
}

func TestScanCmd_Limit(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"scan", "-n", "1"})
	defer func() {
		rootCmd.SetArgs(nil)
		scanLimit = 0
	}()

	err := rootCmd.Execute()

	out := buf.String()
	require.NoError(t, err)
	assert.Contains(t, out, "[1] 482913")
	assert.NotContains(t, out, "[2]")
	assert.NotContains(t, out, "5512  Unknown")
}

func TestScanCmd_JSONOutput(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"scan", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		scanJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	var decoded []domain.OTPRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "482913", decoded[0].Code)
	assert.Contains(t, buf.String(), `"full_message"`)
}

func TestScanCmd_JSONEmpty(t *testing.T) {
	scanner, _, _, cleanup := setupTestServices()
	defer cleanup()
	scanner.records = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"scan", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		scanJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestScanCmd_NoCodes(t *testing.T) {
	scanner, _, _, cleanup := setupTestServices()
	defer cleanup()
	scanner.records = []domain.OTPRecord{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"scan"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "No codes found.\n", buf.String())
}

func TestScanCmd_StoreNotFound(t *testing.T) {
	scanner, _, _, cleanup := setupTestServices()
	defer cleanup()
	scanner.err = domain.ErrStoreNotFound

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"scan"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStoreNotFound))
	assert.Contains(t, err.Error(), "scan failed")
}

func TestScanCmd_ServiceNotConfigured(t *testing.T) {
	_, _, _, cleanup := setupTestServices()
	defer cleanup()
	scanService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"scan"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan service not configured")
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{name: "short", text: "code 1234", limit: 20, want: "code 1234"},
		{name: "newlines flattened", text: "line one\nline two", limit: 40, want: "line one line two"},
		{name: "truncated", text: "abcdefghij", limit: 8, want: "abcde..."},
		{name: "exact", text: "abcdefgh", limit: 8, want: "abcdefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preview(tt.text, tt.limit))
		})
	}
}
