// Package testutil provides shared test helpers for config files and mocked databases.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// TestJWTSecret is the signing secret written by SetupTestConfig.
const TestJWTSecret = "test-secret-0123456789abcdef"

// SetupTestConfig creates a minimal config file and its output directory.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	outputDir := filepath.Join(tmpDir, "outputs")
	require.NoError(t, os.MkdirAll(outputDir, 0755))

	configContent := fmt.Sprintf(`database:
  host: 127.0.0.1
  port: 3306
  database: wordquiz_test
  username: wordquiz
auth:
  jwt_secret: %s
  token_ttl_hours: 1
quiz:
  timezone: Asia/Tokyo
outputs:
  study_sheet_directory: %s
`,
		TestJWTSecret,
		outputDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake OpenAI API key for tests
// that require API key validation to pass.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte("openai:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\n")...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// NewMockDB returns a sqlx handle backed by sqlmock with ping monitoring. Unmet expectations fail the test on cleanup.
func NewMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return sqlx.NewDb(db, "mysql"), mock
}
