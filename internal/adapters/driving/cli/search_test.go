package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "20", flag.DefValue)
}

func TestSearchCmd_RetainDefaultsTrue(t *testing.T) {
	flag := searchCmd.Flags().Lookup("retain")
	require.NotNil(t, flag, "retain flag should exist")
	assert.Equal(t, "true", flag.DefValue)
}

func TestSearchCmd_PrintsScrapedURLs(t *testing.T) {
	session, cleanup := setupTestDeps()
	defer cleanup()
	session.report = &domain.SearchReport{
		Documents: []domain.Document{
			{Content: "alpha", SourceURL: "https://a.example"},
			{Content: "beta", SourceURL: "https://b.example"},
		},
		URLs: []string{"https://a.example", "https://b.example"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "go generics"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "go generics", session.lastQuery)
	assert.Contains(t, buf.String(), "Scraped 2 documents")
	assert.Contains(t, buf.String(), "https://a.example")
	assert.Contains(t, buf.String(), "https://b.example")
}

func TestSearchCmd_PassesFlagsToSession(t *testing.T) {
	session, cleanup := setupTestDeps()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "-n", "5", "--retain=false", "rust vs go"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchLimit = domain.DefaultSearchLimit
		searchRetain = true
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 5, session.lastSearch.Limit)
	assert.False(t, session.lastSearch.Retain)
}

func TestSearchCmd_PrintsWarning(t *testing.T) {
	session, cleanup := setupTestDeps()
	defer cleanup()
	session.report = &domain.SearchReport{Warning: "search quota exceeded"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "no data scraped: search quota exceeded")
}

func TestSearchCmd_EmptyQueryFails(t *testing.T) {
	session, cleanup := setupTestDeps()
	defer cleanup()
	session.searchErr = domain.ErrEmptyQuery

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "   "})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}
