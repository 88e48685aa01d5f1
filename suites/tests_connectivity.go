package suites

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

func extractTitle(html string) string {
	m := titlePattern.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func DoConnectivityTests(t *T) {
	t.Run("server root reachable", func(t *T) {
		status, body := t.FetchRoot()
		require.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, body)
	})

	t.Run("chat interface title", func(t *T) {
		_, body := t.FetchRoot()
		assert.Equal(t, ChatInterfaceTitle, extractTitle(body))
	})
}
