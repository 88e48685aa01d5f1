package suites

import (
	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoBrowserScriptTests is the standalone browser pass: one plain page with no
// device emulation, checking that the interface loads for a default browser
// and that graphics capabilities are reported there too.
func DoBrowserScriptTests(t *T) {
	t.Run("default session", func(t *T) {
		page, err := t.Env().Browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
		require.NoError(t, err)
		defer page.Close()
		page = page.Timeout(t.Env().ProbeTimeout)

		require.NoError(t, page.Navigate(t.Env().BaseURL))
		require.NoError(t, page.WaitLoad())

		info, err := page.Info()
		require.NoError(t, err)
		assert.Equal(t, ChatInterfaceTitle, info.Title)

		gl, err := page.Eval(`() => {
			try {
				const canvas = document.createElement('canvas');
				return !!(canvas.getContext('webgl') || canvas.getContext('webgl2'));
			} catch (e) { return false; }
		}`)
		require.NoError(t, err)
		assert.True(t, gl.Value.Bool(), "no WebGL support in default session")
	})
}
