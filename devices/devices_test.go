package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileTable(t *testing.T) {
	profiles := Profiles()
	require.Len(t, profiles, 5)

	var names []string
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"iPhone 12", "Pixel 5", "iPad Pro", "iPhone 13 Pro", "Pixel 7"}, names)

	for _, p := range profiles {
		assert.NotEmpty(t, p.UserAgent, "profile %q has no user agent", p.Name)
		assert.Greater(t, p.Viewport.Width, 0, "profile %q has no viewport width", p.Name)
		assert.Greater(t, p.Viewport.Height, 0, "profile %q has no viewport height", p.Name)
		assert.Greater(t, p.PixelRatio, 0.0, "profile %q has no pixel ratio", p.Name)
		assert.True(t, p.Touch, "all matrix profiles are touch devices")
	}
}

func TestTabletProfileViewport(t *testing.T) {
	p, ok := ByName("iPad Pro")
	require.True(t, ok)
	assert.Equal(t, Tablet, p.Class)
	assert.GreaterOrEqual(t, p.Viewport.Width, 768)
	assert.LessOrEqual(t, p.Viewport.Width, 1024)
}

func TestByNameMiss(t *testing.T) {
	_, ok := ByName("Nokia 3310")
	assert.False(t, ok)
}

func TestDeviceConversion(t *testing.T) {
	p, ok := ByName("Pixel 5")
	require.True(t, ok)
	d := p.Device()
	assert.Equal(t, p.UserAgent, d.UserAgent)
	assert.Equal(t, p.Name, d.Title)
	assert.Equal(t, p.PixelRatio, d.Screen.DevicePixelRatio)
	assert.Equal(t, p.Viewport.Width, d.Screen.Vertical.Width)
	assert.Equal(t, p.Viewport.Height, d.Screen.Vertical.Height)
	assert.Contains(t, d.Capabilities, "touch")
	assert.Contains(t, d.Capabilities, "mobile")
}

func TestTabletDeviceIsNotMobileCapability(t *testing.T) {
	p, ok := ByName("iPad Pro")
	require.True(t, ok)
	d := p.Device()
	assert.Contains(t, d.Capabilities, "touch")
	assert.NotContains(t, d.Capabilities, "mobile")
}

func TestIsMobileUA(t *testing.T) {
	for _, p := range Profiles() {
		assert.True(t, IsMobileUA(p.UserAgent), "profile %q should read as mobile", p.Name)
	}
	desktopUA := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	assert.False(t, IsMobileUA(desktopUA))
}
