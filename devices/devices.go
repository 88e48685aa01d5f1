// Package devices declares the emulated device profiles that the harness
// drives against the onboarding UI. The table is static configuration: one
// generic probe routine consumes it, there is no per-profile logic anywhere
// else.
package devices

import (
	"fmt"
	"regexp"

	rodDevices "github.com/go-rod/rod/lib/devices"
)

// Class is the coarse device category a profile belongs to. Assertion rules
// differ by class (tablets have viewport requirements that phones do not).
type Class int

const (
	Phone Class = iota
	Tablet
)

func (c Class) String() string {
	switch c {
	case Phone:
		return "phone"
	case Tablet:
		return "tablet"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

type Viewport struct {
	Width  int
	Height int
}

// Profile is an immutable description of an emulated device. Each profile is
// consumed by exactly one isolated browser context per run; contexts are
// never shared between profiles.
type Profile struct {
	Name       string
	Class      Class
	UserAgent  string
	Viewport   Viewport
	PixelRatio float64
	Touch      bool
	Mobile     bool
}

// Device converts the profile to rod's emulation model, which is what a page
// accepts for user agent, viewport, pixel ratio, and touch overrides.
func (p Profile) Device() rodDevices.Device {
	var capabilities []string
	if p.Touch {
		capabilities = append(capabilities, "touch")
	}
	if p.Mobile {
		capabilities = append(capabilities, "mobile")
	}
	return rodDevices.Device{
		Title:        p.Name,
		Capabilities: capabilities,
		UserAgent:    p.UserAgent,
		Screen: rodDevices.Screen{
			DevicePixelRatio: p.PixelRatio,
			Vertical: rodDevices.ScreenSize{
				Width:  p.Viewport.Width,
				Height: p.Viewport.Height,
			},
			Horizontal: rodDevices.ScreenSize{
				Width:  p.Viewport.Height,
				Height: p.Viewport.Width,
			},
		},
	}
}

// Profiles returns the device matrix in its fixed execution order.
func Profiles() []Profile {
	return []Profile{
		{
			Name:       "iPhone 12",
			Class:      Phone,
			UserAgent:  "Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Mobile/15E148 Safari/604.1",
			Viewport:   Viewport{Width: 390, Height: 844},
			PixelRatio: 3,
			Touch:      true,
			Mobile:     true,
		},
		{
			Name:       "Pixel 5",
			Class:      Phone,
			UserAgent:  "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.91 Mobile Safari/537.36",
			Viewport:   Viewport{Width: 393, Height: 851},
			PixelRatio: 2.75,
			Touch:      true,
			Mobile:     true,
		},
		{
			Name:       "iPad Pro",
			Class:      Tablet,
			UserAgent:  "Mozilla/5.0 (iPad; CPU OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Mobile/15E148 Safari/604.1",
			Viewport:   Viewport{Width: 834, Height: 1194},
			PixelRatio: 2,
			Touch:      true,
			Mobile:     false,
		},
		{
			Name:       "iPhone 13 Pro",
			Class:      Phone,
			UserAgent:  "Mozilla/5.0 (iPhone; CPU iPhone OS 15_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.0 Mobile/15E148 Safari/604.1",
			Viewport:   Viewport{Width: 390, Height: 844},
			PixelRatio: 3,
			Touch:      true,
			Mobile:     true,
		},
		{
			Name:       "Pixel 7",
			Class:      Phone,
			UserAgent:  "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Mobile Safari/537.36",
			Viewport:   Viewport{Width: 412, Height: 915},
			PixelRatio: 2.625,
			Touch:      true,
			Mobile:     true,
		},
	}
}

// ByName returns the profile with the given name, or false if the table does
// not contain it.
func ByName(name string) (Profile, bool) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

var mobileUAPattern = regexp.MustCompile(`(?i)mobi|android|iphone|ipad|ipod|tablet`)

// IsMobileUA reports whether a user-agent string looks like a phone or
// tablet browser. This is the same pattern the onboarding UI applies
// client-side to decide whether to show the mobile layout.
func IsMobileUA(userAgent string) bool {
	return mobileUAPattern.MatchString(userAgent)
}
