// Package matrix implements the device capability matrix: it drives one
// isolated browser context per device profile against the server's root page
// and evaluates a fixed capability probe inside it.
package matrix

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// CapabilityReport is what the in-page probe observed for one profile and one
// page load. It is never mutated after creation; assertion rules and the
// report artifact both consume it read-only.
type CapabilityReport struct {
	Profile         string
	Cores           int
	Memory          ldvalue.OptionalInt    // device memory estimate in GB, absent on browsers that hide it
	NetworkType     ldvalue.OptionalString // e.g. "4g", absent without the Network Information API
	Platform        string
	Vendor          string
	UserAgent       string
	Renderer        string
	MaxTouchPoints  int
	WebGL           bool
	WebGL2          bool
	GPUAccelerated  bool
	OffscreenCanvas bool
	ViewportWidth   int
	ViewportHeight  int
	PixelRatio      float64
}

// MemoryString renders the memory estimate for diagnostics, with "unknown"
// for browsers that do not expose it.
func (r CapabilityReport) MemoryString() string {
	if r.Memory.IsDefined() {
		return fmt.Sprintf("%dGB", r.Memory.IntValue())
	}
	return "unknown"
}

func (r CapabilityReport) NetworkString() string {
	return r.NetworkType.OrElse("unknown")
}

// rawReport matches the JSON produced by capabilityProbeJS.
type rawReport struct {
	Cores           int      `json:"cores"`
	Memory          *float64 `json:"memory"`
	Network         *string  `json:"network"`
	Platform        string   `json:"platform"`
	Vendor          string   `json:"vendor"`
	UserAgent       string   `json:"userAgent"`
	MaxTouchPoints  int      `json:"maxTouchPoints"`
	WebGL           bool     `json:"webgl"`
	WebGL2          bool     `json:"webgl2"`
	Renderer        string   `json:"renderer"`
	OffscreenCanvas bool     `json:"offscreenCanvas"`
	ViewportWidth   int      `json:"viewportWidth"`
	ViewportHeight  int      `json:"viewportHeight"`
	PixelRatio      float64  `json:"pixelRatio"`
}

func parseReport(profileName, probeOutput string) (CapabilityReport, error) {
	var raw rawReport
	if err := json.Unmarshal([]byte(probeOutput), &raw); err != nil {
		return CapabilityReport{}, fmt.Errorf("malformed probe output for %q: %w", profileName, err)
	}
	rep := CapabilityReport{
		Profile:         profileName,
		Cores:           raw.Cores,
		Platform:        raw.Platform,
		Vendor:          raw.Vendor,
		UserAgent:       raw.UserAgent,
		Renderer:        raw.Renderer,
		MaxTouchPoints:  raw.MaxTouchPoints,
		WebGL:           raw.WebGL,
		WebGL2:          raw.WebGL2,
		OffscreenCanvas: raw.OffscreenCanvas,
		ViewportWidth:   raw.ViewportWidth,
		ViewportHeight:  raw.ViewportHeight,
		PixelRatio:      raw.PixelRatio,
	}
	if raw.Memory != nil {
		rep.Memory = ldvalue.NewOptionalInt(int(*raw.Memory))
	}
	if raw.Network != nil && *raw.Network != "" {
		rep.NetworkType = ldvalue.NewOptionalString(*raw.Network)
	}
	// Software renderers mean WebGL works but without hardware acceleration.
	rep.GPUAccelerated = (raw.WebGL || raw.WebGL2) &&
		raw.Renderer != "" &&
		!strings.Contains(strings.ToLower(raw.Renderer), "swiftshader") &&
		!strings.Contains(strings.ToLower(raw.Renderer), "software")
	return rep, nil
}
