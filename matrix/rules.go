package matrix

import (
	"fmt"

	"github.com/swarmgrid/mobile-onboarding-tests/devices"
)

// Tablet layouts require at least this many logical pixels of width. The
// dedicated tablet-experience check additionally bounds the width above, so
// a tablet is not just rendered as a small desktop.
const (
	MinTabletWidth       = 768
	MaxTabletLayoutWidth = 1024
)

// Check applies the format-level rules for a profile's report. Problems are
// assertion failures; notes are environment-dependent observations (missing
// GPU acceleration, hidden memory/network APIs) that are logged but never
// fail a profile.
func Check(profile devices.Profile, rep CapabilityReport) (problems, notes []string) {
	if rep.Cores <= 0 {
		problems = append(problems, fmt.Sprintf("reported core count %d, want > 0", rep.Cores))
	}
	if !rep.WebGL && !rep.WebGL2 {
		problems = append(problems, "neither WebGL nor WebGL2 is available")
	}
	if profile.Class == devices.Tablet && rep.ViewportWidth < MinTabletWidth {
		problems = append(problems, fmt.Sprintf("tablet viewport width %d, want >= %d", rep.ViewportWidth, MinTabletWidth))
	}
	if !rep.GPUAccelerated {
		notes = append(notes, "GPU acceleration not detected (software renderer)")
	}
	if !rep.Memory.IsDefined() {
		notes = append(notes, "device memory estimate not exposed")
	}
	if !rep.NetworkType.IsDefined() {
		notes = append(notes, "network effective-type not exposed")
	}
	return problems, notes
}

// CheckTabletExperience verifies the dedicated tablet-layout rule: the
// viewport width must land in the band the UI treats as a tablet.
func CheckTabletExperience(rep CapabilityReport) []string {
	if rep.ViewportWidth < MinTabletWidth || rep.ViewportWidth > MaxTabletLayoutWidth {
		return []string{fmt.Sprintf("viewport width %d outside tablet band [%d, %d]",
			rep.ViewportWidth, MinTabletWidth, MaxTabletLayoutWidth)}
	}
	return nil
}
