package matrix

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/swarmgrid/mobile-onboarding-tests/devices"
	"github.com/swarmgrid/mobile-onboarding-tests/framework"
)

const defaultProbeTimeout = 30 * time.Second

// capabilityProbeJS runs inside the loaded page and returns the capability
// signals as a JSON string. It must never throw: every environment-dependent
// lookup is guarded so a missing API reads as absent, not as a probe error.
const capabilityProbeJS = `() => {
	const nav = navigator;
	let webgl = false, webgl2 = false, renderer = '';
	try {
		const canvas = document.createElement('canvas');
		const gl = canvas.getContext('webgl') || canvas.getContext('experimental-webgl');
		if (gl) {
			webgl = true;
			const info = gl.getExtension('WEBGL_debug_renderer_info');
			if (info) renderer = String(gl.getParameter(info.UNMASKED_RENDERER_WEBGL));
		}
	} catch (e) {}
	try {
		webgl2 = !!document.createElement('canvas').getContext('webgl2');
	} catch (e) {}
	return JSON.stringify({
		cores: nav.hardwareConcurrency || 0,
		memory: nav.deviceMemory || null,
		network: nav.connection ? nav.connection.effectiveType : null,
		platform: nav.platform || '',
		vendor: nav.vendor || '',
		userAgent: nav.userAgent,
		maxTouchPoints: nav.maxTouchPoints || 0,
		webgl: webgl,
		webgl2: webgl2,
		renderer: renderer,
		offscreenCanvas: typeof OffscreenCanvas !== 'undefined',
		viewportWidth: window.innerWidth,
		viewportHeight: window.innerHeight,
		pixelRatio: window.devicePixelRatio
	});
}`

// Runner probes device profiles against a live server. Profiles are processed
// strictly one at a time; every profile gets a fresh incognito context that is
// closed before the next profile starts.
type Runner struct {
	Browser *rod.Browser
	BaseURL string
	Timeout time.Duration
	Logger  framework.Logger
}

func (r *Runner) logger() framework.Logger {
	if r.Logger == nil {
		return framework.NullLogger()
	}
	return r.Logger
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout <= 0 {
		return defaultProbeTimeout
	}
	return r.Timeout
}

// Probe opens an isolated context for the profile, loads the server's root
// page, and evaluates the capability probe. The context is always released,
// including on navigation or evaluation errors.
func (r *Runner) Probe(profile devices.Profile) (CapabilityReport, error) {
	page, err := r.openProfilePage(profile)
	if err != nil {
		return CapabilityReport{}, err
	}
	defer page.Close()

	obj, err := page.Eval(capabilityProbeJS)
	if err != nil {
		return CapabilityReport{}, fmt.Errorf("capability probe failed for %q: %w", profile.Name, err)
	}
	rep, err := parseReport(profile.Name, obj.Value.Str())
	if err != nil {
		return CapabilityReport{}, err
	}
	r.logger().Printf("%s: cores=%d memory=%s network=%s webgl=%v webgl2=%v gpu=%v viewport=%dx%d",
		profile.Name, rep.Cores, rep.MemoryString(), rep.NetworkString(),
		rep.WebGL, rep.WebGL2, rep.GPUAccelerated, rep.ViewportWidth, rep.ViewportHeight)
	return rep, nil
}

// ProbeAll runs every profile in table order. A probe error for one profile
// is recorded in the returned map as a missing entry plus an error in the
// slice; it never stops the sweep.
func (r *Runner) ProbeAll(profiles []devices.Profile) (map[string]CapabilityReport, []error) {
	reports := make(map[string]CapabilityReport, len(profiles))
	var errs []error
	for _, p := range profiles {
		rep, err := r.Probe(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reports[p.Name] = rep
	}
	return reports, errs
}

// openProfilePage creates the isolated emulated context and navigates it to
// the server root. The caller owns the returned page and must close it.
func (r *Runner) openProfilePage(profile devices.Profile) (*rod.Page, error) {
	incognito, err := r.Browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("creating isolated context for %q: %w", profile.Name, err)
	}
	page, err := incognito.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("opening page for %q: %w", profile.Name, err)
	}
	page = page.Timeout(r.timeout())
	if err := page.Emulate(profile.Device()); err != nil {
		page.Close()
		return nil, fmt.Errorf("emulating %q: %w", profile.Name, err)
	}
	if err := page.Navigate(r.BaseURL); err != nil {
		page.Close()
		return nil, fmt.Errorf("navigating %q to %s: %w", profile.Name, r.BaseURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		page.Close()
		return nil, fmt.Errorf("waiting for page load for %q: %w", profile.Name, err)
	}
	return page, nil
}

// Page opens the root page for a profile and hands it to fn, releasing the
// context afterwards even if fn panics. Suites use this for checks that need
// the live page rather than just the probe output.
func (r *Runner) Page(profile devices.Profile, fn func(*rod.Page) error) error {
	page, err := r.openProfilePage(profile)
	if err != nil {
		return err
	}
	defer page.Close()
	return fn(page)
}
