package pitch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProvider is returned when a provider identifier has no
// registered coordinate system.
var ErrUnknownProvider = errors.New("unknown coordinate system provider")

// Provider identifies a data vendor's coordinate convention.
type Provider string

const (
	ProviderDefault        Provider = "pitchkit"
	ProviderStatsBomb      Provider = "statsbomb"
	ProviderOpta           Provider = "opta"
	ProviderWyscout        Provider = "wyscout"
	ProviderMetrica        Provider = "metrica"
	ProviderTracab         Provider = "tracab"
	ProviderSecondSpectrum Provider = "secondspectrum"
)

// providerSystems maps each known provider to its coordinate convention.
// Bounds and axis conventions follow the vendors' file format documentation.
var providerSystems = map[Provider]CoordinateSystem{
	// Normalized unit square, y up. The library's own neutral system.
	ProviderDefault: {
		Dimensions: PitchDimensions{X: Dimension{0, 1}, Y: Dimension{0, 1}},
		Vertical:   BottomToTop,
		Origin:     OriginBottomLeft,
	},
	ProviderStatsBomb: {
		Dimensions: PitchDimensions{X: Dimension{0, 120}, Y: Dimension{0, 80}},
		Vertical:   TopToBottom,
		Origin:     OriginTopLeft,
	},
	ProviderOpta: {
		Dimensions: PitchDimensions{X: Dimension{0, 100}, Y: Dimension{0, 100}},
		Vertical:   BottomToTop,
		Origin:     OriginBottomLeft,
	},
	ProviderWyscout: {
		Dimensions: PitchDimensions{X: Dimension{0, 100}, Y: Dimension{0, 100}},
		Vertical:   TopToBottom,
		Origin:     OriginTopLeft,
	},
	ProviderMetrica: {
		Dimensions: PitchDimensions{X: Dimension{0, 1}, Y: Dimension{0, 1}},
		Vertical:   TopToBottom,
		Origin:     OriginTopLeft,
	},
	// Centimeters, center spot at (0, 0).
	ProviderTracab: {
		Dimensions: PitchDimensions{X: Dimension{-5250, 5250}, Y: Dimension{-3400, 3400}},
		Vertical:   BottomToTop,
		Origin:     OriginCenter,
	},
	// Meters, center spot at (0, 0).
	ProviderSecondSpectrum: {
		Dimensions: PitchDimensions{X: Dimension{-52.5, 52.5}, Y: Dimension{-34, 34}},
		Vertical:   BottomToTop,
		Origin:     OriginCenter,
	},
}

// ForProvider returns the registered coordinate system for a provider.
func ForProvider(p Provider) (CoordinateSystem, error) {
	cs, ok := providerSystems[p]
	if !ok {
		return CoordinateSystem{}, fmt.Errorf("%w: %q", ErrUnknownProvider, p)
	}
	return cs, nil
}

// ParseProvider normalizes a provider name from config or input files.
func ParseProvider(name string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := providerSystems[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return p, nil
}

// Providers lists every registered provider identifier.
func Providers() []Provider {
	out := make([]Provider, 0, len(providerSystems))
	for p := range providerSystems {
		out = append(out, p)
	}
	return out
}
