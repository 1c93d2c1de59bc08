// Package theme holds the visual design tokens of the landing page and turns
// them into a stylesheet.
//
// Tokens are styling inputs only. The recognized options are the color scales
// medical, neural, success and gray, the keyframe animations float, gradient,
// brain-pulse and pulse-slow, and the background images gradient-radial,
// medical-gradient and neural-pattern. The configuration file may override
// any of them. Names outside these sets are rejected.
package theme

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"
)

var (
	// ErrUnknownScale is returned for a color scale that is not recognized.
	ErrUnknownScale = errors.New("unknown color scale")
	// ErrInvalidColor is returned for a color that is not a #rgb or #rrggbb hex value.
	ErrInvalidColor = errors.New("invalid color")
	// ErrUnknownAnimation is returned for an animation name that is not recognized.
	ErrUnknownAnimation = errors.New("unknown animation")
	// ErrUnknownBackground is returned for a background image name that is not recognized.
	ErrUnknownBackground = errors.New("unknown background image")
)

// Scale names.
const (
	ScaleMedical = "medical"
	ScaleNeural  = "neural"
	ScaleSuccess = "success"
	ScaleGray    = "gray"
)

// Animation names.
const (
	AnimationFloat      = "float"
	AnimationGradient   = "gradient"
	AnimationBrainPulse = "brain-pulse"
	AnimationPulseSlow  = "pulse-slow"
)

// Background image names.
const (
	BackgroundRadial  = "gradient-radial"
	BackgroundMedical = "medical-gradient"
	BackgroundNeural  = "neural-pattern"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Scale maps a shade name ("primary", "500") to a hex color.
type Scale map[string]string

// Animation describes an animate-* utility.
type Animation struct {
	// Keyframes names the @keyframes block to play.
	Keyframes string        `yaml:"keyframes,omitempty"`
	Duration  time.Duration `yaml:"duration,omitempty"`
	Timing    string        `yaml:"timing,omitempty"`
	Infinite  bool          `yaml:"infinite,omitempty"`
}

// Keyframe is one offset of a @keyframes block.
type Keyframe struct {
	Offsets []string
	Props   []Property
}

// Property is a single CSS declaration.
type Property struct {
	Name  string
	Value string
}

// Tokens is the full set of design tokens.
type Tokens struct {
	Colors           map[string]Scale
	Animations       map[string]Animation
	Keyframes        map[string][]Keyframe
	BackgroundImages map[string]string
	FontSans         []string
	FontMono         []string
}

// Overrides is the configuration file surface for tokens.
type Overrides struct {
	Colors           map[string]Scale     `yaml:"colors,omitempty"`
	Animations       map[string]Animation `yaml:"animations,omitempty"`
	BackgroundImages map[string]string    `yaml:"backgroundImages,omitempty"`
}

// Validate checks every override name and color.
func (o Overrides) Validate() error {
	for _, name := range sortedKeys(o.Colors) {
		if !slices.Contains(ScaleNames(), name) {
			return fmt.Errorf("%w: %q", ErrUnknownScale, name)
		}
		scale := o.Colors[name]
		for _, shade := range sortedKeys(scale) {
			if !hexColor.MatchString(scale[shade]) {
				return fmt.Errorf("%w: %s.%s=%q", ErrInvalidColor, name, shade, scale[shade])
			}
		}
	}
	for _, name := range sortedKeys(o.Animations) {
		if !slices.Contains(AnimationNames(), name) {
			return fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
		}
	}
	for _, name := range sortedKeys(o.BackgroundImages) {
		if !slices.Contains(BackgroundNames(), name) {
			return fmt.Errorf("%w: %q", ErrUnknownBackground, name)
		}
	}
	return nil
}

// ScaleNames returns the recognized color scales.
func ScaleNames() []string {
	return []string{ScaleMedical, ScaleNeural, ScaleSuccess, ScaleGray}
}

// AnimationNames returns the recognized animations.
func AnimationNames() []string {
	return []string{AnimationFloat, AnimationGradient, AnimationBrainPulse, AnimationPulseSlow}
}

// BackgroundNames returns the recognized background images.
func BackgroundNames() []string {
	return []string{BackgroundRadial, BackgroundMedical, BackgroundNeural}
}

// Default returns the stock NeuroScan palette and motion.
func Default() Tokens {
	return Tokens{
		Colors: map[string]Scale{
			ScaleMedical: {
				"primary":   "#2563eb",
				"secondary": "#1e40af",
				"accent":    "#3b82f6",
				"light":     "#dbeafe",
				"dark":      "#1e3a8a",
			},
			ScaleNeural: {
				"50":  "#f0f9ff",
				"100": "#e0f2fe",
				"200": "#bae6fd",
				"300": "#7dd3fc",
				"400": "#38bdf8",
				"500": "#0ea5e9",
				"600": "#0284c7",
				"700": "#0369a1",
				"800": "#075985",
				"900": "#0c4a6e",
			},
			ScaleSuccess: {
				"50":  "#f0fdf4",
				"500": "#22c55e",
				"600": "#16a34a",
			},
			ScaleGray: {
				"50":  "#f8fafc",
				"100": "#f1f5f9",
				"200": "#e2e8f0",
				"300": "#cbd5e1",
				"400": "#94a3b8",
				"500": "#64748b",
				"600": "#475569",
				"700": "#334155",
				"800": "#1e293b",
				"900": "#0f172a",
			},
		},
		Animations: map[string]Animation{
			AnimationPulseSlow:  {Keyframes: "pulse", Duration: 3 * time.Second, Timing: "ease-in-out", Infinite: true},
			AnimationFloat:      {Keyframes: "float", Duration: 6 * time.Second, Timing: "ease-in-out", Infinite: true},
			AnimationGradient:   {Keyframes: "gradient", Duration: 8 * time.Second, Timing: "ease", Infinite: true},
			AnimationBrainPulse: {Keyframes: "brain-pulse", Duration: 2 * time.Second, Timing: "ease-in-out", Infinite: true},
		},
		Keyframes: map[string][]Keyframe{
			"pulse": {
				{Offsets: []string{"0%", "100%"}, Props: []Property{{"opacity", "1"}}},
				{Offsets: []string{"50%"}, Props: []Property{{"opacity", ".5"}}},
			},
			"float": {
				{Offsets: []string{"0%", "100%"}, Props: []Property{{"transform", "translateY(0px)"}}},
				{Offsets: []string{"50%"}, Props: []Property{{"transform", "translateY(-20px)"}}},
			},
			"gradient": {
				{Offsets: []string{"0%", "100%"}, Props: []Property{{"background-position", "0% 50%"}}},
				{Offsets: []string{"50%"}, Props: []Property{{"background-position", "100% 50%"}}},
			},
			"brain-pulse": {
				{Offsets: []string{"0%", "100%"}, Props: []Property{{"opacity", "0.8"}, {"transform", "scale(1)"}}},
				{Offsets: []string{"50%"}, Props: []Property{{"opacity", "1"}, {"transform", "scale(1.05)"}}},
			},
			"spin": {
				{Offsets: []string{"to"}, Props: []Property{{"transform", "rotate(360deg)"}}},
			},
		},
		BackgroundImages: map[string]string{
			BackgroundRadial:  "radial-gradient(var(--tw-gradient-stops))",
			BackgroundMedical: "linear-gradient(135deg, #2563eb 0%, #1e40af 50%, #3b82f6 100%)",
			BackgroundNeural:  "radial-gradient(circle at 25% 25%, #3b82f6 0%, transparent 50%), radial-gradient(circle at 75% 75%, #2563eb 0%, transparent 50%)",
		},
		FontSans: []string{"Inter", "system-ui", "sans-serif"},
		FontMono: []string{"JetBrains Mono", "monospace"},
	}
}

// Apply returns a copy of t with the overrides merged in. Overrides are
// expected to be validated. Animation fields left empty keep their defaults.
func (t Tokens) Apply(o Overrides) Tokens {
	out := t.clone()
	for name, scale := range o.Colors {
		if out.Colors[name] == nil {
			out.Colors[name] = Scale{}
		}
		for shade, color := range scale {
			out.Colors[name][shade] = color
		}
	}
	for name, a := range o.Animations {
		merged := out.Animations[name]
		if a.Keyframes != "" {
			merged.Keyframes = a.Keyframes
		}
		if a.Duration > 0 {
			merged.Duration = a.Duration
		}
		if a.Timing != "" {
			merged.Timing = a.Timing
		}
		if a.Infinite {
			merged.Infinite = true
		}
		out.Animations[name] = merged
	}
	for name, img := range o.BackgroundImages {
		out.BackgroundImages[name] = img
	}
	return out
}

// Color returns the hex value of scale.shade, and false when it is not defined.
func (t Tokens) Color(scale, shade string) (string, bool) {
	c, ok := t.Colors[scale][shade]
	return c, ok
}

func (t Tokens) clone() Tokens {
	out := Tokens{
		Colors:           make(map[string]Scale, len(t.Colors)),
		Animations:       make(map[string]Animation, len(t.Animations)),
		Keyframes:        make(map[string][]Keyframe, len(t.Keyframes)),
		BackgroundImages: make(map[string]string, len(t.BackgroundImages)),
		FontSans:         slices.Clone(t.FontSans),
		FontMono:         slices.Clone(t.FontMono),
	}
	for name, scale := range t.Colors {
		s := make(Scale, len(scale))
		for k, v := range scale {
			s[k] = v
		}
		out.Colors[name] = s
	}
	for k, v := range t.Animations {
		out.Animations[k] = v
	}
	for k, v := range t.Keyframes {
		out.Keyframes[k] = slices.Clone(v)
	}
	for k, v := range t.BackgroundImages {
		out.BackgroundImages[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
