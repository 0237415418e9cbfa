package spotlight

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fedpinx/spotlight/pkg/render"
)

// Theme holds overlay defaults loaded from an optional spotlight.yaml.
// Nil fields were absent from the file and leave the Config untouched;
// explicit Config values always win over theme values.
type Theme struct {
	OverlayColor   string   `yaml:"overlayColor,omitempty"`
	OverlayOpacity *float64 `yaml:"overlayOpacity,omitempty"`
	BlurSigma      *float64 `yaml:"blurSigma,omitempty"`
	DurationMS     *int     `yaml:"durationMs,omitempty"`
	VisualPadding  *float64 `yaml:"visualPadding,omitempty"`
	CornerRadius   *float64 `yaml:"cornerRadius,omitempty"`
}

// LoadTheme reads spotlight.yaml from dir if present. A missing file is not
// an error and yields an empty theme.
func LoadTheme(dir string) (*Theme, error) {
	path := filepath.Join(dir, "spotlight.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Theme{}, nil
		}
		return nil, fmt.Errorf("failed to read spotlight.yaml: %w", err)
	}

	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("failed to parse spotlight.yaml: %w", err)
	}

	return &theme, nil
}

// ApplyTo merges the theme under cfg: only fields cfg leaves at their zero
// value are filled in. The merged config is still validated by NewComposer.
func (t *Theme) ApplyTo(cfg Config) (Config, error) {
	if t.OverlayColor != "" && cfg.OverlayColor == 0 {
		color, err := ParseColor(t.OverlayColor)
		if err != nil {
			return cfg, err
		}
		cfg.OverlayColor = color
	}
	if t.OverlayOpacity != nil && cfg.OverlayOpacity == 0 {
		cfg.OverlayOpacity = *t.OverlayOpacity
	}
	if t.BlurSigma != nil && cfg.BlurSigma == 0 {
		cfg.BlurSigma = *t.BlurSigma
	}
	if t.DurationMS != nil && cfg.Duration == 0 {
		cfg.Duration = time.Duration(*t.DurationMS) * time.Millisecond
	}
	if t.VisualPadding != nil && cfg.VisualPadding == 0 {
		cfg.VisualPadding = *t.VisualPadding
	}
	if t.CornerRadius != nil && cfg.CornerOverride == nil {
		radius := *t.CornerRadius
		cfg.CornerOverride = &radius
	}
	return cfg, nil
}

// ParseColor parses a "#RRGGBB" or "#AARRGGBB" hex color string.
func ParseColor(s string) (render.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return render.Color(value), nil
}
