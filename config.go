package cellgrid

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// BackendKind names the backend a Config asks for.
type BackendKind string

const (
	BackendANSI  BackendKind = "ansi"
	BackendTcell BackendKind = "tcell"
)

// Config describes a screen: which backend draws it, how often, and how it
// is divided into named panes.
type Config struct {
	Backend       BackendKind   `toml:"backend"`
	FrameInterval time.Duration `toml:"frame_interval"`
	LogLevel      slog.Level    `toml:"log_level"`
	AltScreen     bool          `toml:"alt_screen"`
	Theme         Theme         `toml:"theme"`
	Layout        PaneConfig    `toml:"layout"`
}

// Theme holds the colors widgets pick from. Colors are names ("light-cyan"),
// palette indexes ("208") or hex ("#1e1e2e").
type Theme struct {
	Foreground Color `toml:"foreground"`
	Background Color `toml:"background"`
	Accent     Color `toml:"accent"`
	Border     Color `toml:"border"`
}

// PaneConfig is one node of the pane tree. A pane with constraints is split
// by them, and when it has child panes there is exactly one per constraint.
type PaneConfig struct {
	Name        string       `toml:"name"`
	Direction   Direction    `toml:"direction"`
	Flex        Flex         `toml:"flex"`
	Spacing     uint16       `toml:"spacing"`
	Margin      Margin       `toml:"margin"`
	Constraints []Constraint `toml:"constraints"`
	Panes       []PaneConfig `toml:"panes"`
}

// DefaultConfig is a single full-screen pane drawn by the ANSI backend at
// 20 frames per second.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendANSI,
		FrameInterval: 50 * time.Millisecond,
		LogLevel:      slog.LevelInfo,
		Theme: Theme{
			Foreground: ColorReset,
			Background: ColorReset,
			Accent:     ColorCyan,
			Border:     ColorDarkGray,
		},
		Layout: PaneConfig{Name: "main"},
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates it. A
// [layout] table replaces the default root pane, name included.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	if err := finishDecode(md, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	return cfg, nil
}

// ParseConfig is LoadConfig for an in-memory document.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := finishDecode(md, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

func finishDecode(md toml.MetaData, cfg *Config) error {
	// A document describing its own layout does not inherit the default
	// root pane's name.
	if md.IsDefined("layout") && !md.IsDefined("layout", "name") {
		cfg.Layout.Name = ""
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate checks the backend kind and the pane tree.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	if c.FrameInterval <= 0 {
		return errors.Errorf("frame_interval must be positive, got %s", c.FrameInterval)
	}
	return c.Layout.validate("layout", map[string]bool{})
}

func (p PaneConfig) validate(path string, names map[string]bool) error {
	if p.Name != "" {
		if names[p.Name] {
			return errors.Errorf("%s: duplicate pane name %q", path, p.Name)
		}
		names[p.Name] = true
	}
	for i, c := range p.Constraints {
		if err := c.Validate(); err != nil {
			return errors.Wrapf(err, "%s: constraint %d", path, i)
		}
	}
	if len(p.Panes) > 0 && len(p.Panes) != len(p.Constraints) {
		return errors.Errorf("%s: %d panes for %d constraints", path, len(p.Panes), len(p.Constraints))
	}
	for i, child := range p.Panes {
		if err := child.validate(path+"."+paneLabel(child, i), names); err != nil {
			return err
		}
	}
	return nil
}

func paneLabel(p PaneConfig, i int) string {
	if p.Name != "" {
		return p.Name
	}
	return "panes[" + strconv.Itoa(i) + "]"
}

// Layout is the Layout splitting this pane.
func (p PaneConfig) Layout() Layout {
	return Layout{
		Direction:   p.Direction,
		Constraints: p.Constraints,
		Flex:        p.Flex,
		Spacing:     p.Spacing,
		Margin:      p.Margin,
	}
}

// Resolve splits area down the pane tree and returns the area of every
// named pane, inside that pane's margin.
func (p PaneConfig) Resolve(area Rect) map[string]Rect {
	out := make(map[string]Rect)
	p.resolve(area, out)
	return out
}

func (p PaneConfig) resolve(area Rect, out map[string]Rect) {
	inner := area.Inner(p.Margin)
	if p.Name != "" {
		out[p.Name] = inner
	}
	if len(p.Panes) == 0 {
		return
	}
	for i, r := range Solve(inner, p.Direction, p.Constraints, p.Flex, p.Spacing) {
		p.Panes[i].resolve(r, out)
	}
}
