package app

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"estructura/internal/domain"
	"estructura/internal/ui"
)

// Config holds the demo inputs and the widget tree the render command uses.
type Config struct {
	Demo DemoConfig
	Form WidgetConfig
}

// DemoConfig parameterizes the fixed demonstration script.
type DemoConfig struct {
	User      string
	Amount    decimal.Decimal
	Message   string
	GuestRole domain.Role
	AdminRole domain.Role
}

// WidgetConfig describes one node of the widget tree. Children are only
// meaningful for panels.
type WidgetConfig struct {
	Type     string         `toml:"type"` // panel | button | textfield
	Label    string         `toml:"label"`
	Name     string         `toml:"name"`
	Children []WidgetConfig `toml:"children"`
}

// fileConfig is the on-disk shape. Amount travels as a string so it can be
// parsed as a decimal instead of a float.
type fileConfig struct {
	Demo struct {
		User      string `toml:"user"`
		Amount    string `toml:"amount"`
		Message   string `toml:"message"`
		GuestRole string `toml:"guest_role"`
		AdminRole string `toml:"admin_role"`
	} `toml:"demo"`
	Form *WidgetConfig `toml:"form"`
}

// Default returns the configuration the original demo script runs with.
func Default() Config {
	return Config{
		Demo: DemoConfig{
			User:      "Alice",
			Amount:    decimal.NewFromInt(100),
			Message:   "Factura lista y enviada correctamente",
			GuestRole: "invitado",
			AdminRole: domain.RoleAdmin,
		},
		Form: WidgetConfig{
			Type: "panel",
			Children: []WidgetConfig{
				{Type: "button", Label: "Pagar"},
				{Type: "panel", Children: []WidgetConfig{
					{Type: "textfield", Name: "Nombre"},
					{Type: "textfield", Name: "Correo"},
				}},
			},
		},
	}
}

// Load reads a TOML file and overlays it on the defaults. Only keys present
// in the file override.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("demo", "user") {
		cfg.Demo.User = strings.TrimSpace(raw.Demo.User)
	}
	if meta.IsDefined("demo", "amount") {
		amount, err := decimal.NewFromString(strings.TrimSpace(raw.Demo.Amount))
		if err != nil {
			return Config{}, fmt.Errorf("parse amount: %w", err)
		}
		cfg.Demo.Amount = amount
	}
	if meta.IsDefined("demo", "message") {
		cfg.Demo.Message = raw.Demo.Message
	}
	if meta.IsDefined("demo", "guest_role") {
		cfg.Demo.GuestRole = domain.Role(strings.TrimSpace(raw.Demo.GuestRole))
	}
	if meta.IsDefined("demo", "admin_role") {
		cfg.Demo.AdminRole = domain.Role(strings.TrimSpace(raw.Demo.AdminRole))
	}
	if raw.Form != nil {
		cfg.Form = *raw.Form
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Demo.Amount.IsNegative() {
		return fmt.Errorf("demo amount must be non-negative, got %s", c.Demo.Amount)
	}
	return c.Form.validate()
}

func (c WidgetConfig) validate() error {
	switch c.Type {
	case "panel":
		for _, child := range c.Children {
			if err := child.validate(); err != nil {
				return err
			}
		}
		return nil
	case "button", "textfield":
		if len(c.Children) > 0 {
			return fmt.Errorf("widget type %q cannot have children", c.Type)
		}
		return nil
	default:
		return fmt.Errorf("unknown widget type %q", c.Type)
	}
}

// Build turns a validated widget config into the widget tree it describes.
func (c WidgetConfig) Build() domain.Widget {
	switch c.Type {
	case "button":
		return &ui.Button{Label: c.Label}
	case "textfield":
		return &ui.TextField{Name: c.Name}
	default:
		p := ui.NewPanel()
		for _, child := range c.Children {
			p.Add(child.Build())
		}
		return p
	}
}
