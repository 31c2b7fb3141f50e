package theme

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// Colors is the raw palette decoded from a theme file. Fields left empty by
// the file fall back to the catppuccin-mocha defaults.
type Colors struct {
	UI struct {
		Background string `toml:"background"`
		Border     string `toml:"border"`
		Key        string `toml:"key"`
	} `toml:"ui"`
	Text struct {
		Title string `toml:"title"`
		Text  string `toml:"text"`
	} `toml:"text"`
	Input struct {
		Typing string `toml:"typing"`
		Normal string `toml:"normal"`
	} `toml:"input"`
}

// DefaultColors returns the built-in catppuccin-mocha palette.
func DefaultColors() Colors {
	var c Colors
	c.UI.Background = "#1e1e2e"
	c.UI.Border = "#6c7086"
	c.UI.Key = "#94e2d5"
	c.Text.Title = "#a6e3a1"
	c.Text.Text = "#f5e0dc"
	c.Input.Typing = "#94e2d4"
	c.Input.Normal = "#6c7086"
	return c
}

// LoadColors reads a TOML theme file, filling unset values from the default
// palette.
func LoadColors(path string) (Colors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultColors(), fmt.Errorf("read theme: %w", err)
	}
	colors := DefaultColors()
	if err := toml.Unmarshal(data, &colors); err != nil {
		return DefaultColors(), fmt.Errorf("decode theme: %w", err)
	}
	return merge(colors), nil
}

func merge(c Colors) Colors {
	defaults := DefaultColors()
	fill := func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		return value
	}
	c.UI.Background = fill(c.UI.Background, defaults.UI.Background)
	c.UI.Border = fill(c.UI.Border, defaults.UI.Border)
	c.UI.Key = fill(c.UI.Key, defaults.UI.Key)
	c.Text.Title = fill(c.Text.Title, defaults.Text.Title)
	c.Text.Text = fill(c.Text.Text, defaults.Text.Text)
	c.Input.Typing = fill(c.Input.Typing, defaults.Input.Typing)
	c.Input.Normal = fill(c.Input.Normal, defaults.Input.Normal)
	return c
}

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header            lipgloss.Style
	Border            lipgloss.Style
	ActiveBorder      lipgloss.Style
	Item              lipgloss.Style
	SelectedItem      lipgloss.Style
	DimmedItem        lipgloss.Style
	CursorSymbol      lipgloss.Style
	Key               lipgloss.Style
	Error             lipgloss.Style
	Info              lipgloss.Style
	Legend            lipgloss.Style
	FilterText        lipgloss.Style
	FilterIdle        lipgloss.Style
	FilterPlaceholder lipgloss.Style
	TabActive         lipgloss.Style
	TabInactive       lipgloss.Style
	SyncMessage       lipgloss.Style
	SyncLog           lipgloss.Style
}

// NewStyles builds the style set for the given palette.
func NewStyles(c Colors) *Styles {
	c = merge(c)
	key := lipgloss.Color(c.UI.Key)
	border := lipgloss.Color(c.UI.Border)
	text := lipgloss.Color(c.Text.Text)
	title := lipgloss.Color(c.Text.Title)
	return &Styles{
		Header:            lipgloss.NewStyle().Foreground(title).Bold(true).Italic(true),
		Border:            lipgloss.NewStyle().Foreground(border),
		ActiveBorder:      lipgloss.NewStyle().Foreground(key),
		Item:              lipgloss.NewStyle().Foreground(text),
		SelectedItem:      lipgloss.NewStyle().Foreground(key).Bold(true),
		DimmedItem:        lipgloss.NewStyle().Foreground(border),
		CursorSymbol:      lipgloss.NewStyle().Foreground(key),
		Key:               lipgloss.NewStyle().Foreground(key),
		Error:             lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Info:              lipgloss.NewStyle().Foreground(text),
		Legend:            lipgloss.NewStyle().Foreground(border),
		FilterText:        lipgloss.NewStyle().Foreground(lipgloss.Color(c.Input.Typing)),
		FilterIdle:        lipgloss.NewStyle().Foreground(lipgloss.Color(c.Input.Normal)),
		FilterPlaceholder: lipgloss.NewStyle().Foreground(border),
		TabActive:         lipgloss.NewStyle().Foreground(title).Bold(true).Italic(true),
		TabInactive:       lipgloss.NewStyle().Foreground(border),
		SyncMessage:       lipgloss.NewStyle().Foreground(text).Bold(true),
		SyncLog:           lipgloss.NewStyle().Foreground(text),
	}
}

// Default exposes the style set for the built-in palette.
func Default() *Styles {
	return NewStyles(DefaultColors())
}
