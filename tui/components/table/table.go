package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/jobslots/tui/theme"
)

// Options configures a styled table.
type Options struct {
	Bordered      bool
	AlternateRows bool
	Theme         *theme.Theme
	// RowStyle, when set, is applied on top of the base row style. row is
	// the index into the data rows.
	RowStyle func(row, col int, base lipgloss.Style) lipgloss.Style
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		Bordered:      true,
		AlternateRows: theme.DefaultTheme.UseAlternatingRows,
		Theme:         theme.DefaultTheme,
	}
}

// Builder provides a fluent interface for creating styled tables
type Builder struct {
	table   *ltable.Table
	options Options
}

// NewBuilder creates a new table builder
func NewBuilder() *Builder {
	return &Builder{
		table:   ltable.New(),
		options: DefaultOptions(),
	}
}

// WithTheme sets the theme
func (b *Builder) WithTheme(t *theme.Theme) *Builder {
	b.options.Theme = t
	b.options.AlternateRows = t.UseAlternatingRows
	return b
}

// WithBorder enables or disables the border
func (b *Builder) WithBorder(bordered bool) *Builder {
	b.options.Bordered = bordered
	return b
}

// WithAlternateRows enables or disables alternating row colors
func (b *Builder) WithAlternateRows(alternate bool) *Builder {
	b.options.AlternateRows = alternate
	return b
}

// WithRowStyle installs a per-cell style hook.
func (b *Builder) WithRowStyle(fn func(row, col int, base lipgloss.Style) lipgloss.Style) *Builder {
	b.options.RowStyle = fn
	return b
}

// WithHeaders sets the table headers
func (b *Builder) WithHeaders(headers ...string) *Builder {
	b.table = b.table.Headers(headers...)
	return b
}

// WithRows appends data rows
func (b *Builder) WithRows(rows ...[]string) *Builder {
	for _, row := range rows {
		b.table = b.table.Row(row...)
	}
	return b
}

// WithWidth sets the total table width
func (b *Builder) WithWidth(width int) *Builder {
	if width > 0 {
		b.table = b.table.Width(width)
	}
	return b
}

// Build creates the styled table
func (b *Builder) Build() *ltable.Table {
	t := b.options.Theme
	if b.options.Bordered {
		b.table = b.table.
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(t.Colors.Border))
	} else {
		b.table = b.table.Border(lipgloss.HiddenBorder())
	}

	// With Headers set, StyleFunc receives ltable.HeaderRow for the header
	// and 0-based indices for data rows.
	b.table = b.table.StyleFunc(func(row, col int) lipgloss.Style {
		if row == ltable.HeaderRow {
			return t.TableHeader
		}
		style := t.TableRow
		if b.options.AlternateRows && row%2 == 1 {
			style = style.Background(t.Colors.StripeBackground)
		}
		if b.options.RowStyle != nil {
			style = b.options.RowStyle(row, col, style)
		}
		return style
	})

	return b.table
}

// SimpleTable renders a bordered table with headers and rows.
func SimpleTable(headers []string, rows [][]string) string {
	return NewBuilder().
		WithHeaders(headers...).
		WithRows(rows...).
		Build().
		String()
}
