// Package console renders notices as text. The command runner writes them
// straight to the terminal through Notifier; the TUI reuses Renderer for
// its console pane and alert modal.
package console

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

// Payload formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const timeLayout = "15:04:05"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	alertBorder  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// Renderer turns notices into styled text.
type Renderer struct {
	format string
}

// NewRenderer returns a Renderer for the given payload format. An empty
// format means json.
func NewRenderer(format string) (*Renderer, error) {
	switch format {
	case "":
		format = FormatJSON
	case FormatJSON, FormatYAML:
	default:
		return nil, &domain.ValidationError{Fields: map[string]string{
			"output_format": fmt.Sprintf("must be json or yaml, got %q", format),
		}}
	}
	return &Renderer{format: format}, nil
}

// Format reports the payload format in use.
func (r *Renderer) Format() string {
	return r.format
}

// Payload renders v in the configured format. Field names follow the json
// tags of the view types in both formats.
func (r *Renderer) Payload(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}
	if r.format == FormatYAML {
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return "", fmt.Errorf("converting payload to yaml: %w", err)
		}
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// Headline renders the one-line summary of n: time, level marker, action
// and title.
func (r *Renderer) Headline(n ports.Notice) string {
	var b strings.Builder
	if !n.At.IsZero() {
		b.WriteString(mutedStyle.Render(n.At.Format(timeLayout)))
		b.WriteByte(' ')
	}
	b.WriteString(levelMarker(n.Level))
	b.WriteByte(' ')
	if n.Action != "" {
		b.WriteString(mutedStyle.Render("[" + n.Action + "]"))
		b.WriteByte(' ')
	}
	b.WriteString(titleStyle.Render(n.Title))
	return b.String()
}

// Body renders the error and payload of n, one block per line. It is empty
// when n carries neither.
func (r *Renderer) Body(n ports.Notice) string {
	var parts []string
	if n.Err != nil {
		parts = append(parts, errorStyle.Render(n.Err.Error()))
	}
	if n.Payload != nil {
		text, err := r.Payload(n.Payload)
		if err != nil {
			text = errorStyle.Render(err.Error())
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n")
}

// Render renders n in full. Alerts are boxed.
func (r *Renderer) Render(n ports.Notice) string {
	out := r.Headline(n)
	if body := r.Body(n); body != "" {
		out += "\n" + body
	}
	if n.Display == ports.DisplayAlert {
		return alertBorder.Render(out)
	}
	return out
}

func levelMarker(l ports.Level) string {
	switch l {
	case ports.LevelSuccess:
		return successStyle.Render("✔")
	case ports.LevelError:
		return errorStyle.Render("✖")
	default:
		return infoStyle.Render("•")
	}
}
