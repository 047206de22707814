package output

import (
	"io"

	"github.com/lintkit/sonarjson/internal/rules"
	"github.com/lintkit/sonarjson/internal/types"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// Render writes the accumulated messages to the writer
	Render(w io.Writer, messages []types.Message, table *rules.Table) error
}

// Format represents an output format
type Format string

const (
	FormatSonar Format = "sonar"
	FormatText  Format = "text"
)

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatText:
		return &TextRenderer{ColorEnabled: colorEnabled}
	default:
		return &SonarRenderer{}
	}
}
