package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// --- TEMPL -> GOMPONENTS ---

// componentNode wraps a templ.Component to satisfy gomponents.Node.
// gomponents does not pass a context, so the component renders with ctx
// captured at construction.
type componentNode struct {
	ctx       context.Context
	component templ.Component
}

func (c componentNode) Render(w io.Writer) error {
	return c.component.Render(c.ctx, w)
}

// Node converts a templ.Component into a gomponents node rendered with
// context.Background().
func Node(component templ.Component) g.Node {
	return NodeContext(context.Background(), component)
}

// NodeContext is Node with an explicit render context.
func NodeContext(ctx context.Context, component templ.Component) g.Node {
	return componentNode{ctx: ctx, component: component}
}

// JSONScript embeds data as a <script type="application/json"> element.
func JSONScript(id string, data any) g.Node {
	return Node(templ.JSONScript(id, data))
}
