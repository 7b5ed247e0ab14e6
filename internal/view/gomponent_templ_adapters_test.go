package view_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/b2bsite/internal/view"
)

type ctxKey struct{}

func TestAdaptTemplToGomponent(t *testing.T) {
	inner := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<em>"+ctx.Value(ctxKey{}).(string)+"</em>")
		return err
	})
	ctx := context.WithValue(context.Background(), ctxKey{}, "from request")

	var b strings.Builder
	node := Div(g.Text("wrapped "), view.AdaptTemplToGomponent(ctx, inner))
	require.NoError(t, node.Render(&b))
	assert.Equal(t, "<div>wrapped <em>from request</em></div>", b.String())
}
