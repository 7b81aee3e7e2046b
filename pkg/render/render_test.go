package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blobposter/pkg/poster"
)

type call struct {
	op      string
	aspect  float64
	n       int
	color   poster.Color
	opacity float64
	text    string
	size    float64
	bold    bool
}

// recorder is a Renderer that records every call.
type recorder struct {
	calls []call
}

func (r *recorder) ClearCanvas(aspect float64) {
	r.calls = append(r.calls, call{op: "clear", aspect: aspect})
}

func (r *recorder) FillPolygon(v []poster.Point, c poster.Color, opacity float64) {
	r.calls = append(r.calls, call{op: "fill", n: len(v), color: c, opacity: opacity})
}

func (r *recorder) DrawText(x, y float64, text string, size float64, bold bool) {
	r.calls = append(r.calls, call{op: "text", text: text, size: size, bold: bold})
}

func (r *recorder) Present() ([]byte, error) {
	r.calls = append(r.calls, call{op: "present"})
	return []byte("done"), nil
}

func TestDraw(t *testing.T) {
	spec := poster.DefaultSpec()
	spec.Layers = 4
	p, err := poster.Generate(spec)
	require.NoError(t, err)

	rec := &recorder{}
	out, err := Draw(rec, p)
	require.NoError(t, err)
	assert.Equal(t, []byte("done"), out)

	// clear, 4 fills, title, subtitle, present
	require.Len(t, rec.calls, 8)
	assert.Equal(t, call{op: "clear", aspect: DefaultAspectRatio}, rec.calls[0])
	for i, l := range p.Layers {
		c := rec.calls[i+1]
		assert.Equal(t, "fill", c.op)
		assert.Equal(t, len(l.Vertices), c.n)
		assert.Equal(t, l.Color, c.color)
		assert.Equal(t, l.Opacity, c.opacity)
	}
	assert.Equal(t, call{op: "text", text: DefaultTitle, size: 18, bold: true}, rec.calls[5])
	assert.Equal(t, call{op: "text", text: DefaultSubtitle, size: 11}, rec.calls[6])
	assert.Equal(t, "present", rec.calls[7].op)
}

func TestDrawOptions(t *testing.T) {
	rec := &recorder{}
	_, err := Draw(rec, poster.Poster{},
		WithTitle("Blobs"),
		WithSubtitle(""),
		WithAspectRatio(1),
	)
	require.NoError(t, err)

	require.Len(t, rec.calls, 3)
	assert.Equal(t, 1.0, rec.calls[0].aspect)
	assert.Equal(t, "Blobs", rec.calls[1].text)
	assert.Equal(t, "present", rec.calls[2].op)
}
