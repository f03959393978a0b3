// Package markdown is a goldmark extension that typesets TeX math in
// markdown documents.
//
// Inline math is written as $...$ or \(...\), display math as $$...$$ or
// \[...\], either inline or as a block of its own:
//
//	$$
//	\int_0^1 x\,dx = \frac12
//	$$
//
// A single dollar sign only opens math when the closing one follows on the
// same line, the content does not start or end with a space and the closing
// sign is not followed by a digit, so prices like $5 stay text.
package markdown

import (
	"bytes"
	"log/slog"

	"github.com/dpotapov/go-katex"
	"github.com/dpotapov/go-katex/parse"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const (
	priorityInlineParser = 150
	priorityBlockParser  = 90
	priorityRenderer     = 100
)

// Extension adds math parsing and rendering to goldmark.
type Extension struct {
	// Options are applied to every expression. Errors are rendered as
	// placeholders unless an option sets ThrowOnError, in which case the
	// source is written as an error code span.
	Options []parse.Option

	// Logger receives render errors. If nil, slog.Default is used.
	Logger *slog.Logger
}

// Math renders math with the default settings.
var Math = &Extension{}

// New returns an extension applying opts to every expression.
func New(opts ...parse.Option) *Extension {
	return &Extension{Options: opts}
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(&blockParser{}, priorityBlockParser),
		),
		parser.WithInlineParsers(
			util.Prioritized(&inlineParser{}, priorityInlineParser),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(newMathRenderer(e), priorityRenderer),
		),
	)
}

var (
	KindInline = ast.NewNodeKind("MathInline")
	KindBlock  = ast.NewNodeKind("MathBlock")
)

// Inline is math inside a paragraph.
type Inline struct {
	ast.BaseInline
	Display bool
	TeX     text.Segment
}

func (n *Inline) Kind() ast.NodeKind { return KindInline }

func (n *Inline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"TeX": string(n.TeX.Value(source))}, nil)
}

// Block is display math on lines of its own. The TeX source is in Lines.
type Block struct {
	ast.BaseBlock
	closing []byte
	closed  bool
}

func (n *Block) Kind() ast.NodeKind { return KindBlock }

func (n *Block) IsRaw() bool { return true }

func (n *Block) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

var (
	dollar        = []byte("$")
	doubleDollar  = []byte("$$")
	parenOpen     = []byte(`\(`)
	parenClose    = []byte(`\)`)
	bracketOpen   = []byte(`\[`)
	bracketClose  = []byte(`\]`)
	inlineOpeners = []struct {
		open, close []byte
		display     bool
	}{
		{doubleDollar, doubleDollar, true},
		{dollar, dollar, false},
		{parenOpen, parenClose, false},
		{bracketOpen, bracketClose, true},
	}
)

// closingIndex returns the index of the first unescaped delim in b, or -1.
func closingIndex(b, delim []byte) int {
	for i := 0; i < len(b); i++ {
		switch {
		case b[i] == '\\' && delim[0] == '$':
			i++
		case bytes.HasPrefix(b[i:], delim):
			return i
		}
	}
	return -1
}

type inlineParser struct{}

func (p *inlineParser) Trigger() []byte {
	return []byte{'$', '\\'}
}

func (p *inlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()

	for _, d := range inlineOpeners {
		if !bytes.HasPrefix(line, d.open) {
			continue
		}
		body := line[len(d.open):]
		stop := closingIndex(body, d.close)
		if stop <= 0 {
			return nil
		}
		tex := body[:stop]
		if len(util.TrimLeftSpace(tex)) == 0 {
			return nil
		}
		if bytes.Equal(d.open, dollar) {
			after := body[stop+len(d.close):]
			if util.IsSpace(tex[0]) || util.IsSpace(tex[len(tex)-1]) || (len(after) > 0 && util.IsNumeric(after[0])) {
				return nil
			}
		}
		start := seg.Start + len(d.open)
		block.Advance(len(d.open) + stop + len(d.close))
		return &Inline{Display: d.display, TeX: text.NewSegment(start, start+stop)}
	}
	return nil
}

type blockParser struct{}

func (p *blockParser) Trigger() []byte {
	return []byte{'$', '\\'}
}

func (p *blockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, seg := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 {
		return nil, parser.NoChildren
	}
	rest := line[pos:]

	node := &Block{}
	switch {
	case bytes.HasPrefix(rest, doubleDollar):
		node.closing = doubleDollar
	case bytes.HasPrefix(rest, bracketOpen):
		node.closing = bracketClose
	default:
		return nil, parser.NoChildren
	}
	body := rest[2:]
	start := seg.Start + pos + 2

	if i := closingIndex(body, node.closing); i >= 0 {
		// Text after the closing delimiter makes this inline math.
		if !util.IsBlank(body[i+len(node.closing):]) {
			return nil, parser.NoChildren
		}
		node.Lines().Append(text.NewSegment(start, start+i))
		node.closed = true
		advanceLine(reader, line, seg)
		return node, parser.Close | parser.NoChildren
	}

	if !util.IsBlank(body) {
		node.Lines().Append(text.NewSegment(start, seg.Stop))
	}
	advanceLine(reader, line, seg)
	return node, parser.NoChildren
}

func (p *blockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	n := node.(*Block)
	if n.closed {
		return parser.Close
	}
	line, seg := reader.PeekLine()
	if line == nil {
		return parser.Close
	}

	if i := closingIndex(line, n.closing); i >= 0 {
		if !util.IsBlank(line[:i]) {
			n.Lines().Append(text.NewSegment(seg.Start, seg.Start+i))
		}
		n.closed = true
		advanceLine(reader, line, seg)
		return parser.Close
	}

	n.Lines().Append(seg)
	advanceLine(reader, line, seg)
	return parser.Continue | parser.NoChildren
}

// advanceLine moves the reader to the end of line, leaving the newline.
func advanceLine(reader text.Reader, line []byte, seg text.Segment) {
	n := seg.Len()
	if len(line) > 0 && line[len(line)-1] == '\n' {
		n--
	}
	reader.Advance(n)
}

func (p *blockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *blockParser) CanInterruptParagraph() bool { return true }

func (p *blockParser) CanAcceptIndentedLine() bool { return false }

type mathRenderer struct {
	inline  *parse.Settings
	display *parse.Settings
	logger  *slog.Logger
}

func newMathRenderer(e *Extension) *mathRenderer {
	r := &mathRenderer{logger: e.Logger}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	build := func(display bool) *parse.Settings {
		opts := append([]parse.Option{parse.WithThrowOnError(false), parse.WithLogger(r.logger)}, e.Options...)
		opts = append(opts, parse.WithDisplayMode(display))
		s, err := parse.NewSettings(opts...)
		if err != nil {
			r.logger.Error("Invalid math settings, using defaults", "error", err)
			s, _ = parse.NewSettings(parse.WithThrowOnError(false), parse.WithDisplayMode(display))
		}
		return s
	}
	r.inline = build(false)
	r.display = build(true)
	return r
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *mathRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindInline, r.renderInline)
	reg.Register(KindBlock, r.renderBlock)
}

func (r *mathRenderer) renderInline(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Inline)
	settings := r.inline
	if n.Display {
		settings = r.display
	}
	r.render(w, string(n.TeX.Value(source)), settings)
	return ast.WalkSkipChildren, nil
}

func (r *mathRenderer) renderBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var tex bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		tex.Write(line.Value(source))
	}
	_, _ = w.WriteString(`<p class="math-display">`)
	r.render(w, string(bytes.TrimSpace(tex.Bytes())), r.display)
	_, _ = w.WriteString("</p>\n")
	return ast.WalkSkipChildren, nil
}

func (r *mathRenderer) render(w util.BufWriter, tex string, settings *parse.Settings) {
	out, err := katex.RenderToString(tex, settings)
	if err != nil {
		r.logger.Warn("Render math", "tex", tex, "error", err)
		_, _ = w.WriteString(`<code class="katex-error">`)
		_, _ = w.Write(util.EscapeHTML([]byte(tex)))
		_, _ = w.WriteString(`</code>`)
		return
	}
	_, _ = w.WriteString(out)
}
