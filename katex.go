// Package katex typesets TeX math into HTML and MathML.
//
// An expression goes through the parse package (lexer, macro expansion and
// parser) and the build package (box layout and MathML), and comes out as
// an *html.Node tree or as markup:
//
//	out, err := katex.RenderToString(`c = \pm\sqrt{a^2 + b^2}`, nil)
//
// The output uses the class names of the KaTeX stylesheet, which the page
// has to load. Handler serves a copy of the core rules together with a
// live preview.
package katex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/dpotapov/go-katex/build"
	"github.com/dpotapov/go-katex/parse"
	"golang.org/x/net/html"
)

// ErrUnsupportedOutput is returned by RenderToMathML when the settings ask
// for HTML output only.
var ErrUnsupportedOutput = errors.New("output format does not include MathML")

func settingsOrDefault(settings *parse.Settings) (*parse.Settings, error) {
	if settings != nil {
		return settings, nil
	}
	return parse.NewSettings()
}

// ParseTree parses expression without building any output.
func ParseTree(expression string, settings *parse.Settings) ([]parse.Node, error) {
	settings, err := settingsOrDefault(settings)
	if err != nil {
		return nil, err
	}
	return parse.ParseTree(expression, settings)
}

// renderError turns a parse error into the error placeholder unless the
// settings ask for errors to be returned. Other errors are always returned.
func renderError(err error, expression string, settings *parse.Settings) (build.Node, error) {
	var pe *parse.ParseError
	if settings.ThrowOnError || !errors.As(err, &pe) {
		return nil, err
	}
	return build.ErrorNode(expression, err, settings.ErrorColor), nil
}

// RenderToDomTree parses and builds expression, returning the box tree. A
// nil settings uses the defaults.
func RenderToDomTree(expression string, settings *parse.Settings) (build.Node, error) {
	settings, err := settingsOrDefault(settings)
	if err != nil {
		return nil, err
	}
	tree, err := parse.ParseTree(expression, settings)
	if err != nil {
		return renderError(err, expression, settings)
	}
	node, err := build.BuildTree(tree, expression, settings)
	if err != nil {
		return renderError(err, expression, settings)
	}
	return node, nil
}

// RenderToHTMLTree is like RenderToDomTree but builds only the HTML
// output, without MathML.
func RenderToHTMLTree(expression string, settings *parse.Settings) (build.Node, error) {
	settings, err := settingsOrDefault(settings)
	if err != nil {
		return nil, err
	}
	tree, err := parse.ParseTree(expression, settings)
	if err != nil {
		return renderError(err, expression, settings)
	}
	node, err := build.BuildHTMLTree(tree, settings)
	if err != nil {
		return renderError(err, expression, settings)
	}
	return node, nil
}

// RenderToString renders expression to markup.
func RenderToString(expression string, settings *parse.Settings) (string, error) {
	node, err := RenderToDomTree(expression, settings)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := html.Render(&sb, node.ToNode()); err != nil {
		return "", fmt.Errorf("render HTML: %w", err)
	}
	return sb.String(), nil
}

// RenderToMathML renders expression to a standalone <math> element.
func RenderToMathML(expression string, settings *parse.Settings) (string, error) {
	settings, err := settingsOrDefault(settings)
	if err != nil {
		return "", err
	}
	if settings.Output == parse.OutputHTML {
		return "", ErrUnsupportedOutput
	}
	tree, err := parse.ParseTree(expression, settings)
	if err != nil {
		return "", err
	}
	math, err := build.MathMLTree(tree, expression, build.NewOptions(settings), settings.DisplayMode)
	if err != nil {
		return "", err
	}
	doc := etree.NewDocument()
	doc.SetRoot(math.ToElement())
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("write MathML: %w", err)
	}
	return out, nil
}
