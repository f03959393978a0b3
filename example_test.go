package katex_test

import (
	"fmt"

	"github.com/dpotapov/go-katex"
	"github.com/dpotapov/go-katex/parse"
)

func ExampleRenderToMathML() {
	out, err := katex.RenderToMathML(`x`, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// <math xmlns="http://www.w3.org/1998/Math/MathML"><semantics><mrow><mi>x</mi></mrow><annotation encoding="application/x-tex">x</annotation></semantics></math>
}

func ExampleParseTree() {
	settings, err := parse.NewSettings(parse.WithMacro(`\half`, `\frac12`))
	if err != nil {
		panic(err)
	}
	tree, err := katex.ParseTree(`\half x`, settings)
	if err != nil {
		panic(err)
	}
	for _, n := range tree {
		fmt.Println(n.Type())
	}
	// Output:
	// genfrac
	// mathord
}
