package parse

// ParseTree parses a complete math expression. An equation tag set with
// \tag wraps the result in a Tag node.
func ParseTree(input string, settings *Settings) ([]Node, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	p := NewParser(input, settings)
	macros := p.gullet.Macros()

	// \df@tag may survive from a previous parse that shares Settings.Macros.
	macros.Delete(`\df@tag`, true)
	tree, err := p.Parse()
	if err != nil {
		return nil, err
	}
	macros.Delete(`\current@color`, true)
	macros.Delete(`\color`, true)

	if _, ok := macros.Get(`\df@tag`); ok {
		if !settings.DisplayMode {
			return nil, NewParseError(`\tag works only in display equations`, nil)
		}
		tag, err := p.Subparse([]*Token{NewToken(`\df@tag`, nil)})
		if err != nil {
			return nil, err
		}
		tree = []Node{&Tag{Base: Base{Mode: TextMode}, Body: tree, Tag: tag}}
	}
	return tree, nil
}
