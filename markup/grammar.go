package markup

import "github.com/alecthomas/participle/v2"
import "github.com/alecthomas/participle/v2/lexer"

var (
	markupLexer = lexer.MustStateful(lexer.Rules{
		"Root": {
			{ Name: "Escaped", Pattern: `\[\[` },
			{ Name: "Close", Pattern: `\[/`, Action: lexer.Push("Tag") },
			{ Name: "Open", Pattern: `\[`, Action: lexer.Push("Tag") },
			{ Name: "Text", Pattern: `[^\[]+` },
		},
		"Tag": {
			{ Name: "TagEnd", Pattern: `\]`, Action: lexer.Pop() },
			{ Name: "Assign", Pattern: `=`, Action: lexer.Push("Value") },
			{ Name: "Name", Pattern: `[A-Za-z]+` },
		},
		"Value": {
			{ Name: "Value", Pattern: `[^\]\n]+`, Action: lexer.Pop() },
		},
	})

	markupParser = participle.MustBuild[document](
		participle.Lexer(markupLexer),
	)
)

// The markup is parsed as a flat sequence of nodes. Nesting is
// checked while building the runs.
type document struct {
	Nodes []*node `parser:"@@*"`
}

type node struct {
	Text *string `parser:"  @Text"`
	Escaped *string `parser:"| @Escaped"`
	Close *closeTag `parser:"| @@"`
	Open *openTag `parser:"| @@"`
}

type openTag struct {
	Pos lexer.Position `parser:""`
	Name string `parser:"Open @Name"`
	Value *string `parser:"( Assign @Value )? TagEnd"`
}

type closeTag struct {
	Pos lexer.Position `parser:""`
	Name string `parser:"Close @Name TagEnd"`
}
