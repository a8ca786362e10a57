package ports

// Tree is the result of parsing one source file: the detected language and
// the flat single-line serialization of the syntax tree. Downstream code
// depends only on this serialization, not on any richer tree API.
type Tree struct {
	Language   string
	Serialized string
}

// Parser turns source text into a serialized syntax tree. The concrete
// implementation (tree-sitter) lives in internal/adapters/treesitter.
// When nil, the binary was built without CGo and no parsing is available.
type Parser interface {
	// ParseTree parses a source file and returns its serialized tree.
	// The language is detected from the file path. Returns an error for
	// unsupported file types.
	ParseTree(path string, source []byte) (*Tree, error)

	// SupportsExtension returns true if the parser can handle files with
	// this extension (e.g., ".go", ".py"). Extension includes the leading dot.
	SupportsExtension(ext string) bool
}
