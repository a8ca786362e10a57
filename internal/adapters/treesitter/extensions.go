package treesitter

// This file registers file extension mappings. Always included regardless of
// build tags — the mappings are needed for both compiled-in and
// dynamically-loaded grammars: an extension may map to a language whose
// grammar only exists as a shared library in the search paths.

// registerExtensions maps file extensions (and a few special filenames) to
// language names.
func (p *Parser) registerExtensions() {
	// Core
	p.addExt("python", ".py", ".pyw")
	p.addExt("javascript", ".js", ".jsx", ".mjs", ".cjs")
	p.addExt("typescript", ".ts", ".mts")
	p.addExt("tsx", ".tsx")
	p.addExt("go", ".go")
	p.addExt("rust", ".rs")
	p.addExt("java", ".java")
	p.addExt("c", ".c", ".h")
	p.addExt("cpp", ".cpp", ".hpp", ".cc", ".cxx", ".hxx")
	p.addExt("csharp", ".cs")
	p.addExt("ruby", ".rb")
	p.addExt("php", ".php")
	p.addExt("kotlin", ".kt", ".kts")
	p.addExt("scala", ".scala", ".sc")

	// Scripting & Shell
	p.addExt("bash", ".sh", ".bash")
	p.addExt("lua", ".lua")

	// Functional
	p.addExt("haskell", ".hs")
	p.addExt("ocaml", ".ml", ".mli")

	// Systems & Emerging
	p.addExt("zig", ".zig")
	p.addExt("cuda", ".cu", ".cuh")
	p.addExt("verilog", ".sv", ".v")

	// Web & Frontend
	p.addExt("html", ".html", ".htm")
	p.addExt("css", ".css")
	p.addExt("svelte", ".svelte")

	// Data & Config
	p.addExt("json", ".json")
	p.addExt("yaml", ".yaml", ".yml")
	p.addExt("toml", ".toml")
	p.addExt("hcl", ".hcl", ".tf")

	// Dynamic-only: no compiled-in grammar; resolved through the loader
	// when a matching shared library is installed.
	p.addExt("swift", ".swift")
	p.addExt("elixir", ".ex", ".exs")
	p.addExt("erlang", ".erl", ".hrl")
	p.addExt("clojure", ".clj", ".cljs", ".cljc")
	p.addExt("elm", ".elm")
	p.addExt("julia", ".jl")
	p.addExt("nim", ".nim")
	p.addExt("odin", ".odin")
	p.addExt("d", ".d")
	p.addExt("r", ".r", ".R")
	p.addExt("perl", ".pl", ".pm")
	p.addExt("dart", ".dart")
	p.addExt("vue", ".vue")
	p.addExt("objc", ".m", ".mm")

	// Special filenames (no extension)
	p.addExt("dockerfile", "Dockerfile")
	p.addExt("make", "Makefile", ".mk")
}
