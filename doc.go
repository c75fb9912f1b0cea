// Package markin compiles a small line-oriented markup dialect to HTML.
//
// Compilation runs in four stages over whole lines:
//   - Scan classifies every source line into a Token
//   - RetagFences pairs code and quote fence markers
//   - Grammar.Parse matches an ordered table of PEG productions over the
//     tokens and emits one Block per match
//   - RenderHTML converts each block, applying inline markup to text
//
// Compile never fails; unterminated fences and other malformed constructs
// degrade to literal paragraph text.
//
// Example:
//
//	html := markin.Compile("# Hello\n\nSome **bold** text.\n")
//	// <h1>Hello</h1>
//	// <p>Some <strong>bold</strong> text.</p>
//
// Render and HTTPRender wrap Compile with input validation, front matter
// handling and optional standalone page output.
package markin
