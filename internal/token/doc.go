// Package token defines lexical token kinds for the Volt frontend.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Annotations are lexed as '@' (Kind: At) + Ident; no per-annotation kinds.
//   - Built-in type names (Int32, String, Variant, ...) are identifiers.
//     They are recognized by the semantic layer, not the lexer.
package token
