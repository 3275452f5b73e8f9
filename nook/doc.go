// Package nook implements the Nook language front end: it turns source
// text into a validated syntax tree.
//
//   - Scan converts source into tokens. It fails on the first lexical error
//     (unknown character, malformed number, unterminated or invalid string
//     and char literals) and then returns no tokens.
//   - Parse builds statements by recursive descent. A statement with a
//     syntax error is dropped and reported; parsing resumes at the next `;`
//     or declaration keyword so one run reports every independent error.
//   - PrintTree renders statements as a box-drawn tree.
//   - Engine ties the steps to a project directory described by a
//     nook.manifest TOML file.
//
// Statements are `var name = expr;`, `print expr;` and `expr;`. Comments
// run from `//` to the end of the line.
package nook
