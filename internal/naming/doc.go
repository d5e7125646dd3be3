// Package naming validates C++ class names and derives the identifiers
// built from them: file stems and include guards. A class name is one or
// more identifiers joined by "::"; nothing beyond that lexical shape is
// checked.
package naming
