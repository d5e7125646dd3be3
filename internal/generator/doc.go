// Package generator runs cppgen's command flows on top of the text
// builders: creating a header/source pair for a new class, inserting class
// declarations, definitions, and banners into an open buffer, and keeping
// a buffer's copyright block current.
//
// All validation happens before anything is written. File creation is
// both-or-nothing: if either target exists, neither file is written.
package generator
