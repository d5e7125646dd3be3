// Package editor is the command-line stand-in for an editor host. A Buffer
// is a file loaded into memory that can be edited by byte offset or line and
// saved back; a View adds a cursor and an optional selection. Class names
// come from the selection, the word under the cursor, or a Prompter, in that
// order.
package editor
