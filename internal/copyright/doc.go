// Package copyright finds, normalises, and updates the copyright comment at
// the top of a C++ source file.
//
// The block is the first /* ... */ comment in the text, and only counts when
// it opens with the word "Copyright". Continuation lines are rewritten to
// start with "**" and the closing line to a bare "*/". Updating appends an
// "Updated by" line for the current author and month unless the block
// already credits them for that month, so repeated updates are no-ops.
package copyright
