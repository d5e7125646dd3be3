// Package pathresolve maps a directory to its conventional header or source
// sibling: ".../src" and ".../source" pair with ".../inc" or ".../include".
// A sibling is only returned when it exists as a directory; otherwise the
// input is returned unchanged. The resolver never creates anything.
package pathresolve
