// Package profile loads the optional per-project .cppgen.yaml file. A
// profile overrides the user's author and company names and the banner
// layout for every file generated below the directory that holds it, and
// may pin a minimum cppgen version. Profiles are validated against an
// embedded JSON Schema before they are decoded.
package profile
