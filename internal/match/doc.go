// Package match provides identifier tokenizing and edit-distance helpers
// used to derive option names from accessor names and to suggest the
// nearest known option when an unknown one is given.
//
// Key functions:
//   - LowerLeadingWord: lower-cases the first CamelCase word of an identifier
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Distance: computes edit distance between strings
//   - Closest: picks the nearest candidate name
package match
