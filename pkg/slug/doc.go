// Package slug converts arbitrary text into URL-safe kebab-case slugs and
// checks whether a string already is one.
//
// Make splits the input into words the way most kebab-case helpers do:
// punctuation and whitespace separate words, and so do case changes inside
// camelCase or PascalCase identifiers and transitions between letters and
// digits. Diacritics are removed with Unicode decomposition
// (golang.org/x/text), and a handful of ligatures such as "æ" and "ß" are
// spelled out.
//
// # Usage
//
//	slug.Make("Hello World!")          // "hello-world"
//	slug.Make("fooBar baz")            // "foo-bar-baz"
//	slug.Make("Café au lait")          // "cafe-au-lait"
//	slug.Make("Price & Tax", slug.CustomReplace(map[string]string{"&": "and"}))
//	                                   // "price-and-tax"
//	slug.Valid("hello-world")          // true
//	slug.Valid("hello--world")         // false
//
// # Options
//
//   - MaxLength: cap the slug length in runes
//   - Separator: change the word separator (default "-")
//   - Lowercase: keep original casing when false
//   - CustomReplace: apply replacements before splitting
//   - WithSuffix: append a random alphanumeric suffix (crypto/rand)
//
// All functions are safe for concurrent use.
package slug
