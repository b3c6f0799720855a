// Package textutil holds small string predicates and transforms that do not
// warrant a package of their own.
package textutil
