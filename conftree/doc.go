// Package conftree holds a parsed HOCON document as a small tagged-union
// tree with typed accessors.
//
// Accessors tell an absent key (ErrKeyNotFound) apart from a value of the
// wrong shape (ErrWrongType). An explicit null is treated as absent.
package conftree
