// Package cache provides a small generic LRU cache.
//
// The validator package uses it to memoize compiled date patterns and currency
// amount expressions. Both are derived from user supplied schema documents, so
// the caches are bounded rather than growing with every distinct pattern.
//
//	patterns := cache.NewLRU[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrCreate(expr, func() (*regexp.Regexp, error) {
//	    return regexp.Compile(expr)
//	})
package cache
