package model

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	searchCachePrefix = "works:search:"
	slugCachePrefix   = "works:slug:"

	// SearchCachePattern matches every cached search page
	SearchCachePattern = searchCachePrefix + "*"
)

// SearchCacheKey hashes the normalized search parameters
func SearchCacheKey(parts ...string) string {
	sum := md5.Sum([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%s%x", searchCachePrefix, sum)
}

func SlugCacheKey(slug string) string {
	return slugCachePrefix + slug
}
