package constants

import "time"

// Redis cache keys and TTL values.
// Pattern: matchday:{module}:{operation}

const CACHE_PREFIX = "matchday"

// Semi-static catalog data (matches are seeded out of band and change rarely)
const (
	TTL_MATCH_LIST = 15 * time.Minute
)

const (
	// Full match listing served by GET /matches
	CACHE_KEY_MATCH_LIST = CACHE_PREFIX + ":matches:list"
)
