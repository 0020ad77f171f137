package cache

import "time"

// Standard TTLs per cached data kind. Reports are invalidated implicitly by
// content hash, so their TTL only bounds cache growth.
const (
	// TTLReport is how long compliance reports stay cached.
	TTLReport = 24 * time.Hour

	// TTLGeneration is how long generation responses stay cached.
	TTLGeneration = 24 * time.Hour

	// TTLDocument is how long document snapshots stay cached.
	// Zero means no expiration; stores overwrite on save.
	TTLDocument = time.Duration(0)
)
