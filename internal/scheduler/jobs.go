package scheduler

import "github.com/google/uuid"

const (
	// JobTypeBulkTranslate asks the worker to translate one content record
	// into every configured target locale.
	JobTypeBulkTranslate = "translate.bulk"
	// JobTypeCachePrune asks the worker to drop stale cache entries.
	JobTypeCachePrune = "translate.cache.prune"
)

// BulkTranslateJobKey dedupes bulk jobs per record: re-enqueueing the same
// record replaces the pending job instead of stacking a second one.
func BulkTranslateJobKey(table string, id uuid.UUID) string {
	return "bulk:" + table + ":" + id.String()
}

// CachePruneJobKey is the singleton key for the prune job.
func CachePruneJobKey() string {
	return "cache:prune"
}
