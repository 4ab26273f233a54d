package cache

import "strings"

// KeyPrefix namespaces every key this service writes to Redis.
const KeyPrefix = "trivia"

// GenerateCacheKey builds "trivia:<service>:<object>:<id>". Extra params are
// folded into one trailing segment, e.g. "...:all:page_2".
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	segments := []string{KeyPrefix, serviceName, objectType, identifier}
	if len(paramsKey) > 0 {
		segments = append(segments, strings.Join(paramsKey, "_"))
	}
	return strings.Join(segments, ":")
}
