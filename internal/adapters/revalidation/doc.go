// Package revalidation provides the invalidation sinks used by the
// revalidation dispatcher: the rendering framework webhook, a redis stream
// for other cache tiers, and a log-only sink for local runs.
package revalidation
