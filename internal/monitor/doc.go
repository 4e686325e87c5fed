// Package monitor polls a printer endpoint on a schedule and caches the
// most recent reachability status as a read model.
//
// Control operations do not update any local state; after issuing one, the
// caller re-queries through this package rather than trusting an implicit
// success. The Fetcher interface keeps richer state sources pluggable; the
// shipped HTTPFetcher only probes the IPP endpoint over HTTP.
package monitor
