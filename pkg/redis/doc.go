// Package redis connects to the Redis server that holds shared relay state,
// currently the order endpoint's rate limit buckets when the relay runs as
// several replicas.
package redis
