// Package cache provides livedata.Cache implementations backed by process
// memory or redis.
package cache
