/*
Package observability provides tools for monitoring a lattice store.

It includes Prometheus metrics fed by lifecycle hooks, a structured-logging
hook set, and Chain to combine several hook sets into one.
*/
package observability
