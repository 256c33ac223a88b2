// Package snapshot loads per-source snapshot files into raw records. A
// snapshot is whatever a collector last wrote for a source: CSV or newline
// delimited JSON, optionally gzip or zstd compressed. Field names vary by
// source and are mapped through a fixed alias table; unknown fields are
// ignored and absence never raises an error.
package snapshot
