// SPDX-License-Identifier: MIT
// Package: spinmix/record
//
// collector.go: in-memory sink.

package record

import "sync"

// Collector is a Sink that keeps every record in memory. Safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	records []Record
}

// Append implements Sink.
func (c *Collector) Append(r Record) error {
	c.mu.Lock()
	c.records = append(c.records, r)
	c.mu.Unlock()
	return nil
}

// Records returns a copy of the collected records in append order.
func (c *Collector) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of collected records.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}
