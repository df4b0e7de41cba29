package ulog

import "sync"

// Sink is the transport boundary. Implementations receive finished records
// and must not block the caller observably or panic back into dispatch.
type Sink interface {
	Write(sev Severity, msg string, meta Meta)
}

// MultiSink fans every record out to each wrapped sink in order.
type MultiSink []Sink

func (ms MultiSink) Write(sev Severity, msg string, meta Meta) {
	for _, s := range ms {
		s.Write(sev, msg, meta)
	}
}

// CapturedRecord is one record retained by a CaptureSink.
type CapturedRecord struct {
	Severity Severity
	Message  string
	Meta     Meta
}

// CaptureSink retains every record in memory. Test support.
type CaptureSink struct {
	mu      sync.Mutex
	records []CapturedRecord
}

func (c *CaptureSink) Write(sev Severity, msg string, meta Meta) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, CapturedRecord{Severity: sev, Message: msg, Meta: meta})
}

// Records returns a copy of everything captured so far.
func (c *CaptureSink) Records() []CapturedRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CapturedRecord, len(c.records))
	copy(out, c.records)
	return out
}
