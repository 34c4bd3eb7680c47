package mock

import (
	"sync"

	"github.com/contactfind/contactfind"
)

var _ contactfind.ResultSink = (*ResultSink)(nil)

// ResultSink is a mock implementation of contactfind.ResultSink.
// When WriteFn is nil, written records are collected in Records.
type ResultSink struct {
	WriteFn func(record *contactfind.ContactRecord) error
	CloseFn func() error

	mu      sync.Mutex
	Records []contactfind.ContactRecord
}

func (s *ResultSink) Write(record *contactfind.ContactRecord) error {
	if s.WriteFn != nil {
		return s.WriteFn(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records = append(s.Records, *record)
	return nil
}

func (s *ResultSink) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// Written returns a copy of the collected records.
func (s *ResultSink) Written() []contactfind.ContactRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]contactfind.ContactRecord, len(s.Records))
	copy(out, s.Records)
	return out
}
