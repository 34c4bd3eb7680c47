// Package fs provides file-based output and caching: the CSV result sink
// and a content-addressed cache for expensive derivations.
package fs

import (
	"encoding/csv"
	"os"
	"sync"

	"github.com/contactfind/contactfind"
)

// Ensure CSVWriter implements contactfind.ResultSink at compile time.
var _ contactfind.ResultSink = (*CSVWriter)(nil)

var csvHeader = []string{"Company Name", "Website", "Email", "Phone", "Source"}

// CSVWriter writes contact records to a CSV file, one row per company.
// Rows are flushed after every write so a partial run still leaves usable
// output on disk. CSVWriter is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates the output file, truncating any existing file at
// path, and writes the header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, contactfind.Errorf(contactfind.EINTERNAL, "creating output file %s: %v", path, err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		file.Close()
		return nil, contactfind.Errorf(contactfind.EINTERNAL, "writing csv header: %v", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return nil, contactfind.Errorf(contactfind.EINTERNAL, "flushing csv header: %v", err)
	}

	return &CSVWriter{file: file, writer: w}, nil
}

// Write appends one row for the record and flushes it to disk.
func (w *CSVWriter) Write(record *contactfind.ContactRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	row := []string{
		record.CompanyName,
		record.Website,
		record.Email,
		record.Phone,
		record.Source(),
	}
	if err := w.writer.Write(row); err != nil {
		return contactfind.Errorf(contactfind.EINTERNAL, "writing csv row for %s: %v", record.CompanyName, err)
	}
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return contactfind.Errorf(contactfind.EINTERNAL, "flushing csv row for %s: %v", record.CompanyName, err)
	}
	return nil
}

// Close flushes remaining rows and closes the file.
func (w *CSVWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return contactfind.Errorf(contactfind.EINTERNAL, "flushing csv output: %v", err)
	}
	return w.file.Close()
}
