package contactfind

// ResultSink receives completed contact records, one per company, in
// completion order. Implementations must tolerate records with empty fields;
// the aggregator guarantees each company is written at most once.
type ResultSink interface {
	Write(record *ContactRecord) error

	// Close flushes buffered rows and releases the underlying writer.
	Close() error
}
