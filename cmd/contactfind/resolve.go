package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/contactfind/contactfind"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	names, err := readCompanyNames(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", contactfind.ErrorMessage(err))
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No company names found in input.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Resolving %d companies\n", len(names))

	records, err := deps.Resolver.Resolve(deps.Ctx, names)
	if err != nil {
		// Partial results are success; only a cancelled run surfaces here.
		fmt.Fprintf(deps.Stderr, "resolution interrupted: %v\n", err)
	}

	var resolved int
	for _, record := range records {
		if record.Email == "" && record.Phone == "" && record.Website == "" {
			fmt.Fprintf(deps.Stdout, "  %s: nothing found\n", record.CompanyName)
			continue
		}
		resolved++
		fmt.Fprintf(deps.Stdout, "  %s: email=%s phone=%s website=%s (%s)\n",
			record.CompanyName, orDash(record.Email), orDash(record.Phone),
			orDash(record.Website), record.Source())
	}

	fmt.Fprintf(deps.Stdout, "Resolved %d/%d companies, output written to %s\n",
		resolved, len(records), c.Output)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// readCompanyNames reads the first column of a CSV file, skipping a header
// row and empty cells. A single-column plain text file parses the same way.
func readCompanyNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, contactfind.Errorf(contactfind.EINVALID, "opening input %s: %v", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var names []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, contactfind.Errorf(contactfind.EINVALID, "reading input %s: %v", path, err)
		}
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		if len(names) == 0 && isHeaderCell(name) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func isHeaderCell(cell string) bool {
	switch strings.ToLower(cell) {
	case "company name", "company", "name":
		return true
	}
	return false
}
