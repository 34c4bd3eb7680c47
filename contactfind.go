// Package contactfind resolves company names into contact details.
// Given a bare company name it discovers a plausible web presence across
// multiple sources (the company's own site, LinkedIn, IndiaMart, Facebook),
// extracts and validates email addresses and phone numbers from
// semi-structured HTML, and merges the findings under a first-valid-wins
// policy.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package contactfind
