// Package newsgrab provides a bounded, single-pass crawler for a small
// set of news sites. It discovers article pages by following links,
// extracts structured fields from each page, and persists the results
// as a deduplicated collection keyed by URL.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, zap/).
package newsgrab
