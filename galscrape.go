// Package galscrape discovers and aggregates direct media-asset URLs
// hosted on third-party gallery sites. Given a user identifier or a
// direct album URL it walks search pagination, expands nested album and
// leaf-page links with bounded concurrency, deduplicates the discovered
// asset URLs, and validates that each one still resolves.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. goquery/,
// http/) or their concern (crawl/).
package galscrape
