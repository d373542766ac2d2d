// Package helixdoc extracts structured endpoint records from the Twitch Helix
// API reference page and writes them out as tables.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package helixdoc

// DefaultReferenceURL is the documentation page endpoints are extracted from.
const DefaultReferenceURL = "https://dev.twitch.tv/docs/api/reference"

// DefaultBaseURL is the Helix API root that endpoint paths are relative to.
const DefaultBaseURL = "https://api.twitch.tv/helix/"
