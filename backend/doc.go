// Package backend defines the vocabulary shared by netfetch and its
// downloader dialects.
//
// A [Backend] describes one external download tool: how to probe for its
// presence and how to translate a [Request] into that tool's command
// line. The interface lives here, at the consumer side, following Go
// interface ownership conventions; concrete dialects implement it in
// their own packages (wget, curl).
//
// Adding a dialect is a data addition: implement [Backend] in a new
// package and include it in the ordered backend list handed to the
// netfetch client.
package backend
