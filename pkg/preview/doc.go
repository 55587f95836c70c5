// Package preview serves a tour file over HTTP for review in a browser.
//
// The server reloads the tour on every request, so edits show up on the
// next refresh. It exposes:
//
//	GET /              flow diagram and item table
//	GET /flows.svg     flow diagram as SVG
//	GET /flows.dot     flow diagram as Graphviz DOT
//	GET /api/state     flows and items as JSON
//	GET /api/place     one placement computed from query parameters
//
// /api/place takes target=top,bottom,left,right, viewport=WxH, size=WxH and
// optional position, anchor and margin parameters. It runs the same
// resolve and correct pipeline the terminal overlay uses.
package preview
