// Package config loads tour definition files.
//
// A tour file describes help flows in TOML or YAML, picked by extension:
//
//	[settings]
//	enabled = true
//	margin_size = 4
//
//	[translations]
//	"search.body" = "Type to filter the list"
//
//	[[flow]]
//	id = "onboarding"
//
//	  [[flow.item]]
//	  target = "search"
//	  position = "bottom-left"
//	  content = "search.body"
//
// Flows and items are enabled and visible unless they say otherwise. Items
// without an id get a random one. [Load] validates the whole file and
// reports every problem it finds, not just the first; [Watch] reloads a file
// whenever it changes on disk.
package config
