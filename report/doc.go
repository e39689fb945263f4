// Package report provides the configurable logger shared by all froipin
// components.
//
// The root logger uses github.com/rs/zerolog with a console writer and is
// silenced automatically under `go test`. Components obtain a sublogger
// via Logger(); users may replace it with Set, redirect it with
// SetOutput, or mute it with Disable.
package report
