// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// Config defines where and how verbosely a logger writes.
type Config struct {
	// Level of the messages written to the rotated log file.
	LogLevel Level `json:"logLevel"`
	// Level of the messages mirrored to stderr.
	DisplayLevel Level `json:"displayLevel"`

	// Directory to write rotated log files into. When empty, only the
	// display core is created.
	Directory string `json:"directory"`

	// Rotation policy, in the units lumberjack expects.
	MaxSize  int  `json:"maxSize"`  // megabytes
	MaxFiles int  `json:"maxFiles"` // rotated files kept
	MaxAge   int  `json:"maxAge"`   // days
	Compress bool `json:"compress"`

	LoggerName string `json:"-"`
}

// DefaultConfig keeps a week of 8 MB files and displays Info and above.
var DefaultConfig = Config{
	LogLevel:     Debug,
	DisplayLevel: Info,
	MaxSize:      8,
	MaxFiles:     7,
}
