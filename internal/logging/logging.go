// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
)

// Setup routes the standard logger. With an empty path logging is discarded.
// With a path, the standard logger appends to that file through bubbletea's
// LogToFile.
func Setup(path string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "dialogkit")
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, err
	}

	return func() {
		f.Close()
		log.SetOutput(io.Discard)
		log.SetPrefix("")
	}, nil
}

// Logger returns a logger for one component that writes wherever the
// standard logger currently writes.
func Logger(component string) *log.Logger {
	return log.New(log.Writer(), component+": ", log.LstdFlags|log.Lmsgprefix)
}
