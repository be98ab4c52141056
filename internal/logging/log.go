//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package logging wires up the engine's leveled loggers. Two named
// loggers exist: "engine" for general diagnostics and "search" for the
// high-volume per-iteration search trace, each independently levelled
// from internal/config so a caller can silence search noise without
// losing engine warnings.
package logging

import (
	"fmt"
	"os"

	logging "github.com/op/go-logging"

	"github.com/frankkopp/fairyengine/internal/config"
	"github.com/frankkopp/fairyengine/internal/util"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}: %{message}`,
)

var backendLeveled *logging.LeveledBackend

func init() {
	stdoutBackend := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stdout, "", 0), format)
	backends := []logging.Backend{stdoutBackend}

	if dir, err := util.ResolveCreateFolder("./logs"); err == nil {
		if f, err := os.OpenFile(fmt.Sprintf("%s/engine.log", dir),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			fileBackend := logging.NewBackendFormatter(
				logging.NewLogBackend(f, "", 0), format)
			backends = append(backends, fileBackend)
		}
	}

	multi := logging.MultiLogger(backends...)
	leveled := logging.AddModuleLevel(multi)
	leveled.SetLevel(logging.DEBUG, "")
	logging.SetBackend(leveled)
	backendLeveled = leveled
}

// GetLog returns the named logger, levelled per config.LogLevel.
func GetLog(name string) *logging.Logger {
	backendLeveled.SetLevel(logging.Level(config.LogLevel), name)
	return logging.MustGetLogger(name)
}

// GetSearchLog returns the "search" logger, levelled per
// config.SearchLogLevel.
func GetSearchLog() *logging.Logger {
	backendLeveled.SetLevel(logging.Level(config.SearchLogLevel), "search")
	return logging.MustGetLogger("search")
}

// GetTestLog returns a logger levelled per config.TestLogLevel, used by
// test files that want diagnostic output without wiring a fixture
// logger of their own.
func GetTestLog() *logging.Logger {
	backendLeveled.SetLevel(logging.Level(config.TestLogLevel), "test")
	return logging.MustGetLogger("test")
}
