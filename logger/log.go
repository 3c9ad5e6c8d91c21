/*
 * This code is based on roseduan's original work, which is
 * licensed under the Apache License, Version 2.0. The original code can be
 * found at https://github.com/flower-corp/lotusdb/blob/main/logger/log.go.
 *
 * Copyright 2022 roseduan
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
 * Portions of this code are licensed under the MIT License.
 * A copy of the License can be obtained at https://opensource.org/licenses/MIT
 */

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
)

// LogLevel is the minimum severity a Logger writes.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelNone
)

// colour escape per level, used when highlighting is on.
var levelStyle = map[LogLevel]struct {
	name  string
	color string
}{
	LevelDebug: {"debug", "[0;36"},
	LevelInfo:  {"info", "[0;37"},
	LevelWarn:  {"warning", "[0;33"},
	LevelError: {"error", "[0;31"},
	LevelFatal: {"fatal", "[0;31"},
}

var _log = New(os.Stderr)

func init() {
	_log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	_log.SetHighlighting(runtime.GOOS != "windows")
}

// Logger writes leveled lines through a standard library log.Logger.
type Logger struct {
	mu           sync.RWMutex
	out          *log.Logger
	level        LogLevel
	highlighting bool
	exit         func(code int)
}

// New creates a Logger writing to w. The level comes from LOG_LEVEL
// and defaults to info.
func New(w io.Writer) *Logger {
	level := LevelInfo
	if l := os.Getenv("LOG_LEVEL"); l != "" {
		level = ParseLevel(l)
	}
	return &Logger{out: log.New(w, "", log.LstdFlags), level: level, exit: os.Exit}
}

// Default returns the process wide logger.
func Default() *Logger {
	return _log
}

// ParseLevel maps a level name to a LogLevel. Unknown names enable everything.
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "fatal":
		return LevelFatal
	case "error":
		return LevelError
	case "warn", "warning":
		return LevelWarn
	case "info":
		return LevelInfo
	case "none", "off":
		return LevelNone
	}
	return LevelDebug
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *Logger) Level() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) SetHighlighting(highlighting bool) {
	l.mu.Lock()
	l.highlighting = highlighting
	l.mu.Unlock()
}

func (l *Logger) SetFlags(flags int) {
	l.out.SetFlags(flags)
}

func (l *Logger) SetOutput(w io.Writer) {
	l.out.SetOutput(w)
}

func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	l.mu.RLock()
	threshold, highlighting := l.level, l.highlighting
	l.mu.RUnlock()
	if level < threshold {
		return
	}

	style := levelStyle[level]
	msg := fmt.Sprintf(format, v...)
	var s string
	if highlighting {
		s = "\033" + style.color + "m[" + style.name + "] " + msg + "\033[0m"
	} else {
		s = "[" + style.name + "] " + msg
	}
	// skip logf, the Logger method and the package helper.
	_ = l.out.Output(4, s)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.logf(LevelInfo, format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.logf(LevelWarn, format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

func (l *Logger) Debug(v ...interface{}) { l.logf(LevelDebug, "%s", fmt.Sprint(v...)) }
func (l *Logger) Info(v ...interface{})  { l.logf(LevelInfo, "%s", fmt.Sprint(v...)) }
func (l *Logger) Warn(v ...interface{})  { l.logf(LevelWarn, "%s", fmt.Sprint(v...)) }
func (l *Logger) Error(v ...interface{}) { l.logf(LevelError, "%s", fmt.Sprint(v...)) }

// Fatalf logs and exits the process with status 1.
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.logf(LevelFatal, format, v...)
	l.exit(1)
}

func SetLevel(level LogLevel) {
	_log.SetLevel(level)
}

func SetLevelByString(level string) {
	_log.SetLevel(ParseLevel(level))
}

func SetHighlighting(highlighting bool) {
	_log.SetHighlighting(highlighting)
}

func Debugf(format string, v ...interface{}) { _log.Debugf(format, v...) }
func Infof(format string, v ...interface{})  { _log.Infof(format, v...) }
func Warnf(format string, v ...interface{})  { _log.Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { _log.Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { _log.Fatalf(format, v...) }

func Debug(v ...interface{}) { _log.Debug(v...) }
func Info(v ...interface{})  { _log.Info(v...) }
func Warn(v ...interface{})  { _log.Warn(v...) }
func Error(v ...interface{}) { _log.Error(v...) }
