// Copyright (c) 2026 The miniconf-go Authors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package miniconf

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Severity classifies a diagnostic record.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError

	// SeverityNone is only meaningful as a threshold: it suppresses
	// every record and disables abort-on-error entirely.
	SeverityNone
)

// String implements the fmt.Stringer interface.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "NONE"
	}
}

// Record is a single diagnostic emitted during resolution.
type Record struct {
	Severity Severity
	Token    string
	Message  string
}

// diagnosticLog is an append-only record list filtered at emission time
// by a minimum severity. The worst severity is tracked across all
// reports, stored or not, because it decides overall success.
type diagnosticLog struct {
	min     Severity
	worst   Severity
	records []Record
	logger  *zap.Logger
}

func newDiagnosticLog() *diagnosticLog {
	return &diagnosticLog{
		min:    SeverityInfo,
		logger: zap.NewNop(),
	}
}

func (l *diagnosticLog) reset() {
	l.records = nil
	l.worst = SeverityInfo
}

func (l *diagnosticLog) report(sev Severity, token, msg string) {
	if sev > l.worst {
		l.worst = sev
	}
	if sev < l.min {
		return
	}
	l.records = append(l.records, Record{Severity: sev, Token: token, Message: msg})

	switch sev {
	case SeverityInfo:
		l.logger.Info(msg, zap.String("token", token))
	case SeverityWarning:
		l.logger.Warn(msg, zap.String("token", token))
	case SeverityError:
		l.logger.Error(msg, zap.String("token", token))
	}
}

// failed reports whether the worst observed severity should abort
// resolution. A SeverityNone threshold never aborts.
func (l *diagnosticLog) failed() bool {
	return l.min != SeverityNone && l.worst >= SeverityError
}

func (l *diagnosticLog) errors() []Record {
	var out []Record
	for _, r := range l.records {
		if r.Severity >= SeverityError {
			out = append(out, r)
		}
	}
	return out
}

func (l *diagnosticLog) write(w io.Writer) {
	for _, r := range l.records {
		fmt.Fprintf(w, "[%s] %s: %s\n", r.Severity, r.Token, r.Message)
	}
}
