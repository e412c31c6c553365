package langserver

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/sx/reader"
)

var diagnosticSource = "sx"

// diagnosticsFor reads every top-level expression in text and converts
// the first failure, if any, into a single diagnostic. Reader
// positions are 0-based, as LSP positions are, so no shifting happens
// here.
func diagnosticsFor(text string, path string) []protocol.Diagnostic {
	_, err := reader.NewString(text, reader.WithFile(path)).ReadAll()
	if err == nil {
		return []protocol.Diagnostic{}
	}

	severity := protocol.DiagnosticSeverityError

	var readErr *reader.ReadError
	if !errors.As(err, &readErr) {
		return []protocol.Diagnostic{{
			Range:    protocol.Range{},
			Severity: &severity,
			Source:   &diagnosticSource,
			Message:  err.Error(),
		}}
	}

	start := protocol.Position{
		Line:      protocol.UInteger(readErr.Loc.Line),
		Character: protocol.UInteger(readErr.Loc.Col),
	}
	end := protocol.Position{
		Line:      start.Line,
		Character: start.Character + 1,
	}

	return []protocol.Diagnostic{{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &diagnosticSource,
		Message:  readErr.Msg,
	}}
}
