package reports

import (
	"encoding/json"
	"io"

	"github.com/moneytech/wrenalyzer/wren"
)

// JSONReporter writes one JSON object per token, newline delimited.
type JSONReporter struct {
	enc *json.Encoder
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{
		enc: json.NewEncoder(w),
	}
}

var _ Reporter = new(JSONReporter)

type tokenRecord struct {
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Start  int    `json:"start"`
	Length int    `json:"length"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

func (r *JSONReporter) Report(file *wren.SourceFile, tokens []wren.Token) error {
	for _, token := range tokens {
		if err := r.enc.Encode(tokenRecord{
			Path:   file.Path,
			Kind:   token.Kind.String(),
			Start:  token.Start,
			Length: token.Length,
			Line:   token.Line(),
			Column: token.Column(),
			Text:   token.Text(),
		}); err != nil {
			return err
		}
	}
	return nil
}
