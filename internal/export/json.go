package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Adda-Baaj/cielo/internal/payload"
)

const jsonIndent = "    "

// ToJSON pretty-prints v with a four space indent, keeping object key order.
func ToJSON(w io.Writer, v any) error {
	compact, err := payload.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", jsonIndent); err != nil {
		return fmt.Errorf("indent json: %w", err)
	}
	buf.WriteByte('\n')

	_, err = w.Write(buf.Bytes())
	return err
}
