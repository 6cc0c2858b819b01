package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Adda-Baaj/cielo/internal/payload"
)

// ErrUnsupportedShape is returned when a payload cannot be laid out as rows.
var ErrUnsupportedShape = errors.New("csv export needs an object or an array of objects")

// ToCSV writes one header row taken from the first object's keys, then one row
// per object. Rows are aligned to the header by key: missing keys become empty
// cells and keys outside the header are dropped.
func ToCSV(w io.Writer, v any) error {
	records, err := csvRecords(v)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	header := records[0].Keys()
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(header))
	for i, rec := range records {
		for col, key := range header {
			val, _ := rec.Get(key)
			cell, err := csvCell(val)
			if err != nil {
				return fmt.Errorf("record %d column %q: %w", i, key, err)
			}
			row[col] = cell
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// csvRecords wraps a lone object into a one element sequence.
func csvRecords(v any) ([]payload.Object, error) {
	switch t := v.(type) {
	case payload.Object:
		return []payload.Object{t}, nil
	case payload.Array:
		out := make([]payload.Object, 0, len(t))
		for i, elem := range t {
			obj, ok := elem.(payload.Object)
			if !ok {
				return nil, fmt.Errorf("element %d is %s: %w", i, kindOf(elem), ErrUnsupportedShape)
			}
			out = append(out, obj)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("payload is %s: %w", kindOf(v), ErrUnsupportedShape)
	}
}

func csvCell(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		b, err := payload.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case payload.Object:
		return "object"
	case payload.Array:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return "number"
	}
}
