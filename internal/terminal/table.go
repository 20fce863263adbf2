package terminal

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/iancoleman/orderedmap"
)

const (
	logFieldHeaders = "headers"
	logFieldData    = "data"
)

// set of exported spacing options
const (
	Indent = "  "
	Gutter = "  "
)

// MaxCellWidth is the widest a cell prints in text output,
// longer values are cut short
const MaxCellWidth = 48

const ellipsis = "..."

var (
	tableFields = []string{logFieldMessage, logFieldData, logFieldHeaders}

	errTableNoHeaders = errors.New("cannot create a table without headers")
)

type column struct {
	header string
	width  int
}

// table keeps the full cell values for the JSON payload
// and prints the shortened ones
type table struct {
	message string
	columns []column
	rows    [][]string
}

func newTable(message string, headers []string, data []map[string]interface{}) table {
	if len(headers) == 0 {
		return table{}
	}

	t := table{
		message: message,
		columns: make([]column, len(headers)),
		rows:    make([][]string, 0, len(data)),
	}
	for i, header := range headers {
		t.columns[i] = column{header, utf8.RuneCountInString(header)}
	}

	for _, row := range data {
		if len(row) == 0 {
			continue
		}
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			cells[i] = parseValue(row[col.header])
			if width := utf8.RuneCountInString(shorten(cells[i])); width > t.columns[i].width {
				t.columns[i].width = width
			}
		}
		t.rows = append(t.rows, cells)
	}
	return t
}

func (t table) Message() (string, error) {
	if len(t.columns) == 0 {
		return "", errTableNoHeaders
	}

	lines := make([]string, 0, len(t.rows)+3)
	lines = append(lines, t.message)

	bold := color.New(color.Bold).SprintFunc()
	headers := make([]string, len(t.columns))
	dashes := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = bold(col.header) + padding(col.header, col.width)
		dashes[i] = strings.Repeat("-", col.width)
	}
	lines = append(lines, Indent+strings.Join(headers, Gutter), Indent+strings.Join(dashes, Gutter))

	rows := make([]string, len(t.rows))
	for i, row := range t.rows {
		cells := make([]string, len(t.columns))
		for j, col := range t.columns {
			value := shorten(row[j])
			cells[j] = value + padding(value, col.width)
		}
		rows[i] = Indent + strings.Join(cells, Gutter)
	}
	lines = append(lines, strings.Join(rows, "\n"))

	return strings.Join(lines, "\n"), nil
}

func (t table) Payload() ([]string, map[string]interface{}, error) {
	if len(t.columns) == 0 {
		return nil, nil, errTableNoHeaders
	}

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.header
	}

	data := make([]*orderedmap.OrderedMap, len(t.rows))
	for i, row := range t.rows {
		data[i] = orderedmap.New()
		for j, header := range headers {
			data[i].Set(header, row[j])
		}
	}

	return tableFields, map[string]interface{}{
		logFieldMessage: t.message,
		logFieldHeaders: headers,
		logFieldData:    data,
	}, nil
}

// shorten flattens the value onto one line and cuts it to MaxCellWidth
func shorten(value string) string {
	value = strings.Join(strings.Fields(value), " ")

	runes := []rune(value)
	if len(runes) <= MaxCellWidth {
		return value
	}
	return string(runes[:MaxCellWidth-len(ellipsis)]) + ellipsis
}

func padding(value string, width int) string {
	n := width - utf8.RuneCountInString(value)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func parseValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%+v", v)
	}
}
