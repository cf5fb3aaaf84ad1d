// Package dataset carrega planilhas enviadas ao dashboard e calcula os
// resumos exibidos: tipos por coluna, estatísticas, contagens, correlação
// e nulos.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, expected .csv or .xlsx")
	ErrEmptyFile         = errors.New("file has no header row")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrNotNumeric        = errors.New("column is not numeric")
)

// Table guarda as células como texto; a tipagem é inferida por coluna.
type Table struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Shape devolve (linhas, colunas).
func (t *Table) Shape() (int, int) {
	return len(t.Rows), len(t.Columns)
}

func (t *Table) ColumnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Column devolve as células de uma coluna na ordem das linhas.
func (t *Table) Column(name string) ([]string, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

func (t *Table) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// Load escolhe o leitor pela extensão do arquivo.
func Load(name string, r io.Reader) (*Table, error) {
	var (
		header []string
		rows   [][]string
		err    error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		header, rows, err = readCSV(r)
	case ".xlsx":
		header, rows, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, err
	}
	if len(header) == 0 {
		return nil, ErrEmptyFile
	}

	width := len(header)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for len(header) < width {
		header = append(header, "")
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}

	return &Table{
		Name:    filepath.Base(name),
		Columns: normalizeHeader(header),
		Rows:    rows,
	}, nil
}

func readCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv: %w", err)
		}
		if len(rec) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, nil, fmt.Errorf("csv line %d: expected %d fields, saw %d", line, len(header), len(rec))
		}
		rows = append(rows, rec)
	}
	return header, rows, nil
}

func readXLSX(r io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrEmptyFile
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, nil, ErrEmptyFile
	}
	return all[0], all[1:], nil
}

// normalizeHeader dá nome às colunas vazias e desambigua nomes repetidos.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for seen[name] > 0 {
			name = h + "." + strconv.Itoa(seen[h])
			seen[h]++
		}
		seen[name]++
		out[i] = name
	}
	return out
}
