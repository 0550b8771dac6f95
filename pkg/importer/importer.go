// Package importer turns uploaded CSV/XLSX spreadsheets into fields and
// tasks. Header matching is forgiving: names are normalized and looked
// up against a list of aliases, so "Due Date", "due_date" and
// "DUE-DATE" all map to the same column.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Parsed is the raw grid of an uploaded sheet: one header row plus data
// rows, all cells as strings.
type Parsed struct {
	FileName string
	Headers  []string
	Rows     [][]string
}

func Parse(name string, r io.Reader) (*Parsed, error) {
	if strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		return parseXLSX(name, r)
	}
	return parseCSV(name, r)
}

func parseCSV(name string, r io.Reader) (*Parsed, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate short rows; mapping guards index range
	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	p := &Parsed{FileName: name, Headers: head}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		p.Rows = append(p.Rows, rec)
	}
	return p, nil
}

func parseXLSX(name string, r io.Reader) (*Parsed, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("xlsx sheet is empty")
	}
	return &Parsed{FileName: name, Headers: rows[0], Rows: rows[1:]}, nil
}

// Mapping holds column indexes into a parsed sheet; -1 means the
// column is absent. Field, Title and Due are required.
type Mapping struct {
	Field      int
	Title      int
	Due        int
	Crop       int
	Stage      int
	Acres      int
	Irrigation int
	Notes      int
	Priority   int
	Category   int
	Window     int
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// DetectMapping matches sheet headers against known aliases.
func DetectMapping(headers []string) (*Mapping, error) {
	hmap := map[string]int{}
	for i, h := range headers {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	m := &Mapping{
		Field:      findAny("field", "field_name", "block", "plot"),
		Title:      findAny("task", "task_title", "title", "activity", "job"),
		Due:        findAny("due", "due_date", "date", "deadline"),
		Crop:       findAny("crop", "crop_type"),
		Stage:      findAny("stage", "growth_stage", "phase"),
		Acres:      findAny("acres", "acreage", "area"),
		Irrigation: findAny("irrigation", "irrigation_type"),
		Notes:      findAny("notes", "note", "remark", "comments"),
		Priority:   findAny("priority"),
		Category:   findAny("category", "type", "task_type"),
		Window:     findAny("window", "time_window", "time_of_day"),
	}
	if m.Field == -1 || m.Title == -1 || m.Due == -1 {
		return nil, fmt.Errorf("missing required columns, need field, task and due; found headers: %v", headers)
	}
	return m, nil
}

// cell reads a mapped column off a possibly short row.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
