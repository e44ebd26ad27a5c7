// Package sheet writes customer batches to .xlsx workbooks and reads them
// back.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"github.com/zarlcorp/zsample/internal/customer"
)

// SheetName is the single worksheet holding the batch.
const SheetName = "customers"

// DefaultFile is the output name used when none is given.
const DefaultFile = "sample_customers_100.xlsx"

const colWidth = 22

// ErrHeaderMismatch is returned when a workbook's first row is not Columns.
var ErrHeaderMismatch = errors.New("header does not match customer columns")

// Meta describes a batch; it is stored in the workbook's document properties.
type Meta struct {
	BatchID string
	Seed    uint64
	Created time.Time
}

// NewMeta stamps a fresh batch id and the creation time.
func NewMeta(seed uint64, created time.Time) Meta {
	return Meta{
		BatchID: uuid.NewString(),
		Seed:    seed,
		Created: created,
	}
}

// WriteFile writes records to path, replacing any existing file.
func WriteFile(path string, records []customer.Record, meta Meta) error {
	f, err := build(records, meta)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Write encodes records as an xlsx workbook to w.
func Write(w io.Writer, records []customer.Record, meta Meta) error {
	f, err := build(records, meta)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func build(records []customer.Record, meta Meta) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	if err := writeHeader(f); err != nil {
		f.Close()
		return nil, err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		row := cellValues(r)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if err := f.SetDocProps(docProps(meta)); err != nil {
		f.Close()
		return nil, fmt.Errorf("set properties: %w", err)
	}

	return f, nil
}

func writeHeader(f *excelize.File) error {
	header := make([]any, len(customer.Columns))
	for i, c := range customer.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	last, err := excelize.ColumnNumberToName(len(customer.Columns))
	if err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", last, colWidth); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	return f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// cellValues leaves empty optional fields as blank cells. Strings stay text
// cells so phone numbers keep every digit.
func cellValues(r customer.Record) []any {
	vals := r.Row()
	out := make([]any, len(vals))
	for i, v := range vals {
		if v != "" {
			out[i] = v
		}
	}
	return out
}

// docProps keeps the creation offset so consent dates can be rechecked in
// the zone they were generated in.
func docProps(meta Meta) *excelize.DocProperties {
	return &excelize.DocProperties{
		Title:       "sample customers",
		Subject:     "bulk upload test data",
		Creator:     "zsample",
		Identifier:  meta.BatchID,
		Description: "seed " + strconv.FormatUint(meta.Seed, 10),
		Created:     meta.Created.Format(time.RFC3339),
	}
}

// ReadFile reads a workbook written by WriteFile.
func ReadFile(path string) ([]customer.Record, Meta, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}

// Read decodes a workbook from r.
func Read(r io.Reader) ([]customer.Record, Meta, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return read(f)
}

func read(f *excelize.File) ([]customer.Record, Meta, error) {
	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("read %s: %w", SheetName, err)
	}
	if len(rows) == 0 || !slices.Equal(rows[0], customer.Columns) {
		return nil, Meta{}, ErrHeaderMismatch
	}

	records := make([]customer.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, customer.FromRow(row))
	}

	meta, err := readMeta(f)
	if err != nil {
		return nil, Meta{}, err
	}
	return records, meta, nil
}

// readMeta recovers batch metadata. Workbooks not written by zsample may
// lack it; missing fields stay zero.
func readMeta(f *excelize.File) (Meta, error) {
	props, err := f.GetDocProps()
	if err != nil {
		return Meta{}, fmt.Errorf("read properties: %w", err)
	}

	meta := Meta{BatchID: props.Identifier}
	if s, ok := strings.CutPrefix(props.Description, "seed "); ok {
		if seed, err := strconv.ParseUint(s, 10, 64); err == nil {
			meta.Seed = seed
		}
	}
	if t, err := time.Parse(time.RFC3339, props.Created); err == nil {
		meta.Created = t
	}
	return meta, nil
}
