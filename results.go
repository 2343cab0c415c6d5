package roverfactorytest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// csvResultSink appends one row per finalized unit to a CSV file. The file is
// opened in append mode so prior rows are never rewritten; the header is only
// written when the file starts empty.
type csvResultSink struct {
	mu   sync.Mutex
	file *os.File
	w    *csv.Writer
}

func newCSVResultSink(path string) (*csvResultSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening results file %s: %w", path, err)
	}

	s := &csvResultSink{file: f, w: csv.NewWriter(f)}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat results file %s: %w", path, err)
	}
	if info.Size() == 0 {
		if err := s.w.Write(resultHeader()); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing results header: %w", err)
		}
		s.w.Flush()
		if err := s.w.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing results header: %w", err)
		}
	}
	return s, nil
}

func resultHeader() []string {
	header := []string{"seq", "serial", "hardware", "firmware", "software"}
	for d := device(0); d < numDevices; d++ {
		header = append(header, d.String()+"_ok", d.String()+"_value")
	}
	header = append(header, "health", "all_ok", "diagnostics")
	return header
}

func resultRow(rec *UnitRecord) []string {
	row := []string{
		strconv.Itoa(rec.Seq),
		rec.Serial,
		rec.Hardware,
		rec.Firmware,
		rec.Software,
	}
	for d := device(0); d < numDevices; d++ {
		row = append(row,
			strconv.FormatBool(rec.Verified[d]),
			strconv.FormatInt(rec.Measured[d], 10))
	}
	row = append(row, rec.Health.String(), strconv.FormatBool(rec.AllOK()), rec.Diagnostics)
	return row
}

func (s *csvResultSink) Append(rec *UnitRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Write(resultRow(rec)); err != nil {
		return fmt.Errorf("appending result row for %s: %w", rec.Serial, err)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("flushing result row for %s: %w", rec.Serial, err)
	}
	return nil
}

func (s *csvResultSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w.Flush()
	return s.file.Close()
}
