package roverfactorytest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening results file: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parsing results file: %v", err)
	}
	return rows
}

func TestCSVResultSink(t *testing.T) {
	t.Run("header then one row per record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results.csv")
		sink, err := newCSVResultSink(path)
		if err != nil {
			t.Fatalf("newCSVResultSink failed: %v", err)
		}

		rec := newUnitRecord(0)
		rec.Serial = "SN-1"
		rec.Hardware, rec.Firmware, rec.Software = "1.0", "1.2", "1.1"
		rec.Verified[devVersionInfo] = true
		rec.Measured[devMotorL] = 11
		if err := sink.Append(rec); err != nil {
			t.Fatalf("Append failed: %v", err)
		}

		rec2 := newUnitRecord(1)
		rec2.Serial = "SN-2"
		if err := sink.Append(rec2); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if err := sink.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		rows := readRows(t, path)
		if len(rows) != 3 {
			t.Fatalf("rows = %d, want header + 2", len(rows))
		}
		if rows[0][0] != "seq" || rows[0][1] != "serial" {
			t.Errorf("unexpected header start: %v", rows[0][:2])
		}
		if len(rows[1]) != len(rows[0]) {
			t.Errorf("row width %d != header width %d", len(rows[1]), len(rows[0]))
		}
		if rows[1][1] != "SN-1" || rows[2][1] != "SN-2" {
			t.Errorf("serials = %q, %q", rows[1][1], rows[2][1])
		}
	})

	t.Run("reopening appends without rewriting", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results.csv")

		sink, err := newCSVResultSink(path)
		if err != nil {
			t.Fatalf("newCSVResultSink failed: %v", err)
		}
		rec := newUnitRecord(0)
		rec.Serial = "SN-1"
		if err := sink.Append(rec); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		sink.Close()

		sink, err = newCSVResultSink(path)
		if err != nil {
			t.Fatalf("reopening sink failed: %v", err)
		}
		rec2 := newUnitRecord(1)
		rec2.Serial = "SN-2"
		if err := sink.Append(rec2); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		sink.Close()

		rows := readRows(t, path)
		if len(rows) != 3 {
			t.Fatalf("rows = %d, want a single header + 2", len(rows))
		}
		if rows[1][1] != "SN-1" || rows[2][1] != "SN-2" {
			t.Errorf("prior rows must survive a reopen: %q, %q", rows[1][1], rows[2][1])
		}
	})

	t.Run("every device appears in the header", func(t *testing.T) {
		header := resultHeader()
		for d := device(0); d < numDevices; d++ {
			found := false
			for _, col := range header {
				if col == d.String()+"_ok" {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("header missing %s_ok", d)
			}
		}
	})
}
