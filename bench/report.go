package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CSVHeader is the first record WriteCSV emits.
var CSVHeader = []string{"Run", "Time (μs)", "Memory (KiB)", "Result"}

// WriteCSV writes one record per run: run number, time in microseconds, peak
// memory in KiB and "success" or "fail".
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range results {
		status := "fail"
		if r.Success() {
			status = "success"
		}
		rec := []string{
			strconv.Itoa(r.Run),
			strconv.FormatInt(r.Elapsed.Microseconds(), 10),
			strconv.FormatUint(r.PeakBytes/1024, 10),
			status,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}

// WriteSummary writes a human-readable summary of a benchmark. Measurements
// are formatted for English, with digit grouping.
func WriteSummary(w io.Writer, cfg Config, st Stats) error {
	p := message.NewPrinter(language.English)
	lines := []string{
		p.Sprintf("Algorithm: %s", cfg.Algorithm),
		p.Sprintf("Code Type: %s", cfg.Code),
		fmt.Sprintf("Parameters: n=%d, k=%d, w=%d", cfg.N, cfg.K, cfg.W),
		p.Sprintf("Runs Completed: %d/%d", st.Completed, cfg.Runs),
		p.Sprintf("Median Time: %.2f μs (95%% CI: %.2f - %.2f)",
			micros(st.MedianTime), micros(st.TimeLower), micros(st.TimeUpper)),
		p.Sprintf("Median Memory: %.2f KiB (95%% CI: %.2f - %.2f)",
			st.MedianMemory, st.MemoryLower, st.MemoryUpper),
		p.Sprintf("Success Rate: %.2f%% (%d of %d runs)", st.SuccessRate, st.Successful, st.Completed),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// Save writes dir/csv/<cfg>.csv and dir/txt/<cfg>.txt and returns their
// paths.
func Save(dir string, cfg Config, results []Result, st Stats) (csvPath, txtPath string, err error) {
	csvPath = filepath.Join(dir, "csv", cfg.String()+".csv")
	txtPath = filepath.Join(dir, "txt", cfg.String()+".txt")
	if err := writeFile(csvPath, func(w io.Writer) error { return WriteCSV(w, results) }); err != nil {
		return "", "", err
	}
	if err := writeFile(txtPath, func(w io.Writer) error { return WriteSummary(w, cfg, st) }); err != nil {
		return "", "", err
	}
	return csvPath, txtPath, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("bench: writing %s: %w", path, err)
	}
	return f.Close()
}
