// Package batch builds every program of a manifest and reports the outcome
// of each.
package batch

import (
	"fmt"
	"io"
	"time"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/internal/manifest"
)

// Result is the outcome of building one program.
type Result struct {
	Program  string
	Handle   uint32
	Err      error
	Duration time.Duration
}

// OK reports whether the program linked.
func (r Result) OK() bool { return r.Err == nil }

// Run builds the programs of m in order with ld. Linked programs are
// deleted again unless keep is set, in which case the caller owns them.
func Run(ld *glshader.Loader, m *manifest.Manifest, keep bool) []Result {
	results := make([]Result, 0, len(m.Programs))
	for i := range m.Programs {
		p := &m.Programs[i]
		start := time.Now()
		prog, err := ld.LoadInfo(m.Dir, p.Info())
		results = append(results, Result{
			Program:  p.Name,
			Handle:   prog,
			Err:      err,
			Duration: time.Since(start),
		})
		if prog != 0 && !keep {
			ld.Driver().DeleteProgram(prog)
		}
	}
	return results
}

// Report writes one line per result and returns the number of failures.
func Report(w io.Writer, results []Result) int {
	failed := 0
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(w, "ok    %s (%v)\n", r.Program, r.Duration.Round(time.Microsecond))
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL  %s: %v\n", r.Program, r.Err)
	}
	fmt.Fprintf(w, "%d programs, %d failed\n", len(results), failed)
	return failed
}
