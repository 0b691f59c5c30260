// SPDX-License-Identifier: MPL-2.0

package suite

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Actions emitted by `go test -json` (see `go doc test2json`).
const (
	ActionStart       = "start"
	ActionRun         = "run"
	ActionPause       = "pause"
	ActionCont        = "cont"
	ActionPass        = "pass"
	ActionFail        = "fail"
	ActionSkip        = "skip"
	ActionOutput      = "output"
	ActionBench       = "bench"
	ActionBuildOutput = "build-output"
	ActionBuildFail   = "build-fail"
)

// Event is one test2json record.
type Event struct {
	Time    time.Time `json:",omitempty"`
	Action  string
	Package string  `json:",omitempty"`
	Test    string  `json:",omitempty"`
	Elapsed float64 `json:",omitempty"`
	Output  string  `json:",omitempty"`
	// ImportPath is set on build-output and build-fail events.
	ImportPath string `json:",omitempty"`
	// FailedBuild names the package whose build failed, on a package-level fail.
	FailedBuild string `json:",omitempty"`
}

// DecodeEvents reads newline-delimited test2json records from r and passes each one
// to emit in order. Lines that are not JSON are copied to raw unchanged.
func DecodeEvents(r io.Reader, emit func(Event), raw io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			if raw != nil {
				fmt.Fprintf(raw, "%s\n", line)
			}
			continue
		}
		emit(ev)
	}
	return sc.Err()
}
