package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sandokanCat/open-utils/internal/cracker"
	"github.com/sandokanCat/open-utils/internal/hashes"
)

const md5Password = "5f4dcc3b5aa765d61d8327deb882cf99"

func foundOutcome() cracker.Outcome {
	return cracker.Outcome{
		Found:     true,
		Hash:      md5Password,
		Secret:    "password",
		Algorithm: hashes.MD5,
		Digest:    md5Password,
	}
}

func TestReportAppendsRecords(t *testing.T) {
	save := filepath.Join(t.TempDir(), "results.txt")
	r := &Reporter{Save: save, Quiet: true, Logger: zerolog.Nop()}
	r.Report(foundOutcome(), time.Second)
	r.Report(foundOutcome(), 2*time.Second)

	b, err := os.ReadFile(save)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 records, got %d: %q", len(lines), lines)
	}
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[MD5\] password → ` + md5Password + `$`)
	for _, line := range lines {
		if !re.MatchString(line) {
			t.Fatalf("bad record: %q", line)
		}
	}
}

func TestReportJSONFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	r := &Reporter{JSON: path, Quiet: true, Logger: zerolog.Nop()}
	r.Report(foundOutcome(), 1234*time.Millisecond)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "\n    \"") {
		t.Error("expected 4-space indentation")
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"found":           true,
		"hash":            md5Password,
		"algorithm":       "md5",
		"password":        "password",
		"generated":       md5Password,
		"elapsed_seconds": 1.23,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("JSON = %v, want %v", got, want)
	}
}

func TestReportJSONNotFoundOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	r := &Reporter{JSON: path, Quiet: true, Logger: zerolog.Nop()}
	r.Report(foundOutcome(), time.Second)
	r.Report(cracker.Outcome{Found: false, Hash: "deadbeef"}, 2*time.Second)

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"found":           false,
		"hash":            "deadbeef",
		"reason":          "No match found",
		"elapsed_seconds": 2.0,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("JSON = %v, want %v", got, want)
	}
}
