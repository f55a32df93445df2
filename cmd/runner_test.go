package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/soundctl/mak/internal/shared"
	th "github.com/soundctl/mak/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			reader := &th.MockReader{}
			writer := th.NewMockWriter()

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
				Reader: reader,
				Writer: writer,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.reader != reader {
				t.Error("expected reader to be set")
			}
			if runner.engine == nil {
				t.Error("expected engine to be built")
			}
		})

		t.Run("with defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config")
			}
			if runner.logger == nil {
				t.Error("expected default logger")
			}
			if runner.reader == nil || runner.writer == nil {
				t.Error("expected default tag accessors")
			}
			if runner.db != nil {
				t.Error("expected no database by default")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := map[string]bool{}
		for _, cmd := range commands {
			names[cmd.Name] = true
		}

		for _, want := range []string{"library", "track", "album", "setup", "cache", "tui"} {
			if !names[want] {
				t.Errorf("expected %s command to be registered", want)
			}
		}
	})

	t.Run("scanner", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})

		if runner.scanner() == nil {
			t.Error("expected a scanner without a database")
		}
		if runner.uncachedScanner() == nil {
			t.Error("expected an uncached scanner")
		}
	})
}

func TestWriteJSON(t *testing.T) {
	t.Run("pretty", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		data := map[string]string{"title": "Compute"}
		if err := runner.writeJSON(data, true); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}

		got := output.String()
		if !strings.Contains(got, "\"title\": \"Compute\"") {
			t.Errorf("expected indented JSON, got %q", got)
		}
		if !strings.HasSuffix(got, "\n") {
			t.Error("expected trailing newline")
		}
	})

	t.Run("compact", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]int{"n": 1}, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if got := output.String(); got != "{\"n\":1}\n" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("unmarshalable", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

		if err := runner.writeJSON(make(chan int), false); err == nil {
			t.Error("expected marshal error")
		}
	})

	t.Run("write failure", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &th.FWriter{}})

		if err := runner.writeJSON("x", false); err == nil {
			t.Error("expected write error")
		}
	})
}

func TestWritePlain(t *testing.T) {
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{Output: output})

	if err := runner.writePlain("%s - %s\n", "Pat Metheny", "Compute"); err != nil {
		t.Fatalf("writePlain failed: %v", err)
	}
	if got := output.String(); got != "Pat Metheny - Compute\n" {
		t.Errorf("unexpected output %q", got)
	}

	output.Reset()
	if err := runner.writePlainln("✓ Done: %d", 3); err != nil {
		t.Fatalf("writePlainln failed: %v", err)
	}
	if got := output.String(); got != "\n✓ Done: 3\n" {
		t.Errorf("unexpected output %q", got)
	}

	if err := runner.writePlain("x"); err != nil {
		t.Fatalf("writePlain failed: %v", err)
	}
}
