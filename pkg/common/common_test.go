package common_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/andrew-torda/pairdist/pkg/common"
)

func TestWrtTemp(t *testing.T) {
	fname, err := WrtTemp("hello\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if b, err := os.ReadFile(fname); err != nil || string(b) != "hello\n" {
		t.Error("temp file got", string(b), err)
	}
}

func TestLogWhere(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "log")
	for i := 0; i < 2; i++ {
		lg, closer, err := LogWhere(fname)
		if err != nil {
			t.Fatal(err)
		}
		lg.Println("line")
		if err := closer.Close(); err != nil {
			t.Fatal(err)
		}
	}
	b, _ := os.ReadFile(fname)
	if n := strings.Count(string(b), "line\n"); n != 2 {
		t.Errorf("log should be appended to, got %d lines", n)
	}
	for _, where := range []string{"", "stdout"} {
		lg, closer, err := LogWhere(where)
		if err != nil {
			t.Fatal(err)
		}
		if where == "" {
			lg.Println("thrown away")
		}
		if err := closer.Close(); err != nil {
			t.Error(err)
		}
	}
	if _, err := os.Stdout.Stat(); err != nil {
		t.Error("closing the stdout logger closed stdout")
	}
	if _, _, err := LogWhere(filepath.Join(t.TempDir(), "no", "such", "dir")); err == nil {
		t.Error("bad log file should fail")
	}
}

func TestOutFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.csv")
	fp, err := OutFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	fp.Write([]byte("x\n"))
	if err := fp.Close(); err != nil {
		t.Fatal(err)
	}
	if b, _ := os.ReadFile(fname); string(b) != "x\n" {
		t.Error("got", string(b))
	}
	stdout, err := OutFile("-")
	if err != nil {
		t.Fatal(err)
	}
	if err := stdout.Close(); err != nil {
		t.Error("closing stdout wrapper", err)
	}
	if _, err := os.Stdout.Stat(); err != nil {
		t.Error("stdout was closed")
	}
	if _, err := OutFile(filepath.Join(t.TempDir(), "no", "such")); err == nil {
		t.Error("bad name should fail")
	}
}
