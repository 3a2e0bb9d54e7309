package main

import (
	"path/filepath"
	"reflect"
	"testing"

	"gitlab.com/pnathan/lexdat/src/lib/dat"
)

func TestSortByLine(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "already ordered",
			lines: []string{"a 1", "ab 2"},
			want:  []string{"a", "ab"},
		},
		{
			name:  "reversed",
			lines: []string{"abc 3", "ab 2", "a 1"},
			want:  []string{"a", "ab", "abc"},
		},
		{
			name:  "word containing a space",
			lines: []string{"New York 2", "cat 1"},
			want:  []string{"cat", "New York"},
		},
		{
			name:  "junk lines dropped",
			lines: []string{"", "no-number", "dog 1"},
			want:  []string{"dog"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sortByLine(tt.lines); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sortByLine() = %v, want %v", got, tt.want)
			}
		})
	}
}

// make -> dump -> sort through real files must hand back the input list.
func TestConvertAndSortPipeline(t *testing.T) {
	words := []string{"cat", "cattle", "dog", "中国", "a"}
	dir := t.TempDir()

	wordsFile := filepath.Join(dir, "words.txt")
	datFile := filepath.Join(dir, "words.dat")
	textFile := filepath.Join(dir, "words_text.txt")
	sortedFile := filepath.Join(dir, "words_sorted.txt")

	if err := writeLines(wordsFile, words); err != nil {
		t.Fatal(err)
	}
	runMake(wordsFile, datFile)
	runDump(datFile, textFile, true)
	runSort(textFile, sortedFile)

	got, err := readLines(sortedFile)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, words) {
		t.Errorf("round trip = %v, want %v", got, words)
	}
}

func TestDumpEntriesWithoutLineNumbers(t *testing.T) {
	d, err := dat.MakeFromLines([]string{"cat", "dog"})
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range dumpEntries(d, false) {
		if line != "cat" && line != "dog" {
			t.Errorf("unexpected dump line %q", line)
		}
	}
}
