// datwords builds, dumps, sorts, and verifies double-array dictionary
// files. `dump` walks a dat file back out to "word line" text; `sort`
// orders that text by line number and strips the numbers, which must
// reproduce the word list the dat was made from.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"gitlab.com/pnathan/lexdat/src/lib/dat"
	"gitlab.com/pnathan/lexdat/src/lib/log"
)

// linePattern splits a dumped line into word and line number. The word
// group is greedy, so words containing spaces survive the round trip.
var linePattern = regexp.MustCompile(`^(.*)\s(\d+)$`)

func Moan(complaint error) {
	log.Fatal("", zap.Error(complaint))
	os.Exit(1)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// dumpEntries renders the traversal, one word per line, line numbers
// appended when ln is set.
func dumpEntries(d *dat.Dat, ln bool) []string {
	lines := []string{}
	d.Walk(func(word string, line int32) bool {
		if ln {
			lines = append(lines, fmt.Sprintf("%s %d", word, line))
		} else {
			lines = append(lines, word)
		}
		return true
	})
	return lines
}

// sortByLine orders dumped "word line" text by line number and strips
// the numbers. Lines not matching the pattern are dropped with a warning.
func sortByLine(lines []string) []string {
	type pair struct {
		line int
		word string
	}
	pairs := []pair{}
	for _, l := range lines {
		m := linePattern.FindStringSubmatch(l)
		if m == nil {
			log.Warn("unparsable dump line", zap.String("line", l))
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			log.Warn("unparsable line number", zap.String("line", l))
			continue
		}
		pairs = append(pairs, pair{line: n, word: m[1]})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].line < pairs[j].line })

	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.word
	}
	return words
}

func runMake(input, output string) {
	words, err := readLines(input)
	if err != nil {
		Moan(err)
	}
	d, err := dat.MakeFromLines(words)
	if err != nil {
		Moan(err)
	}
	if err := d.SaveFile(output); err != nil {
		Moan(err)
	}
	log.Info("made dictionary",
		zap.String("output", output),
		zap.Int("words", len(words)),
		zap.Int("slots", d.Size()))
}

func runDump(input, output string, ln bool) {
	d, err := dat.LoadFile(input)
	if err != nil {
		Moan(err)
	}
	lines := dumpEntries(d, ln)
	if err := writeLines(output, lines); err != nil {
		Moan(err)
	}
	log.Info("dumped dictionary", zap.String("output", output), zap.Int("words", len(lines)))
}

func runSort(input, output string) {
	lines, err := readLines(input)
	if err != nil {
		Moan(err)
	}
	if err := writeLines(output, sortByLine(lines)); err != nil {
		Moan(err)
	}
}

// runVerify is the round-trip oracle: dump+sort in memory must equal
// the original word list.
func runVerify(wordsFile, datFile string) {
	words, err := readLines(wordsFile)
	if err != nil {
		Moan(err)
	}
	d, err := dat.LoadFile(datFile)
	if err != nil {
		Moan(err)
	}
	if err := d.Validate(); err != nil {
		Moan(err)
	}

	got := sortByLine(dumpEntries(d, true))
	if len(got) != len(words) {
		Moan(fmt.Errorf("word count mismatch: dat has %d, list has %d", len(got), len(words)))
	}
	for i := range words {
		if got[i] != words[i] {
			Moan(fmt.Errorf("mismatch at line %d: dat has %q, list has %q", i+1, got[i], words[i]))
		}
	}
	fmt.Printf("ok: %d words\n", len(words))
}

func runFingerprint(input string) {
	d, err := dat.LoadFile(input)
	if err != nil {
		Moan(err)
	}
	fmt.Printf("%d slots %s\n", d.Size(), hex.EncodeToString(d.Fingerprint()))
}

func main() {
	parser := argparse.NewParser("datwords", "double-array dictionary tool")

	makeCmd := parser.NewCommand("make", "build a dat file from a word list")
	makeIn := makeCmd.String("i", "input", &argparse.Options{Required: true, Help: "word list, one word per line"})
	makeOut := makeCmd.String("o", "output", &argparse.Options{Required: true, Help: "dat file to write"})

	dumpCmd := parser.NewCommand("dump", "convert a dat file back to words")
	dumpIn := dumpCmd.String("i", "input", &argparse.Options{Required: true, Help: "dat file to read"})
	dumpOut := dumpCmd.String("o", "output", &argparse.Options{Required: true, Help: "text file to write"})
	dumpLn := dumpCmd.Flag("n", "ln", &argparse.Options{Required: false, Help: "append line numbers"})

	sortCmd := parser.NewCommand("sort", "sort a dumped word file by line number")
	sortIn := sortCmd.String("i", "input", &argparse.Options{Required: true, Help: "dumped word file"})
	sortOut := sortCmd.String("o", "output", &argparse.Options{Required: true, Help: "sorted word file, numbers stripped"})

	verifyCmd := parser.NewCommand("verify", "check a dat file reproduces its word list")
	verifyWords := verifyCmd.String("w", "words", &argparse.Options{Required: true, Help: "original word list"})
	verifyDat := verifyCmd.String("d", "dat", &argparse.Options{Required: true, Help: "dat file to check"})

	fpCmd := parser.NewCommand("fingerprint", "print a dat file's size and fingerprint")
	fpIn := fpCmd.String("i", "input", &argparse.Options{Required: true, Help: "dat file to read"})

	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		// In case of error print error and print usage
		// This can also be done by passing -h or --help flags
		fmt.Print(parser.Usage(err))
		return
	}
	defer log.Sync()

	if makeCmd.Happened() {
		runMake(*makeIn, *makeOut)
	} else if dumpCmd.Happened() {
		runDump(*dumpIn, *dumpOut, *dumpLn)
	} else if sortCmd.Happened() {
		runSort(*sortIn, *sortOut)
	} else if verifyCmd.Happened() {
		runVerify(*verifyWords, *verifyDat)
	} else if fpCmd.Happened() {
		runFingerprint(*fpIn)
	} else {
		Moan(fmt.Errorf("can't happen"))
	}
}
