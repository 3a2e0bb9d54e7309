package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"gitlab.com/pnathan/lexdat/src/lib/datapi"
	"gitlab.com/pnathan/lexdat/src/lib/log"
)

func MustMarshal(v any) []byte {
	b := new(bytes.Buffer)
	encoder := json.NewEncoder(b)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(v)
	if err != nil {
		panic(err)
	}

	return b.Bytes()
}

func Moan(complaint error) {
	log.Fatal("", zap.Error(complaint))
	os.Exit(1)
}

func main() {
	parser := argparse.NewParser("lexdat client", "lexdat client code")

	endpoint := parser.String("e", "endpoint", &argparse.Options{Required: true, Help: "endpoint to address", Default: "http://localhost:1337"})

	wordsGetCmd := parser.NewCommand("words-get", "dump the whole dictionary")

	lookupCmd := parser.NewCommand("lookup", "look up one word")
	lookupWord := lookupCmd.String("w", "word", &argparse.Options{Required: true, Help: "word to look up"})

	prefixCmd := parser.NewCommand("prefix", "list words under a prefix")
	prefixArg := prefixCmd.String("x", "prefix", &argparse.Options{Required: true, Help: "the prefix"})

	infoCmd := parser.NewCommand("info", "show the served dictionary's identity")

	reloadCmd := parser.NewCommand("reload", "ask the server to reload its dat file")

	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		// In case of error print error and print usage
		// This can also be done by passing -h or --help flags
		fmt.Print(parser.Usage(err))
		return
	}

	if wordsGetCmd.Happened() {
		words, err := datapi.GetWords(*endpoint)
		if err != nil {
			Moan(err)
		}
		fmt.Println(string(MustMarshal(words)))
	} else if lookupCmd.Happened() {
		result, err := datapi.Lookup(*lookupWord, *endpoint)
		if err != nil {
			Moan(err)
		}
		fmt.Println(string(MustMarshal(result)))
	} else if prefixCmd.Happened() {
		words, err := datapi.GetPrefix(*prefixArg, *endpoint)
		if err != nil {
			Moan(err)
		}
		fmt.Println(string(MustMarshal(words)))
	} else if infoCmd.Happened() {
		info, err := datapi.GetInfo(*endpoint)
		if err != nil {
			Moan(err)
		}
		fmt.Println(string(MustMarshal(info)))
	} else if reloadCmd.Happened() {
		if err := datapi.PostReload(*endpoint); err != nil {
			Moan(err)
		}
		fmt.Println("ok")
	} else {
		Moan(fmt.Errorf("can't happen"))
	}
}
