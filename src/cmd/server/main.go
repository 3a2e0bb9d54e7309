package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/akamensky/argparse"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.uber.org/zap"

	"gitlab.com/pnathan/lexdat/src/lib/datapi"
	"gitlab.com/pnathan/lexdat/src/lib/lexdat"
	"gitlab.com/pnathan/lexdat/src/lib/log"
)

var GLOBAL_LEXICON *lexdat.Lexicon

// INSTANCE_ID distinguishes restarts from reloads in /api/dat/info.
var INSTANCE_ID uuid.UUID

func getWords(w http.ResponseWriter, r *http.Request) {
	entries := GLOBAL_LEXICON.Entries()
	words := datapi.EntryList{Items: []datapi.Entry{}}
	for _, e := range entries {
		words.Items = append(words.Items, datapi.Entry{Word: e.Word, Line: e.Line})
	}

	bytes, err := json.Marshal(words)
	if err != nil {
		log.Printf("error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	fmt.Fprint(w, string(bytes))
}

func lookupWord(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("w")
	if word == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("empty word!"))
		return
	}

	line, found := GLOBAL_LEXICON.Lookup(word)
	log.Debug("lookup", zap.String("word", word), zap.Bool("found", found))
	result := datapi.LookupResponse{Word: word, Found: found, Line: line}

	bytes, err := json.Marshal(result)
	if err != nil {
		log.Printf("error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	fmt.Fprint(w, string(bytes))
}

func getPrefix(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)

	request := datapi.PrefixRequest{}
	if err := decoder.Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("query parse fail"))
		return
	}
	if request.Prefix == "" {
		w.WriteHeader(http.StatusNotAcceptable)
		_, _ = w.Write([]byte("empty prefix!"))
		return
	}

	entries := GLOBAL_LEXICON.PrefixEntries(request.Prefix)
	words := datapi.EntryList{Items: []datapi.Entry{}}
	for _, e := range entries {
		words.Items = append(words.Items, datapi.Entry{Word: e.Word, Line: e.Line})
	}

	bytes, err := json.Marshal(words)
	if err != nil {
		log.Printf("error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	fmt.Fprint(w, string(bytes))
}

func getInfo(w http.ResponseWriter, r *http.Request) {
	info := datapi.DatInfo{
		Size:        GLOBAL_LEXICON.Size(),
		Fingerprint: hex.EncodeToString(GLOBAL_LEXICON.Fingerprint()),
		Instance:    INSTANCE_ID,
		Source:      GLOBAL_LEXICON.Path(),
	}

	bytes, err := json.Marshal(info)
	if err != nil {
		log.Printf("error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	fmt.Fprint(w, string(bytes))
}

func reloadDat(w http.ResponseWriter, r *http.Request) {
	if err := GLOBAL_LEXICON.Reload(); err != nil {
		log.Error("reload failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("error"))
		return
	}
	log.Info("dictionary reloaded",
		zap.Int("slots", GLOBAL_LEXICON.Size()),
		zap.String("fingerprint", hex.EncodeToString(GLOBAL_LEXICON.Fingerprint())))
	_, _ = w.Write([]byte("ok"))
}

func Default(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "ok")
}

func Wut(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, "your content is in another url")
}

func loggerHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", Default)
	r.HandleFunc("/api/words/get", getWords).Methods("GET")
	r.HandleFunc("/api/word/lookup", lookupWord).Methods("GET")
	r.HandleFunc("/api/prefix/get", getPrefix).Methods("POST")
	r.HandleFunc("/api/dat/info", getInfo).Methods("GET")
	r.HandleFunc("/api/dat/reload", reloadDat).Methods("POST")
	r.NotFoundHandler = http.HandlerFunc(Wut)
	return r
}

func main() {
	parser := argparse.NewParser("lexdat-server", "serves a double-array dictionary over http")

	host := parser.String("i", "ip", &argparse.Options{Required: false, Help: "ip to bind to", Default: "127.0.0.1"})
	port := parser.String("p", "port", &argparse.Options{Required: false, Help: "port to bind to", Default: "1337"})
	datFile := parser.String("d", "dat", &argparse.Options{Required: true, Help: "dat file to serve"})

	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		// In case of error print error and print usage
		// This can also be done by passing -h or --help flags
		fmt.Print(parser.Usage(err))
		return
	}

	lexicon, err := lexdat.Open(*datFile)
	if err != nil {
		log.Fatal("unable to open dictionary", zap.String("filename", *datFile), zap.Error(err))
	}
	GLOBAL_LEXICON = lexicon
	INSTANCE_ID = uuid.New()

	log.Info("serving dictionary",
		zap.String("filename", *datFile),
		zap.Int("slots", GLOBAL_LEXICON.Size()),
		zap.String("fingerprint", hex.EncodeToString(GLOBAL_LEXICON.Fingerprint())),
		zap.String("instance", INSTANCE_ID.String()))

	fmt.Println("good morning")
	errorChain := alice.New(loggerHandler)

	srv := &http.Server{
		Handler:      errorChain.Then(router()),
		Addr:         fmt.Sprintf("%s:%s", *host, *port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}
