package datapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/google/uuid"

	"gitlab.com/pnathan/lexdat/src/lib/log"
)

// Entry is the serialization of one stored word.
type Entry struct {
	Word string `json:"word"`
	Line int32  `json:"line"`
}

type EntryList struct {
	Items []Entry `json:"items"`
}

type LookupResponse struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
	Line  int32  `json:"line"`
}

// PrefixRequest asks for every stored word under a prefix.
type PrefixRequest struct {
	Prefix string `json:"prefix"`
}

// DatInfo describes the dictionary a server currently holds. Instance
// is regenerated every time the server process starts, so a changed
// instance with an unchanged fingerprint means a restart, not a new
// dictionary.
type DatInfo struct {
	Size        int       `json:"size"`
	Fingerprint string    `json:"fingerprint"`
	Instance    uuid.UUID `json:"instance"`
	Source      string    `json:"source"`
}

const http_post = "POST"

func httpPost(addr string, text []byte) (*http.Response, error) {
	log.Info("Writing endpoint", zap.String("endpoint", addr))
	buf := bytes.NewBuffer(text)
	client := &http.Client{}
	req, err := http.NewRequest(http_post, addr, buf)
	if err != nil {
		log.Warn("http error", zap.Error(err), zap.String("host", addr))
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Warn("http error", zap.Error(err), zap.String("host", addr))
		return nil, err
	}

	return resp, nil
}

// GetWords pulls the server's full dictionary dump.
func GetWords(addr string) (*EntryList, error) {
	formulatedAddress := fmt.Sprintf("%v/api/words/get", addr)
	resp, err := http.Get(formulatedAddress)
	if err != nil {
		log.Warn("http error", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad error code: %d", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)

	words := &EntryList{}
	if err := decoder.Decode(words); err != nil {
		log.Warn("decoding error", zap.Error(err), zap.String("address", formulatedAddress))
		return nil, err
	}
	return words, nil
}

// Lookup asks the server for one word's line number.
func Lookup(word, addr string) (*LookupResponse, error) {
	formulatedAddress := fmt.Sprintf("%v/api/word/lookup?w=%v", addr, url.QueryEscape(word))
	resp, err := http.Get(formulatedAddress)
	if err != nil {
		log.Warn("http error", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return nil, fmt.Errorf("bad request")
	case http.StatusOK:
	default:
		return nil, fmt.Errorf("bad error code: %d", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)

	result := &LookupResponse{}
	if err := decoder.Decode(result); err != nil {
		log.Warn("decoding error", zap.Error(err), zap.String("address", formulatedAddress))
		return nil, err
	}
	return result, nil
}

// GetPrefix asks the server for every word under prefix.
func GetPrefix(prefix, addr string) (*EntryList, error) {
	text, err := json.Marshal(PrefixRequest{Prefix: prefix})
	if err != nil {
		return nil, err
	}
	formulatedAddress := fmt.Sprintf("%v/api/prefix/get", addr)

	resp, err := httpPost(formulatedAddress, text)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return nil, fmt.Errorf("bad request")
	case http.StatusNotAcceptable:
		return nil, fmt.Errorf("empty prefix")
	case http.StatusOK:
	default:
		return nil, fmt.Errorf("bad error code: %d", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)

	words := &EntryList{}
	if err := decoder.Decode(words); err != nil {
		log.Warn("decoding error", zap.Error(err), zap.String("address", formulatedAddress))
		return nil, err
	}
	return words, nil
}

// GetInfo fetches the server's dictionary identity.
func GetInfo(addr string) (*DatInfo, error) {
	formulatedAddress := fmt.Sprintf("%v/api/dat/info", addr)
	resp, err := http.Get(formulatedAddress)
	if err != nil {
		log.Warn("http error", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad error code: %d", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)

	info := &DatInfo{}
	if err := decoder.Decode(info); err != nil {
		log.Warn("decoding error", zap.Error(err), zap.String("address", formulatedAddress))
		return nil, err
	}
	return info, nil
}

// PostReload asks the server to re-read its dat file from disk.
func PostReload(addr string) error {
	formulatedAddress := fmt.Sprintf("%v/api/dat/reload", addr)
	resp, err := httpPost(formulatedAddress, []byte{})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad error code: %d", resp.StatusCode)
	}
	return nil
}
