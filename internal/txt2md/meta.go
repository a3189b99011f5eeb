package txt2md

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from a code block's fence info string.
type Meta map[string]interface{}

// Get returns the metadata value for the given key as a string.
// It returns an empty string if the key is missing or the Meta is nil.
func (m Meta) Get(name string) string {
	if m == nil {
		return ""
	}

	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

var (
	reInfo     = regexp.MustCompile(`\s*(\w+)\s*(.*)\s*`)
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}$`)
)

// parseFenceInfo splits a fence info string into its language word and
// key-value metadata. Malformed metadata degrades to an empty Meta rather
// than failing the fence.
func parseFenceInfo(info string) (string, Meta) {
	all := reInfo.FindStringSubmatch(info)
	if all == nil {
		return "", nil
	}

	lang := all[1]

	meta, err := parseMeta(all[2])
	if err != nil {
		return lang, Meta{}
	}

	return lang, meta
}

func parseMeta(input string) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSON.MatchString(input) {
		var meta Meta

		err := json.Unmarshal([]byte(input), &meta)
		if err != nil {
			return nil, err
		}

		return meta, nil
	}

	if subs := reBrackets.FindStringSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(input)
	if err != nil {
		return nil, err
	}

	dict := make(Meta)

	for _, word := range words {
		idx := strings.IndexRune(word, '=')
		if idx >= 0 && idx < len(word) {
			dict[word[:idx]] = word[idx+1:]
		}
	}

	return dict, nil
}
