package txt2md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFenceInfo(t *testing.T) {
	tests := []struct {
		name string
		info string
		lang string
		meta Meta
	}{
		{"lang only", "go", "go", Meta{}},
		{"lang and pair", "go file=main.go", "go", Meta{"file": "main.go"}},
		{"quoted value", `sh cmd="echo hi"`, "sh", Meta{"cmd": "echo hi"}},
		{"bracketed pairs", "py {file=x.py mode=run}", "py", Meta{"file": "x.py", "mode": "run"}},
		{"json meta", `go {"file": "main.go"}`, "go", Meta{"file": "main.go"}},
		{"empty", "", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lang, meta := parseFenceInfo(tc.info)

			assert.Equal(t, tc.lang, lang)
			assert.Equal(t, tc.meta, meta)
		})
	}
}

func TestMetaGet(t *testing.T) {
	meta := Meta{"file": "x.py", "count": 3}

	assert.Equal(t, "x.py", meta.Get("file"))
	assert.Equal(t, "3", meta.Get("count"))
	assert.Empty(t, meta.Get("missing"))

	var nilMeta Meta

	assert.Empty(t, nilMeta.Get("anything"))
}
