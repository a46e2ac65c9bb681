package util

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentは100を上限とする(t *testing.T) {
	assert.Equal(t, 100, percent(5, 4), "5/4 は 100% として扱うべきです")
	assert.Equal(t, 100, percent(0, 0))
	assert.Equal(t, 50, percent(1, 2))
}

func TestProgressは件数を描画する(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTo(&buf, 3, true)
	p.Advance()
	p.Advance()
	assert.Contains(t, buf.String(), "[progress] 2/3 files (66%)")
	p.Done()
	assert.True(t, strings.HasSuffix(buf.String(), "\r\033[K"))
}

func TestProgress無効時は何も出力しない(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressTo(&buf, 2, false)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Advance()
		}()
	}
	wg.Wait()
	p.Done()
	assert.Empty(t, buf.String())
}

func TestShouldShowProgressの優先順位(t *testing.T) {
	assert.False(t, ShouldShowProgress(true, true), "--no-progress が優先されるべきです")
	assert.True(t, ShouldShowProgress(true, false))
}
