package lineeditor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCompleter struct {
	single map[string]string
	multi  map[string]string
}

func (f *fakeCompleter) Complete(prefix string, multiple bool) (string, bool) {
	if multiple {
		s, ok := f.multi[prefix]
		return s, ok
	}
	s, ok := f.single[prefix]
	return s, ok
}

func TestProcessByte_PrintableCharactersEcho(t *testing.T) {
	var buffer strings.Builder
	tab := false

	r := processByte('h', &buffer, &tab, &fakeCompleter{})
	assert.Equal(t, outcomeEcho, r.kind)
	assert.Equal(t, "h", r.text)
	assert.Equal(t, "h", buffer.String())

	r = processByte('i', &buffer, &tab, &fakeCompleter{})
	assert.Equal(t, outcomeEcho, r.kind)
	assert.Equal(t, "hi", buffer.String())
}

func TestProcessByte_BackspaceRemovesCharacter(t *testing.T) {
	var buffer strings.Builder
	buffer.WriteString("hello")
	tab := false

	r := processByte(0x7f, &buffer, &tab, &fakeCompleter{})
	assert.Equal(t, outcomeBackspace, r.kind)
	assert.Equal(t, "hell", buffer.String())

	r = processByte(0x08, &buffer, &tab, &fakeCompleter{})
	assert.Equal(t, outcomeBackspace, r.kind)
	assert.Equal(t, "hel", buffer.String())
}

func TestProcessByte_BackspaceOnEmptyBufferIsIgnored(t *testing.T) {
	var buffer strings.Builder
	tab := false

	r := processByte(0x7f, &buffer, &tab, &fakeCompleter{})
	assert.Equal(t, outcomeIgnore, r.kind)
	assert.Equal(t, "", buffer.String())
}

func TestProcessByte_TabCompletesUnambiguousCommand(t *testing.T) {
	var buffer strings.Builder
	buffer.WriteString("ec")
	tab := false

	completer := &fakeCompleter{single: map[string]string{"ec": "ho "}}
	r := processByte('\t', &buffer, &tab, completer)

	assert.Equal(t, outcomeCompletion, r.kind)
	assert.Equal(t, "ho ", r.text)
	assert.Equal(t, "echo ", buffer.String())
	assert.False(t, tab)
}

func TestProcessByte_TabWithAmbiguousPrefixRingsBellAndSetsFlag(t *testing.T) {
	var buffer strings.Builder
	buffer.WriteString("e")
	tab := false

	r := processByte('\t', &buffer, &tab, &fakeCompleter{})

	assert.Equal(t, outcomeNoCompletion, r.kind)
	assert.Equal(t, "e", buffer.String())
	assert.True(t, tab)
}

func TestProcessByte_SecondTabRequestsMultiCompletion(t *testing.T) {
	var buffer strings.Builder
	buffer.WriteString("e")
	tab := true

	completer := &fakeCompleter{multi: map[string]string{"e": "echo  exit"}}
	r := processByte('\t', &buffer, &tab, completer)

	assert.Equal(t, outcomeMultiCompletion, r.kind)
	assert.Equal(t, "echo  exit", r.text)
	assert.False(t, tab)
}

func TestProcessByte_EnterSubmits(t *testing.T) {
	var buffer strings.Builder
	buffer.WriteString("echo test")
	tab := false

	r := processByte('\r', &buffer, &tab, &fakeCompleter{})
	assert.Equal(t, outcomeSubmit, r.kind)
	assert.Equal(t, "echo test", buffer.String())
}

func TestProcessByte_CtrlCInterrupts(t *testing.T) {
	var buffer strings.Builder
	buffer.WriteString("some input")
	tab := false

	r := processByte(0x03, &buffer, &tab, &fakeCompleter{})
	assert.Equal(t, outcomeInterrupted, r.kind)
	assert.Equal(t, "some input", buffer.String())
}

func TestProcessByte_ControlCharactersAreIgnored(t *testing.T) {
	var buffer strings.Builder
	tab := false

	for _, b := range []byte{0, 1, 27, 128, 255} {
		r := processByte(b, &buffer, &tab, &fakeCompleter{})
		assert.Equal(t, outcomeIgnore, r.kind)
	}
	assert.Equal(t, "", buffer.String())
}
