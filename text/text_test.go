package text_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/parsek/parse"
	"github.com/dhamidi/parsek/text"
)

func feederOf(chunks ...string) parse.Feeder[string] {
	i := 0
	return func() string {
		if i < len(chunks) {
			c := chunks[i]
			i++
			return c
		}
		return ""
	}
}

// chunkFeeder hands out chunks in order and remembers what the parse
// never asked for.
type chunkFeeder struct {
	chunks []string
	next   int
}

func (f *chunkFeeder) feed() string {
	if f.next < len(f.chunks) {
		c := f.chunks[f.next]
		f.next++
		return c
	}
	return ""
}

// undelivered returns the input the feeder still holds.
func (f *chunkFeeder) undelivered() string {
	return strings.Join(f.chunks[f.next:], "")
}

type prefixed struct {
	Prefix string
	Last   byte
}

// prefixThenWord takes two bytes, an exact space, the literal "abc" and
// one more byte.
func prefixThenWord() text.Parser[prefixed] {
	return parse.Bind(text.Take(2), func(prefix string) text.Parser[prefixed] {
		return parse.Then(text.Byte(0x20),
			parse.Then(text.String("abc"),
				parse.Map(text.AnyByte(), func(b byte) prefixed {
					return prefixed{Prefix: prefix, Last: b}
				})))
	})
}

func TestCompositeScenario(t *testing.T) {
	got, rest, err := text.ParseOnly(prefixThenWord(), "xx abctest")
	require.NoError(t, err)
	assert.Equal(t, prefixed{Prefix: "xx", Last: 116}, got)
	assert.Equal(t, "est", rest)
}

func TestChunkingTransparency(t *testing.T) {
	input := "xx abctest"
	want, wantRest, err := text.ParseOnly(prefixThenWord(), input)
	require.NoError(t, err)

	// any split of the input into two non-empty chunks yields the same
	// value (an empty chunk would signal end of data), and the upfront
	// leftover equals the driver's leftover plus whatever the feeder was
	// never asked for
	for i := 1; i < len(input); i++ {
		f := &chunkFeeder{chunks: []string{input[:i], input[i:]}}
		got, rest, err := text.ParseFeed(f.feed, prefixThenWord(), "")
		require.NoError(t, err, "split at %d", i)
		assert.Equal(t, want, got, "split at %d", i)
		assert.Equal(t, wantRest, rest+f.undelivered(), "split at %d", i)
	}

	// and so does feeding one byte at a time
	chunks := make([]string, len(input))
	for i := range input {
		chunks[i] = input[i : i+1]
	}
	f := &chunkFeeder{chunks: chunks}
	got, rest, err := text.ParseFeed(f.feed, prefixThenWord(), "")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, wantRest, rest+f.undelivered())
}

func TestLeftoverSplitsAtChunkBoundary(t *testing.T) {
	// the parse settles exactly at a chunk boundary: the driver reports
	// only input that was actually fed as leftover, and the feeder keeps
	// the chunk it was never asked for
	f := &chunkFeeder{chunks: []string{"xx abct", "est"}}
	got, rest, err := text.ParseFeed(f.feed, prefixThenWord(), "")
	require.NoError(t, err)
	assert.Equal(t, prefixed{Prefix: "xx", Last: 't'}, got)
	assert.Equal(t, "", rest)
	assert.Equal(t, "est", f.undelivered())
}

func TestStringAcrossChunkBoundary(t *testing.T) {
	got, rest, err := text.ParseFeed(feederOf("ab", "cdef"), text.String("abc"), "")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, "def", rest)
}

func TestStringMismatch(t *testing.T) {
	_, _, err := text.ParseOnly(text.String("abc"), "abx")
	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parse.ErrSequenceMismatch, perr.Kind)
}

func TestStringMismatchedPrefixFailsEarly(t *testing.T) {
	// the available prefix already rules the literal out; no more input
	// is requested
	res := text.Parse(text.String("abc"), "ax")
	failed, ok := res.(parse.Failed[string])
	require.True(t, ok, "expected failure, got %#v", res)
	assert.Equal(t, parse.ErrSequenceMismatch, failed.Err.Kind)
}

func TestParseOnlyIncompleteInput(t *testing.T) {
	_, _, err := text.ParseOnly(text.Take(5), "abc")
	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parse.ErrNeedInput, perr.Kind)
	assert.Equal(t, 5, perr.Required)
}

func TestTakeWhileStopsAtFirstNonMatch(t *testing.T) {
	isLetter := func(b byte) bool { return b >= 'a' && b <= 'z' }
	p := parse.Bind(text.TakeWhile(isLetter), func(word string) text.Parser[byte] {
		return text.AnyByte()
	})

	b, rest, err := text.ParseOnly(p, "abc123")
	require.NoError(t, err)
	assert.False(t, isLetter(b), "byte after TakeWhile still matches the predicate")
	assert.Equal(t, byte('1'), b)
	assert.Equal(t, "23", rest)
}

func TestTakeWhileSpansChunks(t *testing.T) {
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	got, rest, err := text.ParseFeed(feederOf("12", "34", "5x"), text.TakeWhile(isDigit), "")
	require.NoError(t, err)
	assert.Equal(t, "12345", got)
	assert.Equal(t, "x", rest)
}

func TestTakeWhileEmptyMatch(t *testing.T) {
	got, rest, err := text.ParseOnly(text.TakeWhile(func(b byte) bool { return b == 'z' }), "abc")
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, "abc", rest)
}

func TestTakeAllDrainsFeeder(t *testing.T) {
	got, rest, err := text.ParseFeed(feederOf("ab", "cd", "ef"), text.TakeAll(), "")
	require.NoError(t, err)
	assert.Equal(t, "abcdef", got)
	assert.Equal(t, "", rest)
}

func TestSkipAllLeavesNothing(t *testing.T) {
	_, rest, err := text.ParseFeed(feederOf("ab", "cd"), text.SkipAll(), "")
	require.NoError(t, err)
	assert.Equal(t, "", rest)
}

func TestSkipDiscardsCount(t *testing.T) {
	p := parse.Then(text.Skip(2), text.TakeAll())
	got, _, err := text.ParseOnly(p, "abcdef")
	require.NoError(t, err)
	assert.Equal(t, "cdef", got)
}

func TestManyOnAlwaysFailingParser(t *testing.T) {
	got, rest, err := text.ParseOnly(parse.Many(text.Byte('z')), "abc")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "abc", rest, "Many must consume nothing when p never matches")
}

func TestSomeRequiresOneSuccess(t *testing.T) {
	_, _, err := text.ParseOnly(parse.Some(text.Byte('z')), "abc")
	require.Error(t, err)

	got, rest, err := text.ParseOnly(parse.Some(text.Byte('a')), "aab")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'a'}, got)
	assert.Equal(t, "b", rest)
}

func TestRepeatExactlyTwice(t *testing.T) {
	p := parse.Repeat(parse.Exactly(parse.Twice), text.String("ab"))

	got, rest, err := text.ParseOnly(p, "ababx")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "ab"}, got)
	assert.Equal(t, "x", rest, "Repeat must consume exactly what the two runs consumed")
}

func TestRepeatUnderRange(t *testing.T) {
	p := parse.Repeat(parse.Exactly(parse.Twice), text.String("ab"))
	_, _, err := text.ParseOnly(p, "abx")
	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parse.ErrPredicateFailed, perr.Kind)
	assert.Contains(t, perr.Desc, "exactly")
}

func TestRepeatZeroNeverRunsParser(t *testing.T) {
	ran := false
	p := parse.Repeat(parse.Exactly(parse.Never), parse.Map(text.AnyByte(), func(b byte) byte {
		ran = true
		return b
	}))

	got, rest, err := text.ParseOnly(p, "abc")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "abc", rest)
	assert.False(t, ran)
}

func TestRepeatBetweenStopsAtUpperBound(t *testing.T) {
	p := parse.Repeat(parse.Between(parse.Once, parse.Times(3)), text.Byte('a'))

	got, rest, err := text.ParseOnly(p, "aaaaa")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'a', 'a'}, got)
	assert.Equal(t, "aa", rest)
}

func TestRepeatBetweenLowerBoundOptional(t *testing.T) {
	p := parse.Repeat(parse.Between(parse.Never, parse.Twice), text.Byte('a'))
	got, rest, err := text.ParseOnly(p, "bbb")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "bbb", rest)
}

func TestSatisfyDescInError(t *testing.T) {
	_, _, err := text.ParseOnly(text.Satisfy(func(b byte) bool { return b == 'x' }, "the letter x"), "y")
	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parse.ErrPredicateFailed, perr.Kind)
	assert.Contains(t, perr.Error(), "the letter x")
}
