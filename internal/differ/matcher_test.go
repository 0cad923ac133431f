package differ

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidScript checks the structural invariants every edit script must
// hold: operations are ordered, contiguous and together cover both
// sequences end to end, and each tag matches its range shape.
func assertValidScript(t *testing.T, source, comparison []string, script []EditOp) {
	t.Helper()

	i, j := 0, 0
	for _, op := range script {
		require.Equal(t, i, op.I1, "source ranges must be contiguous: %v", op)
		require.Equal(t, j, op.J1, "comparison ranges must be contiguous: %v", op)
		require.LessOrEqual(t, op.I1, op.I2)
		require.LessOrEqual(t, op.J1, op.J2)

		switch op.Tag {
		case OpEqual:
			require.Equal(t, op.SourceLen(), op.ComparisonLen(), "equal spans must match: %v", op)
			require.Positive(t, op.SourceLen())
			for k := 0; k < op.SourceLen(); k++ {
				require.Equal(t, source[op.I1+k], comparison[op.J1+k], "equal range must contain identical tokens: %v", op)
			}
		case OpInsert:
			require.Equal(t, 0, op.SourceLen(), "insert must not consume source tokens: %v", op)
			require.Positive(t, op.ComparisonLen())
		case OpDelete:
			require.Equal(t, 0, op.ComparisonLen(), "delete must not consume comparison tokens: %v", op)
			require.Positive(t, op.SourceLen())
		case OpReplace:
			require.Positive(t, op.SourceLen())
			require.Positive(t, op.ComparisonLen())
		}

		i, j = op.I2, op.J2
	}
	require.Equal(t, len(source), i, "script must cover the whole source sequence")
	require.Equal(t, len(comparison), j, "script must cover the whole comparison sequence")
}

// reconstruct applies an edit script to the source tokens and returns the
// rebuilt comparison sequence.
func reconstruct(source, comparison []string, script []EditOp) []string {
	var out []string
	for _, op := range script {
		switch op.Tag {
		case OpEqual:
			out = append(out, source[op.I1:op.I2]...)
		case OpInsert, OpReplace:
			out = append(out, comparison[op.J1:op.J2]...)
		}
	}
	return out
}

func TestMatch_IdenticalSequences(t *testing.T) {
	tokens := []string{"a", "b", "c"}
	script := Match(tokens, tokens)

	require.Len(t, script, 1)
	assert.Equal(t, OpEqual, script[0].Tag)
	assert.Equal(t, 3, script[0].SourceLen())
}

func TestMatch_BothEmpty(t *testing.T) {
	assert.Empty(t, Match(nil, nil))
}

func TestMatch_SourceEmpty(t *testing.T) {
	script := Match(nil, []string{"a", "b"})

	require.Len(t, script, 1)
	assert.Equal(t, OpInsert, script[0].Tag)
	assert.Equal(t, 2, script[0].ComparisonLen())
}

func TestMatch_ComparisonEmpty(t *testing.T) {
	script := Match([]string{"a", "b"}, nil)

	require.Len(t, script, 1)
	assert.Equal(t, OpDelete, script[0].Tag)
	assert.Equal(t, 2, script[0].SourceLen())
}

func TestMatch_SingleWordReplace(t *testing.T) {
	source := Tokenize("The quick brown fox", GranularityWord)
	comparison := Tokenize("The quick red fox", GranularityWord)

	script := Match(source, comparison)
	assertValidScript(t, source, comparison, script)

	require.Len(t, script, 3)
	assert.Equal(t, OpEqual, script[0].Tag)
	assert.Equal(t, OpReplace, script[1].Tag)
	assert.Equal(t, "brown", source[script[1].I1])
	assert.Equal(t, "red", comparison[script[1].J1])
	assert.Equal(t, OpEqual, script[2].Tag)
}

func TestMatch_AdjacentDeleteInsertCollapseToReplace(t *testing.T) {
	source := []string{"keep", "old1", "old2", "keep2"}
	comparison := []string{"keep", "new", "keep2"}

	script := Match(source, comparison)
	assertValidScript(t, source, comparison, script)

	var tags []OpTag
	for _, op := range script {
		tags = append(tags, op.Tag)
	}
	assert.Equal(t, []OpTag{OpEqual, OpReplace, OpEqual}, tags)
}

func TestMatch_PureInsertionInMiddle(t *testing.T) {
	source := []string{"a", "b", "e"}
	comparison := []string{"a", "b", "c", "d", "e"}

	script := Match(source, comparison)
	assertValidScript(t, source, comparison, script)

	require.Len(t, script, 3)
	assert.Equal(t, OpInsert, script[1].Tag)
	assert.Equal(t, 2, script[1].ComparisonLen())
}

func TestMatch_PureDeletionAtEnd(t *testing.T) {
	source := []string{"a", "b", "c", "d"}
	comparison := []string{"a", "b"}

	script := Match(source, comparison)
	assertValidScript(t, source, comparison, script)

	require.Len(t, script, 2)
	assert.Equal(t, OpDelete, script[1].Tag)
	assert.Equal(t, 2, script[1].SourceLen())
}

func TestMatch_NoCommonTokens(t *testing.T) {
	// Pathological case: nothing in common, the whole of both sides is one
	// replace operation.
	source := []string{"a", "b", "c"}
	comparison := []string{"x", "y", "z", "w"}

	script := Match(source, comparison)
	assertValidScript(t, source, comparison, script)

	require.Len(t, script, 1)
	assert.Equal(t, OpReplace, script[0].Tag)
	assert.Equal(t, 3, script[0].SourceLen())
	assert.Equal(t, 4, script[0].ComparisonLen())
}

func TestMatch_Deterministic(t *testing.T) {
	source := strings.Fields("a b c a b b a")
	comparison := strings.Fields("c b a b a c")

	first := Match(source, comparison)
	for run := 0; run < 5; run++ {
		assert.Equal(t, first, Match(source, comparison))
	}
}

func TestMatch_SwappedArgumentsMirrorMagnitudes(t *testing.T) {
	// The scripts need not be mirror images, but minimality means the
	// number of changed tokens on each side is preserved under a swap.
	source := strings.Fields("the cat sat on the mat today")
	comparison := strings.Fields("the dog sat on a mat")

	removed := func(script []EditOp) int {
		total := 0
		for _, op := range script {
			if op.Tag == OpDelete || op.Tag == OpReplace {
				total += op.SourceLen()
			}
		}
		return total
	}
	added := func(script []EditOp) int {
		total := 0
		for _, op := range script {
			if op.Tag == OpInsert || op.Tag == OpReplace {
				total += op.ComparisonLen()
			}
		}
		return total
	}

	forward := Match(source, comparison)
	backward := Match(comparison, source)

	assert.Equal(t, removed(forward), added(backward))
	assert.Equal(t, added(forward), removed(backward))
}

func TestMatch_InterleavedChanges(t *testing.T) {
	source := strings.Fields("one two three four five six seven")
	comparison := strings.Fields("one TWO three four FIVE six seven eight")

	script := Match(source, comparison)
	assertValidScript(t, source, comparison, script)
	assert.Equal(t, comparison, reconstruct(source, comparison, script))
}

func TestMatch_RandomizedReconstruction(t *testing.T) {
	// Property check: for arbitrary inputs the script is a valid total
	// partition and replays the comparison sequence exactly.
	rng := rand.New(rand.NewSource(42))
	vocab := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}

	for trial := 0; trial < 50; trial++ {
		source := make([]string, rng.Intn(40))
		for i := range source {
			source[i] = vocab[rng.Intn(len(vocab))]
		}

		// Derive the comparison by mutating the source
		comparison := append([]string(nil), source...)
		for edits := rng.Intn(10); edits > 0 && len(comparison) > 0; edits-- {
			pos := rng.Intn(len(comparison))
			switch rng.Intn(3) {
			case 0:
				comparison[pos] = vocab[rng.Intn(len(vocab))]
			case 1:
				comparison = append(comparison[:pos], comparison[pos+1:]...)
			case 2:
				comparison = append(comparison[:pos], append([]string{vocab[rng.Intn(len(vocab))]}, comparison[pos:]...)...)
			}
		}

		script := Match(source, comparison)
		assertValidScript(t, source, comparison, script)
		require.Equal(t, comparison, reconstruct(source, comparison, script), "trial %d", trial)
	}
}

func TestMatch_IdenticalLongSequencesSingleEqual(t *testing.T) {
	tokens := make([]string, 10_000)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok%d", i%257)
	}

	script := Match(tokens, tokens)
	require.Len(t, script, 1)
	assert.Equal(t, OpEqual, script[0].Tag)
}

func BenchmarkMatch_LargeInputSingleInsertedParagraph(b *testing.B) {
	// Two large near-identical documents differing by one inserted block.
	// The D-bounded bisect should stay close to linear here.
	var sb strings.Builder
	for sb.Len() < 5*1024*1024 {
		sb.WriteString("lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor ")
	}
	source := Tokenize(sb.String(), GranularityWord)

	insertion := Tokenize("an entirely new paragraph inserted in the middle of the document ", GranularityWord)
	mid := len(source) / 2
	comparison := make([]string, 0, len(source)+len(insertion))
	comparison = append(comparison, source[:mid]...)
	comparison = append(comparison, insertion...)
	comparison = append(comparison, source[mid:]...)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Match(source, comparison)
	}
}
