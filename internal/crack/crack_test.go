package crack

import (
	"caesar/internal/dict"
	"caesar/internal/rot"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruit = dict.New("apple", "banana", "cherry", "date", "elderberry", "fig", "grape")

func TestCrack(t *testing.T) {
	for _, tc := range []struct {
		ciphertext string
		shift      int
		plaintext  string
	}{
		{"dssoh", 23, "apple"},
		{"gfsfsf", 21, "banana"},
		{"dssoh edqdqd", 23, "apple banana"},
		{"nyhwl mpn khal", 19, "grape fig date"},
		{"DSSOH", 23, "apple"},
		{"apple", 0, "apple"},
	} {
		t.Run(tc.ciphertext, func(t *testing.T) {
			res, ok := Crack(tc.ciphertext, fruit)
			require.True(t, ok)
			assert.Equal(t, tc.shift, res.Shift)
			assert.Equal(t, tc.plaintext, res.Plaintext)
		})
	}
}

func TestCrackAbsent(t *testing.T) {
	for _, ciphertext := range []string{"qzxp", "xyzzyabccba", "", "   ", "dssoh tcau"} {
		t.Run(ciphertext, func(t *testing.T) {
			_, ok := Crack(ciphertext, fruit)
			assert.False(t, ok)
		})
	}
}

func TestCrackEmptyDictionary(t *testing.T) {
	_, ok := Crack("dssoh", dict.Dictionary{})
	assert.False(t, ok)
}

func TestCrackSmallestShiftWins(t *testing.T) {
	// "ab" and "cd" are both one rotation apart from "bc".
	d := dict.New("ab", "cd")

	res, ok := Crack("bc", d)
	require.True(t, ok)
	assert.Equal(t, 1, res.Shift)
	assert.Equal(t, "cd", res.Plaintext)
}

func TestResultKey(t *testing.T) {
	assert.Equal(t, 3, Result{Shift: 23}.Key())
	assert.Equal(t, 5, Result{Shift: 21}.Key())
	assert.Equal(t, 0, Result{Shift: 0}.Key())
}

func TestKeyRoundTrip(t *testing.T) {
	for key := range rot.Size {
		ciphertext := rot.Rotate("grape fig date", key)
		res, ok := Crack(ciphertext, fruit)
		require.True(t, ok, "key %d", key)
		assert.Equal(t, key, res.Key())
		assert.Equal(t, "grape fig date", res.Plaintext)
	}
}

func TestCracker(t *testing.T) {
	ctx := context.Background()

	res, ok, err := Cracker{Dictionary: fruit}.Crack(ctx, "dssoh!")
	require.NoError(t, err)
	assert.False(t, ok, "%+v", res)

	res, ok, err = Cracker{Dictionary: fruit}.Crack(ctx, "dssoh edqdqd")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Result{Shift: 23, Plaintext: "apple banana"}, res)

	_, ok, err = Cracker{Rotator: rot.Rotator{Strict: true}, Dictionary: fruit}.Crack(ctx, "dssoh!")
	assert.ErrorIs(t, err, rot.ErrInvalidCharacter)
	assert.False(t, ok)
}

func TestCrackerMatchesCrack(t *testing.T) {
	ctx := context.Background()
	c := Cracker{Dictionary: fruit}

	for _, ciphertext := range []string{"dssoh", "qzxp", "", "nyhwl mpn khal", "Khoor, zruog."} {
		want, wantOK := Crack(ciphertext, fruit)
		have, haveOK, err := c.Crack(ctx, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, wantOK, haveOK, ciphertext)
		assert.Equal(t, want, have, ciphertext)
	}
}
