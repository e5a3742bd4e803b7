package unit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FoldsAliasesToCanonicalTags(t *testing.T) {
	cases := map[string]Unit{
		"tsp":       Tsp,
		"tsps":      Tsp,
		"tbsps":     Tbsp,
		"floz":      Floz,
		"ML":        ML,
		"ltr":       Ltr,
		"Cups":      Cup,
		"quarts":    Qrt,
		"qrt":       Qrt,
		"pnt":       Pint,
		"gals":      Gal,
		"LBS":       Lb,
		"oz":        Oz,
		"kilograms": Kg,
		"kg":        Kg,
		"grams":     Gram,
		"g":         Gram,
		"cnt":       Cnt,
		"count":     Cnt,
	}
	for token, want := range cases {
		got, ok := Normalize(token)
		require.True(t, ok, "token %q", token)
		assert.Equal(t, want, got, "token %q", token)
	}
}

func TestNormalize_RejectsUnknownTokens(t *testing.T) {
	_, ok := Normalize("stone")
	assert.False(t, ok)
}

// Every alias must map to a unit whose canonical token is itself in the
// alias table, and every unit must be reachable from at least one
// alias. This is the guard against the token vocabulary and the
// measurement mapping drifting apart.
func TestAliasTable_IsExhaustive(t *testing.T) {
	allUnits := []Unit{Cnt, Tsp, Tbsp, Floz, ML, Ltr, Cup, Qrt, Pint, Gal, Lb, Oz, Kg, Gram}

	seen := map[Unit]bool{}
	for _, token := range Tokens() {
		u, ok := Normalize(token)
		require.True(t, ok, "vocabulary token %q has no mapping", token)
		seen[u] = true
	}
	for _, u := range allUnits {
		assert.True(t, seen[u], "unit %v has no alias", u)
	}

	// The canonical rendering of every non-count unit must itself parse.
	for _, u := range allUnits {
		if u == Cnt {
			continue
		}
		got, ok := Normalize(u.String())
		require.True(t, ok, "canonical token %q has no mapping", u.String())
		assert.Equal(t, u, got)
	}
}

func TestTokens_LongerAliasesComeFirst(t *testing.T) {
	toks := Tokens()
	for i, shorter := range toks {
		for j := i + 1; j < len(toks); j++ {
			longer := toks[j]
			if strings.HasPrefix(longer, shorter) && longer != shorter {
				t.Errorf("token %q is tried before longer token %q", shorter, longer)
			}
		}
	}
}

func TestUnit_Kind(t *testing.T) {
	assert.Equal(t, KindVolume, Cup.Kind())
	assert.Equal(t, KindVolume, Floz.Kind())
	assert.Equal(t, KindWeight, Gram.Kind())
	assert.Equal(t, KindWeight, Lb.Kind())
	assert.Equal(t, KindCount, Cnt.Kind())
}

func TestMeasure_AddSameUnit(t *testing.T) {
	sum, err := Measure{Unit: Cup, Amount: Frac(1, 2)}.Add(Measure{Unit: Cup, Amount: Whole(1)})
	require.NoError(t, err)
	assert.Equal(t, Cup, sum.Unit)
	assert.Equal(t, "1 1/2 cup", sum.String())
}

func TestMeasure_AddUnitMismatch(t *testing.T) {
	_, err := Measure{Unit: Cup, Amount: Whole(1)}.Add(Measure{Unit: Gram, Amount: Whole(1)})
	assert.ErrorIs(t, err, ErrUnitMismatch)
}

func TestMeasure_CountRendersBareQuantity(t *testing.T) {
	assert.Equal(t, "2", Count(Whole(2)).String())
	assert.Equal(t, "3/4 tsp", Measure{Unit: Tsp, Amount: Frac(3, 4)}.String())
}

func TestFromToken_PanicsOnVocabularyDrift(t *testing.T) {
	assert.Panics(t, func() { FromToken(Whole(1), "furlong") })
	assert.NotPanics(t, func() { FromToken(Whole(1), "tbsps") })
}
