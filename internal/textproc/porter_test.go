package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Word pairs from Porter's 1980 paper and a few domain words.
var stemGolden = map[string]string{
	// step 1a
	"caresses": "caress",
	"ponies":   "poni",
	"ties":     "ti",
	"caress":   "caress",
	"cats":     "cat",
	// step 1b
	"feed":      "feed",
	"agreed":    "agre",
	"plastered": "plaster",
	"bled":      "bled",
	"motoring":  "motor",
	"sing":      "sing",
	"conflated": "conflat",
	"troubled":  "troubl",
	"sized":     "size",
	"hopping":   "hop",
	"tanned":    "tan",
	"falling":   "fall",
	"hissing":   "hiss",
	"fizzed":    "fizz",
	"failing":   "fail",
	"filing":    "file",
	// step 1c
	"happy": "happi",
	"sky":   "sky",
	// step 2
	"relational":     "relat",
	"conditional":    "condit",
	"rational":       "ration",
	"valenci":        "valenc",
	"hesitanci":      "hesit",
	"digitizer":      "digit",
	"conformabli":    "conform",
	"radicalli":      "radic",
	"differentli":    "differ",
	"vileli":         "vile",
	"analogousli":    "analog",
	"vietnamization": "vietnam",
	"predication":    "predic",
	"operator":       "oper",
	"feudalism":      "feudal",
	"decisiveness":   "decis",
	"hopefulness":    "hope",
	"callousness":    "callous",
	"formaliti":      "formal",
	"sensitiviti":    "sensit",
	"sensibiliti":    "sensibl",
	// step 3
	"triplicate":  "triplic",
	"formative":   "form",
	"formalize":   "formal",
	"electriciti": "electr",
	"electrical":  "electr",
	"hopeful":     "hope",
	"goodness":    "good",
	// step 4
	"revival":     "reviv",
	"allowance":   "allow",
	"inference":   "infer",
	"airliner":    "airlin",
	"gyroscopic":  "gyroscop",
	"adjustable":  "adjust",
	"defensible":  "defens",
	"irritant":    "irrit",
	"replacement": "replac",
	"adjustment":  "adjust",
	"dependent":   "depend",
	"adoption":    "adopt",
	"homologou":   "homolog",
	"communism":   "commun",
	"activate":    "activ",
	"angulariti":  "angular",
	"homologous":  "homolog",
	"effective":   "effect",
	"bowdlerize":  "bowdler",
	// step 5
	"probate":  "probat",
	"rate":     "rate",
	"cease":    "ceas",
	"controll": "control",
	"roll":     "roll",
	// multi-step
	"generalizations": "gener",
	"oscillators":     "oscil",
	"running":         "run",
	"money":           "monei",
	"iphone":          "iphon",
	"tomorrow":        "tomorrow",
	"meeting":         "meet",
	"prizes":          "prize",
	"congratulations": "congratul",
	"urgent":          "urgent",
}

func TestStemGolden(t *testing.T) {
	for word, want := range stemGolden {
		t.Run(word, func(t *testing.T) {
			assert.Equal(t, want, Stem(word))
		})
	}
}

func TestStemShortWordsUnchanged(t *testing.T) {
	for _, w := range []string{"", "a", "as", "is", "us", "4u"} {
		assert.Equal(t, w, Stem(w), "word %q", w)
	}
}

func TestStemDigitsAreConsonants(t *testing.T) {
	assert.Equal(t, "2000", Stem("2000"))
	assert.Equal(t, "mp3", Stem("mp3s"))
}

func TestMeasure(t *testing.T) {
	tests := map[string]int{
		"tr":       0,
		"ee":       0,
		"tree":     0,
		"y":        0,
		"by":       0,
		"trouble":  1,
		"oats":     1,
		"trees":    1,
		"ivy":      1,
		"troubles": 2,
		"private":  2,
		"oaten":    2,
		"orrery":   2,
	}
	for word, want := range tests {
		assert.Equal(t, want, measure([]byte(word)), "measure(%q)", word)
	}
}
