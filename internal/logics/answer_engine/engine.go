package answer_engine

import (
	"encoding/json"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"saturn-server/internal/catalog"
)

// DefaultWrongMessage is used when a stage defines no wrong messages of its
// own.
const DefaultWrongMessage = "Wrong!"

// Verdict is the engine's answer to a single submission.
type Verdict struct {
	Correct bool
	Message string
}

// Engine validates submitted answers against stage definitions. It is pure:
// no storage access, no mutation. The wrong-message picker is injectable so
// tests can make the random choice deterministic.
type Engine struct {
	pick func(n int) int
}

func New() *Engine {
	return &Engine{pick: rand.Intn}
}

// NewWithPicker builds an engine whose wrong-message selection is driven by
// the given picker instead of math/rand.
func NewWithPicker(pick func(n int) int) *Engine {
	return &Engine{pick: pick}
}

// Evaluate checks the raw answer against the stage's rule and produces the
// feedback message. Malformed input is never an error, only an incorrect
// verdict.
func (e *Engine) Evaluate(stage *catalog.Stage, answer string) Verdict {
	correct, customWrong := e.judge(stage, answer)
	if correct {
		return Verdict{Correct: true, Message: stage.CorrectMessage}
	}
	if customWrong != "" {
		return Verdict{Correct: false, Message: customWrong}
	}
	if len(stage.WrongMessages) == 0 {
		return Verdict{Correct: false, Message: DefaultWrongMessage}
	}
	return Verdict{Correct: false, Message: stage.WrongMessages[e.pick(len(stage.WrongMessages))]}
}

func (e *Engine) judge(stage *catalog.Stage, answer string) (correct bool, customWrong string) {
	switch stage.Type {
	case catalog.TypeColorTrick, catalog.TypeChoosePerson:
		// Visual-only stages: any submission advances, logged for audit.
		return true, ""

	case catalog.TypeCaptcha:
		return judgeCaptcha(stage.Captcha, answer), ""

	case catalog.TypeComplexCaptcha:
		return judgeComplex(stage.Complex, answer)

	default:
		// plain_text and audio share the normalized equality rule.
		return judgeText(stage.Text, answer), ""
	}
}

func judgeText(spec *catalog.TextSpec, answer string) bool {
	normalized := normalize(answer)
	if normalized == normalize(spec.Answer) {
		return true
	}
	for _, alias := range spec.Aliases {
		if normalized == normalize(alias) {
			return true
		}
	}
	return false
}

// judgeCaptcha expects a comma-separated ordered list of option indices,
// e.g. "1,0,3".
func judgeCaptcha(spec *catalog.CaptchaSpec, answer string) bool {
	tokens := strings.Split(answer, ",")
	if len(tokens) != len(spec.Questions) {
		return false
	}
	for i, token := range tokens {
		chosen, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return false
		}
		if chosen != spec.Questions[i].AnswerIndex {
			return false
		}
	}
	return true
}

// complexAnswer is the wire shape of a complex-captcha submission:
// {"part_a": [0, 1, 2], "part_b": [[0,3,6], [1,4,7]]}
type complexAnswer struct {
	PartA []int   `json:"part_a"`
	PartB [][]int `json:"part_b"`
}

func judgeComplex(spec *catalog.ComplexSpec, answer string) (bool, string) {
	var parsed complexAnswer
	if err := json.Unmarshal([]byte(answer), &parsed); err != nil {
		return false, ""
	}

	partACorrect := true
	var customWrong string
	for i, q := range spec.PartA {
		if i >= len(parsed.PartA) || parsed.PartA[i] != q.CorrectIndex {
			partACorrect = false
			// Surface the stage's custom message for the chosen option,
			// if one is defined.
			if i < len(parsed.PartA) {
				customWrong = q.WrongMessages[strconv.Itoa(parsed.PartA[i])]
			}
			break
		}
	}

	partBCorrect := len(parsed.PartB) == len(spec.PartB)
	if partBCorrect {
		for i, round := range spec.PartB {
			if !sameIndexSet(parsed.PartB[i], round.CorrectIndices) {
				partBCorrect = false
				break
			}
		}
	}

	return partACorrect && partBCorrect, customWrong
}

// sameIndexSet compares two index lists order-independently.
func sameIndexSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
