package answer_engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturn-server/internal/catalog"
	"saturn-server/internal/logics/answer_engine"
)

func textStage() *catalog.Stage {
	return &catalog.Stage{
		Number:         1,
		Type:           catalog.TypePlainText,
		CorrectMessage: "Yes!",
		WrongMessages:  []string{"No.", "Try again."},
		Text: &catalog.TextSpec{
			Answer:  "Answer",
			Aliases: []string{"the answer", " Also This "},
		},
	}
}

func captchaStage() *catalog.Stage {
	return &catalog.Stage{
		Number:         3,
		Type:           catalog.TypeCaptcha,
		CorrectMessage: "Human.",
		WrongMessages:  []string{"Robot."},
		Captcha: &catalog.CaptchaSpec{
			Questions: []catalog.CaptchaQuestion{
				{Text: "q1", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 1},
				{Text: "q2", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 0},
				{Text: "q3", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 3},
			},
		},
	}
}

func complexStage() *catalog.Stage {
	return &catalog.Stage{
		Number:         5,
		Type:           catalog.TypeComplexCaptcha,
		CorrectMessage: "Done.",
		WrongMessages:  []string{"Nope."},
		Complex: &catalog.ComplexSpec{
			PartA: []catalog.PartAQuestion{
				{
					Text:         "pick one",
					Options:      []catalog.PartAOption{{Label: "x"}, {Label: "y"}},
					CorrectIndex: 1,
					WrongMessages: map[string]string{
						"0": "Definitely not that one.",
					},
				},
			},
			PartB: []catalog.PartBRound{
				{Instruction: "select", CorrectIndices: []int{0, 3, 6}},
			},
		},
	}
}

func firstPicker(n int) int { return 0 }

func TestEvaluatePlainText(t *testing.T) {
	engine := answer_engine.NewWithPicker(firstPicker)
	stage := textStage()

	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"exact match", "Answer", true},
		{"lowercased", "answer", true},
		{"surrounding whitespace", "  Answer ", true},
		{"alias", "THE ANSWER", true},
		{"alias with spaces in catalog", "also this", true},
		{"wrong answer", "nope", false},
		{"empty answer", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := engine.Evaluate(stage, tt.answer)
			assert.Equal(t, tt.correct, verdict.Correct)
			if tt.correct {
				assert.Equal(t, "Yes!", verdict.Message)
			} else {
				assert.Equal(t, "No.", verdict.Message)
			}
		})
	}
}

func TestEvaluateAudioUsesTextRule(t *testing.T) {
	engine := answer_engine.NewWithPicker(firstPicker)
	stage := textStage()
	stage.Type = catalog.TypeAudio

	assert.True(t, engine.Evaluate(stage, " answer ").Correct)
	assert.False(t, engine.Evaluate(stage, "wrong").Correct)
}

func TestEvaluateAlwaysCorrectStages(t *testing.T) {
	engine := answer_engine.NewWithPicker(firstPicker)

	for _, stageType := range []catalog.StageType{catalog.TypeColorTrick, catalog.TypeChoosePerson} {
		stage := &catalog.Stage{Type: stageType, CorrectMessage: "ok"}
		verdict := engine.Evaluate(stage, "anything at all")
		assert.True(t, verdict.Correct)
		assert.Equal(t, "ok", verdict.Message)
	}
}

func TestEvaluateCaptcha(t *testing.T) {
	engine := answer_engine.NewWithPicker(firstPicker)
	stage := captchaStage()

	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"exact order", "1,0,3", true},
		{"with spaces", " 1 , 0 , 3 ", true},
		{"one index off", "1,0,2", false},
		{"wrong order", "0,1,3", false},
		{"too short", "1,0", false},
		{"too long", "1,0,3,2", false},
		{"non-integer tokens", "a,b,c", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := engine.Evaluate(stage, tt.answer)
			assert.Equal(t, tt.correct, verdict.Correct)
		})
	}
}

func TestEvaluateComplexCaptcha(t *testing.T) {
	engine := answer_engine.NewWithPicker(firstPicker)
	stage := complexStage()

	tests := []struct {
		name    string
		answer  string
		correct bool
		message string
	}{
		{"both parts correct", `{"part_a":[1],"part_b":[[0,3,6]]}`, true, "Done."},
		{"part b order independent", `{"part_a":[1],"part_b":[[6,0,3]]}`, true, "Done."},
		{"part b wrong set", `{"part_a":[1],"part_b":[[0,3,5]]}`, false, "Nope."},
		{"part b too few indices", `{"part_a":[1],"part_b":[[0,3]]}`, false, "Nope."},
		{"part b missing round", `{"part_a":[1],"part_b":[]}`, false, "Nope."},
		{"part a wrong choice with custom message", `{"part_a":[0],"part_b":[[0,3,6]]}`, false, "Definitely not that one."},
		{"part a missing answers", `{"part_a":[],"part_b":[[0,3,6]]}`, false, "Nope."},
		{"missing fields", `{}`, false, "Nope."},
		{"not json", "hello", false, "Nope."},
		{"wrong types", `{"part_a":"x","part_b":3}`, false, "Nope."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := engine.Evaluate(stage, tt.answer)
			assert.Equal(t, tt.correct, verdict.Correct)
			assert.Equal(t, tt.message, verdict.Message)
		})
	}
}

func TestWrongMessageSelection(t *testing.T) {
	stage := textStage()

	t.Run("picker selects among stage messages", func(t *testing.T) {
		engine := answer_engine.NewWithPicker(func(n int) int {
			assert.Equal(t, 2, n)
			return 1
		})
		verdict := engine.Evaluate(stage, "wrong")
		assert.Equal(t, "Try again.", verdict.Message)
	})

	t.Run("default message when stage defines none", func(t *testing.T) {
		engine := answer_engine.NewWithPicker(func(n int) int {
			t.Fatal("picker must not be called without messages")
			return 0
		})
		bare := textStage()
		bare.WrongMessages = nil
		verdict := engine.Evaluate(bare, "wrong")
		assert.Equal(t, answer_engine.DefaultWrongMessage, verdict.Message)
	})
}
