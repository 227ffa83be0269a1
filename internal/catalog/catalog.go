package catalog

// StageType tags one of the closed set of puzzle kinds the engine knows
// how to present and validate.
type StageType string

const (
	TypePlainText      StageType = "plain_text"
	TypeCaptcha        StageType = "captcha"
	TypeComplexCaptcha StageType = "complex_captcha"
	TypeAudio          StageType = "audio"
	TypeColorTrick     StageType = "color_trick"
	TypeChoosePerson   StageType = "choose_person"
)

// Stage is one step of the quest. Exactly one of the variant pointers is
// non-nil, matching Type, which is enforced at load time so the validation
// engine never has to re-check field presence.
type Stage struct {
	Number         int
	Type           StageType
	Title          string
	Description    string
	PhotoKeys      []string
	CorrectMessage string
	WrongMessages  []string

	// Text carries the expected answer for plain_text and audio stages.
	Text *TextSpec
	// Captcha carries the ordered question list for captcha stages.
	Captcha *CaptchaSpec
	// Complex carries the two nested question groups for complex_captcha stages.
	Complex *ComplexSpec
}

// TextSpec holds the expected answer and its accepted aliases.
type TextSpec struct {
	Answer  string
	Aliases []string
}

// CaptchaQuestion is one multiple-choice question; AnswerIndex points into
// Options.
type CaptchaQuestion struct {
	Text        string
	Options     []string
	AnswerIndex int
}

type CaptchaSpec struct {
	Questions []CaptchaQuestion
}

// PartAOption is a labeled photo option of a complex-captcha part-A question.
type PartAOption struct {
	Label    string
	PhotoKey string
}

// PartAQuestion carries an optional per-choice wrong message, keyed by the
// stringified chosen option index.
type PartAQuestion struct {
	Text          string
	Options       []PartAOption
	CorrectIndex  int
	WrongMessages map[string]string
}

// PartBRound is one grid-selection round; CorrectIndices is compared as a
// set, order does not matter.
type PartBRound struct {
	Instruction    string
	GridKeys       []string
	CorrectIndices []int
}

type ComplexSpec struct {
	PartA []PartAQuestion
	PartB []PartBRound
}

// Catalog is the immutable table of stages, loaded once at startup.
type Catalog struct {
	stages map[int]*Stage
}

// Lookup returns the stage definition for the given number.
func (c *Catalog) Lookup(stage int) (*Stage, bool) {
	s, ok := c.stages[stage]
	return s, ok
}

// TotalStages is derived from the catalog size.
func (c *Catalog) TotalStages() int {
	return len(c.stages)
}
