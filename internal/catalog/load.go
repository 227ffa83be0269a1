package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Raw YAML shape of the catalog document. Every type's fields live side by
// side here; Load sorts them into the right Stage variant and rejects stages
// that are missing what their declared type needs.
type stageDoc struct {
	Type           string   `yaml:"type"`
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	PhotoKeys      []string `yaml:"photo_keys"`
	CorrectMessage string   `yaml:"correct_message"`
	WrongMessages  []string `yaml:"wrong_messages"`

	Answer        string   `yaml:"answer"`
	AnswerAliases []string `yaml:"answer_aliases"`

	Questions []struct {
		Text        string   `yaml:"text"`
		Options     []string `yaml:"options"`
		AnswerIndex *int     `yaml:"answer_index"`
	} `yaml:"questions"`

	PartA struct {
		Questions []struct {
			Text    string `yaml:"text"`
			Options []struct {
				Label    string `yaml:"label"`
				PhotoKey string `yaml:"photo_key"`
			} `yaml:"options"`
			CorrectIndex  *int              `yaml:"correct_index"`
			WrongMessages map[string]string `yaml:"wrong_messages"`
		} `yaml:"questions"`
	} `yaml:"part_a"`

	PartB struct {
		Rounds []struct {
			Instruction    string   `yaml:"instruction"`
			GridKeys       []string `yaml:"grid_keys"`
			CorrectIndices []int    `yaml:"correct_indices"`
		} `yaml:"rounds"`
	} `yaml:"part_b"`
}

type catalogDoc struct {
	Puzzles map[int]stageDoc `yaml:"puzzles"`
}

// Load reads the stage catalog from the given YAML document. It returns an
// error on any malformed or incomplete stage so the process fails fast at
// startup instead of misbehaving mid-game.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a Catalog from raw YAML bytes.
func Parse(raw []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Puzzles) == 0 {
		return nil, fmt.Errorf("catalog defines no puzzles")
	}

	stages := make(map[int]*Stage, len(doc.Puzzles))
	for number, sd := range doc.Puzzles {
		stage, err := buildStage(number, sd)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", number, err)
		}
		stages[number] = stage
	}
	return &Catalog{stages: stages}, nil
}

func buildStage(number int, sd stageDoc) (*Stage, error) {
	stage := &Stage{
		Number:         number,
		Type:           StageType(sd.Type),
		Title:          sd.Title,
		Description:    sd.Description,
		PhotoKeys:      sd.PhotoKeys,
		CorrectMessage: sd.CorrectMessage,
		WrongMessages:  sd.WrongMessages,
	}

	switch stage.Type {
	case TypePlainText, TypeAudio:
		if sd.Answer == "" {
			return nil, fmt.Errorf("type %s requires an answer", sd.Type)
		}
		stage.Text = &TextSpec{Answer: sd.Answer, Aliases: sd.AnswerAliases}

	case TypeCaptcha:
		if len(sd.Questions) == 0 {
			return nil, fmt.Errorf("type captcha requires questions")
		}
		spec := &CaptchaSpec{Questions: make([]CaptchaQuestion, 0, len(sd.Questions))}
		for i, q := range sd.Questions {
			if q.AnswerIndex == nil {
				return nil, fmt.Errorf("question %d is missing answer_index", i)
			}
			if *q.AnswerIndex < 0 || *q.AnswerIndex >= len(q.Options) {
				return nil, fmt.Errorf("question %d answer_index %d out of range", i, *q.AnswerIndex)
			}
			spec.Questions = append(spec.Questions, CaptchaQuestion{
				Text:        q.Text,
				Options:     q.Options,
				AnswerIndex: *q.AnswerIndex,
			})
		}
		stage.Captcha = spec

	case TypeComplexCaptcha:
		if len(sd.PartA.Questions) == 0 || len(sd.PartB.Rounds) == 0 {
			return nil, fmt.Errorf("type complex_captcha requires part_a questions and part_b rounds")
		}
		spec := &ComplexSpec{}
		for i, q := range sd.PartA.Questions {
			if q.CorrectIndex == nil {
				return nil, fmt.Errorf("part_a question %d is missing correct_index", i)
			}
			if *q.CorrectIndex < 0 || *q.CorrectIndex >= len(q.Options) {
				return nil, fmt.Errorf("part_a question %d correct_index %d out of range", i, *q.CorrectIndex)
			}
			pq := PartAQuestion{
				Text:          q.Text,
				CorrectIndex:  *q.CorrectIndex,
				WrongMessages: q.WrongMessages,
			}
			for _, opt := range q.Options {
				pq.Options = append(pq.Options, PartAOption{Label: opt.Label, PhotoKey: opt.PhotoKey})
			}
			spec.PartA = append(spec.PartA, pq)
		}
		for i, r := range sd.PartB.Rounds {
			if len(r.CorrectIndices) == 0 {
				return nil, fmt.Errorf("part_b round %d has no correct_indices", i)
			}
			spec.PartB = append(spec.PartB, PartBRound{
				Instruction:    r.Instruction,
				GridKeys:       r.GridKeys,
				CorrectIndices: r.CorrectIndices,
			})
		}
		stage.Complex = spec

	case TypeColorTrick, TypeChoosePerson:
		// Presentation-only stages carry no answer spec.

	default:
		return nil, fmt.Errorf("unknown stage type %q", sd.Type)
	}

	return stage, nil
}
