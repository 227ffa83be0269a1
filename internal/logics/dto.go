package logics

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the session record as the frontend sees it. Expired is
// derived from the expiry timestamp, never stored.
type SessionStatus struct {
	SessionID       uuid.UUID `json:"session_id"`
	CurrentStage    int       `json:"current_stage"`
	StartedAt       time.Time `json:"started_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	Completed       bool      `json:"completed"`
	Expired         bool      `json:"expired"`
	ChallengeStatus string    `json:"challenge_status"`
	TrollingPhase   string    `json:"trolling_phase"`
}

// PuzzleResult is the outcome of one answer submission.
type PuzzleResult struct {
	Correct   bool   `json:"correct"`
	Message   string `json:"message"`
	NextStage *int   `json:"next_stage,omitempty"`
}

// PuzzleData is the presentation payload of a stage, with media keys already
// resolved to presigned URLs.
type PuzzleData struct {
	Stage       int          `json:"stage"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        string       `json:"type"`
	PhotoURLs   []string     `json:"photo_urls"`
	Options     []string     `json:"options"`
	AudioURL    *string      `json:"audio_url,omitempty"`
	ComplexData *ComplexData `json:"complex_data,omitempty"`
}

// ComplexData is the nested two-part captcha payload.
type ComplexData struct {
	PartA ComplexPartA `json:"part_a"`
	PartB ComplexPartB `json:"part_b"`
}

type ComplexPartA struct {
	Questions []ComplexQuestionView `json:"questions"`
}

type ComplexQuestionView struct {
	Text    string              `json:"text"`
	Options []ComplexOptionView `json:"options"`
}

type ComplexOptionView struct {
	Label    string `json:"label"`
	PhotoURL string `json:"photo_url"`
}

type ComplexPartB struct {
	Rounds []ComplexRoundView `json:"rounds"`
}

type ComplexRoundView struct {
	Instruction string   `json:"instruction"`
	GridURLs    []string `json:"grid_urls"`
}

// CaptchaPayload is the response of GET /puzzle/:stage/captcha. For captcha
// stages only Questions is set; for complex_captcha stages PartA/PartB are.
type CaptchaPayload struct {
	Questions []CaptchaQuestionView `json:"questions,omitempty"`
	PartA     *ComplexPartA         `json:"part_a,omitempty"`
	PartB     *ComplexPartB         `json:"part_b,omitempty"`
}

type CaptchaQuestionView struct {
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	PhotoURL *string  `json:"photo_url"`
}

// AdminAttempt is one row of a session's attempt history in the admin view.
type AdminAttempt struct {
	Stage     int       `json:"stage"`
	Answer    string    `json:"answer"`
	Correct   bool      `json:"correct"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminSessionInfo is the per-session row of the admin dashboard list.
type AdminSessionInfo struct {
	SessionID       uuid.UUID `json:"session_id"`
	Fingerprint     string    `json:"fingerprint"`
	IPAddress       *string   `json:"ip_address"`
	CurrentStage    int       `json:"current_stage"`
	ChallengeStatus string    `json:"challenge_status"`
	StartedAt       time.Time `json:"started_at"`
	Completed       bool      `json:"completed"`
}

// AdminSessionDetail is one session with its full attempt history and
// correct/incorrect rollups.
type AdminSessionDetail struct {
	SessionID       uuid.UUID      `json:"session_id"`
	Fingerprint     string         `json:"fingerprint"`
	IPAddress       *string        `json:"ip_address"`
	CurrentStage    int            `json:"current_stage"`
	ChallengeStatus string         `json:"challenge_status"`
	StartedAt       time.Time      `json:"started_at"`
	ExpiresAt       time.Time      `json:"expires_at"`
	Completed       bool           `json:"completed"`
	Attempts        []AdminAttempt `json:"attempts"`
	TotalCorrect    int            `json:"total_correct"`
	TotalWrong      int            `json:"total_wrong"`
}
