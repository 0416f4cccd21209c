package domain

// WordStatus is the learning state of a word.
type WordStatus string

const (
	WordStatusUnlearned WordStatus = "unlearned"
	WordStatusLearning  WordStatus = "learning"
	WordStatusMastered  WordStatus = "mastered"
)

func (s WordStatus) String() string { return string(s) }

func (s WordStatus) IsValid() bool {
	switch s {
	case WordStatusUnlearned, WordStatusLearning, WordStatusMastered:
		return true
	}
	return false
}

// WordSource records how a word entered the library.
type WordSource string

const (
	WordSourceImported WordSource = "imported"
	WordSourceManual   WordSource = "manual"
)

func (s WordSource) String() string { return string(s) }

func (s WordSource) IsValid() bool {
	switch s {
	case WordSourceImported, WordSourceManual:
		return true
	}
	return false
}

// InfoCompleteness tells which lexical data a word is still missing.
type InfoCompleteness string

const (
	InfoComplete          InfoCompleteness = "complete"
	InfoMissingDefinition InfoCompleteness = "missing-definition"
	InfoMissingAudio      InfoCompleteness = "missing-audio"
)

func (c InfoCompleteness) String() string { return string(c) }

func (c InfoCompleteness) IsValid() bool {
	switch c {
	case InfoComplete, InfoMissingDefinition, InfoMissingAudio:
		return true
	}
	return false
}

// SessionType distinguishes study sessions from review sessions.
type SessionType string

const (
	SessionTypeStudy  SessionType = "study"
	SessionTypeReview SessionType = "review"
)

func (t SessionType) String() string { return string(t) }

func (t SessionType) IsValid() bool {
	switch t {
	case SessionTypeStudy, SessionTypeReview:
		return true
	}
	return false
}

// ActionKind tags an entry in a session's action log.
type ActionKind string

const (
	ActionWordViewed        ActionKind = "word-viewed"
	ActionReviewSuccess     ActionKind = "word-reviewed-success"
	ActionReviewFailure     ActionKind = "word-reviewed-failure"
	ActionMarkedMastered    ActionKind = "word-marked-mastered"
	ActionMarkedNeedsReview ActionKind = "word-marked-needs-review"
	ActionNoteAdded         ActionKind = "note-added"
)

func (k ActionKind) String() string { return string(k) }

func (k ActionKind) IsValid() bool {
	switch k {
	case ActionWordViewed, ActionReviewSuccess, ActionReviewFailure,
		ActionMarkedMastered, ActionMarkedNeedsReview, ActionNoteAdded:
		return true
	}
	return false
}

// ImportJobStatus is the lifecycle state of an import job.
type ImportJobStatus string

const (
	ImportJobPending   ImportJobStatus = "pending"
	ImportJobRunning   ImportJobStatus = "running"
	ImportJobFailed    ImportJobStatus = "failed"
	ImportJobCompleted ImportJobStatus = "completed"
)

func (s ImportJobStatus) String() string { return string(s) }

func (s ImportJobStatus) IsValid() bool {
	switch s {
	case ImportJobPending, ImportJobRunning, ImportJobFailed, ImportJobCompleted:
		return true
	}
	return false
}

// DuplicateAction decides what an import does with a lemma already in the library.
type DuplicateAction string

const (
	DuplicateSkip      DuplicateAction = "skip"
	DuplicateOverwrite DuplicateAction = "overwrite"
)

func (a DuplicateAction) String() string { return string(a) }

func (a DuplicateAction) IsValid() bool {
	return a == DuplicateSkip || a == DuplicateOverwrite
}

// DatabaseAction decides whether an import appends to or replaces the library.
type DatabaseAction string

const (
	DatabaseAppend DatabaseAction = "append"
	DatabaseClear  DatabaseAction = "clear"
)

func (a DatabaseAction) String() string { return string(a) }

func (a DatabaseAction) IsValid() bool {
	return a == DatabaseAppend || a == DatabaseClear
}

// QuizMode is the question style of a quiz.
type QuizMode string

const (
	QuizModeMultipleChoice QuizMode = "multiple-choice"
	QuizModeFillIn         QuizMode = "fill-in"
	QuizModeSpell          QuizMode = "spell"
)

func (m QuizMode) String() string { return string(m) }

func (m QuizMode) IsValid() bool {
	switch m {
	case QuizModeMultipleChoice, QuizModeFillIn, QuizModeSpell:
		return true
	}
	return false
}
