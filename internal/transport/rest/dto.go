package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/service/importer"
	"github.com/heartmarshall/wordbook/internal/service/quiz"
)

type wordResponse struct {
	ID               string     `json:"id"`
	Lemma            string     `json:"lemma"`
	PartOfSpeech     string     `json:"partOfSpeech"`
	Phonetics        []string   `json:"phonetics"`
	AudioURLs        []string   `json:"audioUrls"`
	DefinitionEn     string     `json:"definitionEn"`
	DefinitionLocal  string     `json:"definitionLocal"`
	Examples         []string   `json:"examples"`
	Synonyms         []string   `json:"synonyms"`
	Antonyms         []string   `json:"antonyms"`
	Status           string     `json:"status"`
	NeedsReview      bool       `json:"needsReview"`
	LastStudiedAt    *time.Time `json:"lastStudiedAt"`
	ReviewDueAt      *time.Time `json:"reviewDueAt"`
	Notes            string     `json:"notes"`
	Source           string     `json:"source"`
	InfoCompleteness string     `json:"infoCompleteness"`
	Tags             []string   `json:"tags"`
	SetIDs           []string   `json:"setIds"`
}

func toWordResponse(w domain.Word) wordResponse {
	return wordResponse{
		ID:               w.ID.String(),
		Lemma:            w.Lemma,
		PartOfSpeech:     w.PartOfSpeech,
		Phonetics:        nonNil(w.Phonetics),
		AudioURLs:        nonNil(w.AudioURLs),
		DefinitionEn:     w.DefinitionEn,
		DefinitionLocal:  w.DefinitionLocal,
		Examples:         nonNil(w.Examples),
		Synonyms:         nonNil(w.Synonyms),
		Antonyms:         nonNil(w.Antonyms),
		Status:           w.Status.String(),
		NeedsReview:      w.NeedsReview,
		LastStudiedAt:    w.LastStudiedAt,
		ReviewDueAt:      w.ReviewDueAt,
		Notes:            w.Notes,
		Source:           w.Source.String(),
		InfoCompleteness: string(w.InfoCompleteness),
		Tags:             idStrings(w.Tags),
		SetIDs:           idStrings(w.SetIDs),
	}
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, len(words))
	for i, w := range words {
		out[i] = toWordResponse(w)
	}
	return out
}

type tagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	WordCount int       `json:"wordCount"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTagResponse(t domain.Tag) tagResponse {
	return tagResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Color:     t.Color,
		WordCount: t.WordCount,
		CreatedAt: t.CreatedAt,
	}
}

type noteResponse struct {
	ID        string    `json:"id"`
	WordID    string    `json:"wordId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toNoteResponse(n domain.Note) noteResponse {
	return noteResponse{
		ID:        n.ID.String(),
		WordID:    n.WordID.String(),
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type actionResponse struct {
	Seq    int       `json:"seq"`
	Kind   string    `json:"kind"`
	WordID *string   `json:"wordId,omitempty"`
	At     time.Time `json:"at"`
}

func toActionResponse(a domain.SessionAction) actionResponse {
	resp := actionResponse{Seq: a.Seq, Kind: string(a.Kind), At: a.At}
	if a.WordID != nil {
		id := a.WordID.String()
		resp.WordID = &id
	}
	return resp
}

type sessionResponse struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	WordIDs    []string         `json:"wordIds"`
	StartedAt  time.Time        `json:"startedAt"`
	EndedAt    *time.Time       `json:"endedAt"`
	DurationMs int64            `json:"durationMs"`
	Actions    []actionResponse `json:"actions"`
}

func toSessionResponse(s domain.LearningSession) sessionResponse {
	actions := make([]actionResponse, len(s.Actions))
	for i, a := range s.Actions {
		actions[i] = toActionResponse(a)
	}
	return sessionResponse{
		ID:         s.ID.String(),
		Type:       string(s.Type),
		WordIDs:    idStrings(s.WordIDs),
		StartedAt:  s.StartedAt,
		EndedAt:    s.EndedAt,
		DurationMs: s.DurationMs,
		Actions:    actions,
	}
}

type progressResponse struct {
	TotalWords        int            `json:"totalWords"`
	MasteredWords     int            `json:"masteredWords"`
	LearningWords     int            `json:"learningWords"`
	StreakDays        int            `json:"streakDays"`
	TotalStudyMinutes int            `json:"totalStudyMinutes"`
	LastActivityAt    *time.Time     `json:"lastActivityAt"`
	Heatmap           map[string]int `json:"heatmap"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func toProgressResponse(p domain.UserProgress) progressResponse {
	heatmap := p.Heatmap
	if heatmap == nil {
		heatmap = map[string]int{}
	}
	return progressResponse{
		TotalWords:        p.TotalWords,
		MasteredWords:     p.MasteredWords,
		LearningWords:     p.LearningWords,
		StreakDays:        p.StreakDays,
		TotalStudyMinutes: p.TotalStudyMinutes,
		LastActivityAt:    p.LastActivityAt,
		Heatmap:           heatmap,
		UpdatedAt:         p.UpdatedAt,
	}
}

type rowErrorResponse struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type importJobResponse struct {
	ID             string             `json:"id"`
	Filename       string             `json:"filename"`
	TotalWords     int                `json:"totalWords"`
	ProcessedWords int                `json:"processedWords"`
	Status         string             `json:"status"`
	Errors         []rowErrorResponse `json:"errors"`
	StartedAt      time.Time          `json:"startedAt"`
	EndedAt        *time.Time         `json:"endedAt"`
}

func toImportJobResponse(j domain.ImportJob) importJobResponse {
	errs := make([]rowErrorResponse, len(j.Errors))
	for i, e := range j.Errors {
		errs[i] = rowErrorResponse{Row: e.Row, Message: e.Message}
	}
	return importJobResponse{
		ID:             j.ID.String(),
		Filename:       j.Filename,
		TotalWords:     j.TotalWords,
		ProcessedWords: j.ProcessedWords,
		Status:         string(j.Status),
		Errors:         errs,
		StartedAt:      j.StartedAt,
		EndedAt:        j.EndedAt,
	}
}

type enrichmentResponse struct {
	Looked   int `json:"looked"`
	Enriched int `json:"enriched"`
	NotFound int `json:"notFound"`
	Failed   int `json:"failed"`
}

type importResultResponse struct {
	Job            importJobResponse   `json:"job"`
	SuccessCount   int                 `json:"successCount"`
	ErrorCount     int                 `json:"errorCount"`
	DuplicateCount int                 `json:"duplicateCount"`
	SkippedCount   int                 `json:"skippedCount"`
	Enrichment     *enrichmentResponse `json:"enrichment,omitempty"`
}

func toImportResultResponse(r importer.ImportResult) importResultResponse {
	resp := importResultResponse{
		Job:            toImportJobResponse(r.Job),
		SuccessCount:   r.SuccessCount,
		ErrorCount:     r.ErrorCount,
		DuplicateCount: r.DuplicateCount,
		SkippedCount:   r.SkippedCount,
	}
	if r.Enrichment != nil {
		resp.Enrichment = &enrichmentResponse{
			Looked:   r.Enrichment.Looked,
			Enriched: r.Enrichment.Enriched,
			NotFound: r.Enrichment.NotFound,
			Failed:   r.Enrichment.Failed,
		}
	}
	return resp
}

type quizResponse struct {
	ID           string    `json:"id"`
	Mode         string    `json:"mode"`
	CreatedAt    time.Time `json:"createdAt"`
	QuestionIDs  []string  `json:"questionIds"`
	ScorePercent int       `json:"scorePercent"`
}

func toQuizResponse(q domain.Quiz) quizResponse {
	return quizResponse{
		ID:           q.ID.String(),
		Mode:         q.Mode.String(),
		CreatedAt:    q.CreatedAt,
		QuestionIDs:  idStrings(q.QuestionIDs),
		ScorePercent: q.ScorePercent,
	}
}

// questionResponse hides the correct answer until the question has been
// answered.
type questionResponse struct {
	ID            string   `json:"id"`
	QuizID        string   `json:"quizId"`
	WordID        string   `json:"wordId"`
	Prompt        string   `json:"prompt"`
	Choices       []string `json:"choices"`
	Answered      bool     `json:"answered"`
	UserAnswer    string   `json:"userAnswer,omitempty"`
	IsCorrect     bool     `json:"isCorrect"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
}

func toQuestionResponse(q domain.QuizQuestion) questionResponse {
	resp := questionResponse{
		ID:      q.ID.String(),
		QuizID:  q.QuizID.String(),
		WordID:  q.WordID.String(),
		Prompt:  q.Prompt,
		Choices: nonNil(q.Choices),
	}
	if q.UserAnswer != "" {
		resp.Answered = true
		resp.UserAnswer = q.UserAnswer
		resp.IsCorrect = q.IsCorrect
		resp.CorrectAnswer = q.CorrectAnswer
	}
	return resp
}

type scoreResponse struct {
	QuizID               string   `json:"quizId"`
	TotalQuestions       int      `json:"totalQuestions"`
	CorrectAnswers       int      `json:"correctAnswers"`
	IncorrectAnswers     int      `json:"incorrectAnswers"`
	ScorePercent         int      `json:"scorePercent"`
	IncorrectQuestionIDs []string `json:"incorrectQuestionIds"`
}

func toScoreResponse(s quiz.Score) scoreResponse {
	return scoreResponse{
		QuizID:               s.QuizID.String(),
		TotalQuestions:       s.TotalQuestions,
		CorrectAnswers:       s.CorrectAnswers,
		IncorrectAnswers:     s.IncorrectAnswers,
		ScorePercent:         s.ScorePercent,
		IncorrectQuestionIDs: idStrings(s.IncorrectQuestionIDs),
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
