package rest

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordbook/internal/domain"
	"github.com/heartmarshall/wordbook/internal/service/dictionary"
)

var _ dictionaryService = &dictionaryServiceMock{}

type dictionaryServiceMock struct {
	CreateWordFunc      func(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error)
	GetWordFunc         func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ListWordsFunc       func(ctx context.Context, filter domain.WordFilter) (*dictionary.ListResult, error)
	UpdateWordFunc      func(ctx context.Context, input dictionary.UpdateWordInput) (*domain.Word, error)
	DeleteWordFunc      func(ctx context.Context, id uuid.UUID) error
	MarkMasteredFunc    func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	MarkNeedsReviewFunc func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	SetStatusFunc       func(ctx context.Context, id uuid.UUID, status domain.WordStatus) (*domain.Word, error)
	ExportCSVFunc       func(ctx context.Context, w io.Writer) (int, error)
	CreateTagFunc       func(ctx context.Context, input dictionary.CreateTagInput) (*domain.Tag, error)
	ListTagsFunc        func(ctx context.Context) ([]domain.Tag, error)
	DeleteTagFunc       func(ctx context.Context, id uuid.UUID) error
	TagWordFunc         func(ctx context.Context, wordID uuid.UUID, tagID uuid.UUID) (*domain.Word, error)
	UntagWordFunc       func(ctx context.Context, wordID uuid.UUID, tagID uuid.UUID) (*domain.Word, error)
	AddNoteFunc         func(ctx context.Context, wordID uuid.UUID, content string) (*domain.Note, error)
	UpdateNoteFunc      func(ctx context.Context, id uuid.UUID, content string) (*domain.Note, error)
	ListNotesFunc       func(ctx context.Context, wordID uuid.UUID) ([]domain.Note, error)
	DeleteNoteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		CreateWord []struct {
			Ctx   context.Context
			Input dictionary.CreateWordInput
		}
		GetWord []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListWords []struct {
			Ctx    context.Context
			Filter domain.WordFilter
		}
		UpdateWord []struct {
			Ctx   context.Context
			Input dictionary.UpdateWordInput
		}
		DeleteWord []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkMastered []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkNeedsReview []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SetStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.WordStatus
		}
		ExportCSV []struct {
			Ctx context.Context
			W   io.Writer
		}
		CreateTag []struct {
			Ctx   context.Context
			Input dictionary.CreateTagInput
		}
		ListTags []struct {
			Ctx context.Context
		}
		DeleteTag []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		TagWord []struct {
			Ctx    context.Context
			WordID uuid.UUID
			TagID  uuid.UUID
		}
		UntagWord []struct {
			Ctx    context.Context
			WordID uuid.UUID
			TagID  uuid.UUID
		}
		AddNote []struct {
			Ctx     context.Context
			WordID  uuid.UUID
			Content string
		}
		UpdateNote []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Content string
		}
		ListNotes []struct {
			Ctx    context.Context
			WordID uuid.UUID
		}
		DeleteNote []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreateWord      sync.RWMutex
	lockGetWord         sync.RWMutex
	lockListWords       sync.RWMutex
	lockUpdateWord      sync.RWMutex
	lockDeleteWord      sync.RWMutex
	lockMarkMastered    sync.RWMutex
	lockMarkNeedsReview sync.RWMutex
	lockSetStatus       sync.RWMutex
	lockExportCSV       sync.RWMutex
	lockCreateTag       sync.RWMutex
	lockListTags        sync.RWMutex
	lockDeleteTag       sync.RWMutex
	lockTagWord         sync.RWMutex
	lockUntagWord       sync.RWMutex
	lockAddNote         sync.RWMutex
	lockUpdateNote      sync.RWMutex
	lockListNotes       sync.RWMutex
	lockDeleteNote      sync.RWMutex
}

func (mock *dictionaryServiceMock) CreateWord(ctx context.Context, input dictionary.CreateWordInput) (*domain.Word, error) {
	if mock.CreateWordFunc == nil {
		panic("dictionaryServiceMock.CreateWordFunc: method is nil but dictionaryService.CreateWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictionary.CreateWordInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateWord.Lock()
	mock.calls.CreateWord = append(mock.calls.CreateWord, callInfo)
	mock.lockCreateWord.Unlock()
	return mock.CreateWordFunc(ctx, input)
}

func (mock *dictionaryServiceMock) CreateWordCalls() []struct {
	Ctx   context.Context
	Input dictionary.CreateWordInput
} {
	mock.lockCreateWord.RLock()
	calls := mock.calls.CreateWord
	mock.lockCreateWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.GetWordFunc == nil {
		panic("dictionaryServiceMock.GetWordFunc: method is nil but dictionaryService.GetWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetWord.Lock()
	mock.calls.GetWord = append(mock.calls.GetWord, callInfo)
	mock.lockGetWord.Unlock()
	return mock.GetWordFunc(ctx, id)
}

func (mock *dictionaryServiceMock) GetWordCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetWord.RLock()
	calls := mock.calls.GetWord
	mock.lockGetWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) ListWords(ctx context.Context, filter domain.WordFilter) (*dictionary.ListResult, error) {
	if mock.ListWordsFunc == nil {
		panic("dictionaryServiceMock.ListWordsFunc: method is nil but dictionaryService.ListWords was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WordFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, filter)
}

func (mock *dictionaryServiceMock) ListWordsCalls() []struct {
	Ctx    context.Context
	Filter domain.WordFilter
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) UpdateWord(ctx context.Context, input dictionary.UpdateWordInput) (*domain.Word, error) {
	if mock.UpdateWordFunc == nil {
		panic("dictionaryServiceMock.UpdateWordFunc: method is nil but dictionaryService.UpdateWord was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictionary.UpdateWordInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateWord.Lock()
	mock.calls.UpdateWord = append(mock.calls.UpdateWord, callInfo)
	mock.lockUpdateWord.Unlock()
	return mock.UpdateWordFunc(ctx, input)
}

func (mock *dictionaryServiceMock) UpdateWordCalls() []struct {
	Ctx   context.Context
	Input dictionary.UpdateWordInput
} {
	mock.lockUpdateWord.RLock()
	calls := mock.calls.UpdateWord
	mock.lockUpdateWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) DeleteWord(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteWordFunc == nil {
		panic("dictionaryServiceMock.DeleteWordFunc: method is nil but dictionaryService.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, id)
}

func (mock *dictionaryServiceMock) DeleteWordCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteWord.RLock()
	calls := mock.calls.DeleteWord
	mock.lockDeleteWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) MarkMastered(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.MarkMasteredFunc == nil {
		panic("dictionaryServiceMock.MarkMasteredFunc: method is nil but dictionaryService.MarkMastered was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkMastered.Lock()
	mock.calls.MarkMastered = append(mock.calls.MarkMastered, callInfo)
	mock.lockMarkMastered.Unlock()
	return mock.MarkMasteredFunc(ctx, id)
}

func (mock *dictionaryServiceMock) MarkMasteredCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkMastered.RLock()
	calls := mock.calls.MarkMastered
	mock.lockMarkMastered.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) MarkNeedsReview(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.MarkNeedsReviewFunc == nil {
		panic("dictionaryServiceMock.MarkNeedsReviewFunc: method is nil but dictionaryService.MarkNeedsReview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkNeedsReview.Lock()
	mock.calls.MarkNeedsReview = append(mock.calls.MarkNeedsReview, callInfo)
	mock.lockMarkNeedsReview.Unlock()
	return mock.MarkNeedsReviewFunc(ctx, id)
}

func (mock *dictionaryServiceMock) MarkNeedsReviewCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkNeedsReview.RLock()
	calls := mock.calls.MarkNeedsReview
	mock.lockMarkNeedsReview.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.WordStatus) (*domain.Word, error) {
	if mock.SetStatusFunc == nil {
		panic("dictionaryServiceMock.SetStatusFunc: method is nil but dictionaryService.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.WordStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *dictionaryServiceMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.WordStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	if mock.ExportCSVFunc == nil {
		panic("dictionaryServiceMock.ExportCSVFunc: method is nil but dictionaryService.ExportCSV was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   io.Writer
	}{Ctx: ctx, W: w}
	mock.lockExportCSV.Lock()
	mock.calls.ExportCSV = append(mock.calls.ExportCSV, callInfo)
	mock.lockExportCSV.Unlock()
	return mock.ExportCSVFunc(ctx, w)
}

func (mock *dictionaryServiceMock) ExportCSVCalls() []struct {
	Ctx context.Context
	W   io.Writer
} {
	mock.lockExportCSV.RLock()
	calls := mock.calls.ExportCSV
	mock.lockExportCSV.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) CreateTag(ctx context.Context, input dictionary.CreateTagInput) (*domain.Tag, error) {
	if mock.CreateTagFunc == nil {
		panic("dictionaryServiceMock.CreateTagFunc: method is nil but dictionaryService.CreateTag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictionary.CreateTagInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTag.Lock()
	mock.calls.CreateTag = append(mock.calls.CreateTag, callInfo)
	mock.lockCreateTag.Unlock()
	return mock.CreateTagFunc(ctx, input)
}

func (mock *dictionaryServiceMock) CreateTagCalls() []struct {
	Ctx   context.Context
	Input dictionary.CreateTagInput
} {
	mock.lockCreateTag.RLock()
	calls := mock.calls.CreateTag
	mock.lockCreateTag.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) ListTags(ctx context.Context) ([]domain.Tag, error) {
	if mock.ListTagsFunc == nil {
		panic("dictionaryServiceMock.ListTagsFunc: method is nil but dictionaryService.ListTags was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTags.Lock()
	mock.calls.ListTags = append(mock.calls.ListTags, callInfo)
	mock.lockListTags.Unlock()
	return mock.ListTagsFunc(ctx)
}

func (mock *dictionaryServiceMock) ListTagsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTags.RLock()
	calls := mock.calls.ListTags
	mock.lockListTags.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) DeleteTag(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteTagFunc == nil {
		panic("dictionaryServiceMock.DeleteTagFunc: method is nil but dictionaryService.DeleteTag was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteTag.Lock()
	mock.calls.DeleteTag = append(mock.calls.DeleteTag, callInfo)
	mock.lockDeleteTag.Unlock()
	return mock.DeleteTagFunc(ctx, id)
}

func (mock *dictionaryServiceMock) DeleteTagCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteTag.RLock()
	calls := mock.calls.DeleteTag
	mock.lockDeleteTag.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) TagWord(ctx context.Context, wordID uuid.UUID, tagID uuid.UUID) (*domain.Word, error) {
	if mock.TagWordFunc == nil {
		panic("dictionaryServiceMock.TagWordFunc: method is nil but dictionaryService.TagWord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
		TagID  uuid.UUID
	}{Ctx: ctx, WordID: wordID, TagID: tagID}
	mock.lockTagWord.Lock()
	mock.calls.TagWord = append(mock.calls.TagWord, callInfo)
	mock.lockTagWord.Unlock()
	return mock.TagWordFunc(ctx, wordID, tagID)
}

func (mock *dictionaryServiceMock) TagWordCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
	TagID  uuid.UUID
} {
	mock.lockTagWord.RLock()
	calls := mock.calls.TagWord
	mock.lockTagWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) UntagWord(ctx context.Context, wordID uuid.UUID, tagID uuid.UUID) (*domain.Word, error) {
	if mock.UntagWordFunc == nil {
		panic("dictionaryServiceMock.UntagWordFunc: method is nil but dictionaryService.UntagWord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
		TagID  uuid.UUID
	}{Ctx: ctx, WordID: wordID, TagID: tagID}
	mock.lockUntagWord.Lock()
	mock.calls.UntagWord = append(mock.calls.UntagWord, callInfo)
	mock.lockUntagWord.Unlock()
	return mock.UntagWordFunc(ctx, wordID, tagID)
}

func (mock *dictionaryServiceMock) UntagWordCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
	TagID  uuid.UUID
} {
	mock.lockUntagWord.RLock()
	calls := mock.calls.UntagWord
	mock.lockUntagWord.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) AddNote(ctx context.Context, wordID uuid.UUID, content string) (*domain.Note, error) {
	if mock.AddNoteFunc == nil {
		panic("dictionaryServiceMock.AddNoteFunc: method is nil but dictionaryService.AddNote was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		WordID  uuid.UUID
		Content string
	}{Ctx: ctx, WordID: wordID, Content: content}
	mock.lockAddNote.Lock()
	mock.calls.AddNote = append(mock.calls.AddNote, callInfo)
	mock.lockAddNote.Unlock()
	return mock.AddNoteFunc(ctx, wordID, content)
}

func (mock *dictionaryServiceMock) AddNoteCalls() []struct {
	Ctx     context.Context
	WordID  uuid.UUID
	Content string
} {
	mock.lockAddNote.RLock()
	calls := mock.calls.AddNote
	mock.lockAddNote.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) UpdateNote(ctx context.Context, id uuid.UUID, content string) (*domain.Note, error) {
	if mock.UpdateNoteFunc == nil {
		panic("dictionaryServiceMock.UpdateNoteFunc: method is nil but dictionaryService.UpdateNote was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Content string
	}{Ctx: ctx, ID: id, Content: content}
	mock.lockUpdateNote.Lock()
	mock.calls.UpdateNote = append(mock.calls.UpdateNote, callInfo)
	mock.lockUpdateNote.Unlock()
	return mock.UpdateNoteFunc(ctx, id, content)
}

func (mock *dictionaryServiceMock) UpdateNoteCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Content string
} {
	mock.lockUpdateNote.RLock()
	calls := mock.calls.UpdateNote
	mock.lockUpdateNote.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) ListNotes(ctx context.Context, wordID uuid.UUID) ([]domain.Note, error) {
	if mock.ListNotesFunc == nil {
		panic("dictionaryServiceMock.ListNotesFunc: method is nil but dictionaryService.ListNotes was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		WordID uuid.UUID
	}{Ctx: ctx, WordID: wordID}
	mock.lockListNotes.Lock()
	mock.calls.ListNotes = append(mock.calls.ListNotes, callInfo)
	mock.lockListNotes.Unlock()
	return mock.ListNotesFunc(ctx, wordID)
}

func (mock *dictionaryServiceMock) ListNotesCalls() []struct {
	Ctx    context.Context
	WordID uuid.UUID
} {
	mock.lockListNotes.RLock()
	calls := mock.calls.ListNotes
	mock.lockListNotes.RUnlock()
	return calls
}

func (mock *dictionaryServiceMock) DeleteNote(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteNoteFunc == nil {
		panic("dictionaryServiceMock.DeleteNoteFunc: method is nil but dictionaryService.DeleteNote was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteNote.Lock()
	mock.calls.DeleteNote = append(mock.calls.DeleteNote, callInfo)
	mock.lockDeleteNote.Unlock()
	return mock.DeleteNoteFunc(ctx, id)
}

func (mock *dictionaryServiceMock) DeleteNoteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteNote.RLock()
	calls := mock.calls.DeleteNote
	mock.lockDeleteNote.RUnlock()
	return calls
}
