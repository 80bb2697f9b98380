package rest

import (
	"context"
	"sync"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
	"github.com/leettrack-dev/leettrack-backend/internal/service/tag"
	"github.com/leettrack-dev/leettrack-backend/internal/service/tracker"
)

var _ trackerService = &trackerServiceMock{}

type trackerServiceMock struct {
	ListsFunc                 func(ctx context.Context) []domain.ListInfo
	ListQuestionsFunc         func(ctx context.Context, name string) ([]domain.QuestionRecord, error)
	IntersectionsFunc         func(ctx context.Context) []domain.Intersection
	IntersectionQuestionsFunc func(ctx context.Context, id string) ([]domain.QuestionRecord, error)
	MetricsFunc               func(ctx context.Context, name string) (domain.Metrics, error)
	UpdateQuestionFunc        func(ctx context.Context, input tracker.UpdateQuestionInput) (domain.QuestionRecord, error)
	QuestionTagsFunc          func(ctx context.Context, number int) ([]string, error)
	SetQuestionTagsFunc       func(ctx context.Context, input tracker.SetTagsInput) (domain.QuestionRecord, error)

	calls struct {
		UpdateQuestion []struct {
			Input tracker.UpdateQuestionInput
		}
		SetQuestionTags []struct {
			Input tracker.SetTagsInput
		}
	}
	lockUpdateQuestion  sync.RWMutex
	lockSetQuestionTags sync.RWMutex
}

func (mock *trackerServiceMock) Lists(ctx context.Context) []domain.ListInfo {
	return mock.ListsFunc(ctx)
}

func (mock *trackerServiceMock) ListQuestions(ctx context.Context, name string) ([]domain.QuestionRecord, error) {
	return mock.ListQuestionsFunc(ctx, name)
}

func (mock *trackerServiceMock) Intersections(ctx context.Context) []domain.Intersection {
	return mock.IntersectionsFunc(ctx)
}

func (mock *trackerServiceMock) IntersectionQuestions(ctx context.Context, id string) ([]domain.QuestionRecord, error) {
	return mock.IntersectionQuestionsFunc(ctx, id)
}

func (mock *trackerServiceMock) Metrics(ctx context.Context, name string) (domain.Metrics, error) {
	return mock.MetricsFunc(ctx, name)
}

func (mock *trackerServiceMock) UpdateQuestion(ctx context.Context, input tracker.UpdateQuestionInput) (domain.QuestionRecord, error) {
	mock.lockUpdateQuestion.Lock()
	mock.calls.UpdateQuestion = append(mock.calls.UpdateQuestion,
		struct{ Input tracker.UpdateQuestionInput }{Input: input})
	mock.lockUpdateQuestion.Unlock()
	return mock.UpdateQuestionFunc(ctx, input)
}

func (mock *trackerServiceMock) UpdateQuestionCalls() []struct{ Input tracker.UpdateQuestionInput } {
	mock.lockUpdateQuestion.RLock()
	calls := mock.calls.UpdateQuestion
	mock.lockUpdateQuestion.RUnlock()
	return calls
}

func (mock *trackerServiceMock) QuestionTags(ctx context.Context, number int) ([]string, error) {
	return mock.QuestionTagsFunc(ctx, number)
}

func (mock *trackerServiceMock) SetQuestionTags(ctx context.Context, input tracker.SetTagsInput) (domain.QuestionRecord, error) {
	mock.lockSetQuestionTags.Lock()
	mock.calls.SetQuestionTags = append(mock.calls.SetQuestionTags,
		struct{ Input tracker.SetTagsInput }{Input: input})
	mock.lockSetQuestionTags.Unlock()
	return mock.SetQuestionTagsFunc(ctx, input)
}

func (mock *trackerServiceMock) SetQuestionTagsCalls() []struct{ Input tracker.SetTagsInput } {
	mock.lockSetQuestionTags.RLock()
	calls := mock.calls.SetQuestionTags
	mock.lockSetQuestionTags.RUnlock()
	return calls
}

var _ tagService = &tagServiceMock{}

type tagServiceMock struct {
	ListTagsFunc  func(ctx context.Context) ([]domain.Tag, error)
	CreateTagFunc func(ctx context.Context, input tag.CreateTagInput) (domain.Tag, error)
	DeleteTagFunc func(ctx context.Context, input tag.DeleteTagInput) error
}

func (mock *tagServiceMock) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return mock.ListTagsFunc(ctx)
}

func (mock *tagServiceMock) CreateTag(ctx context.Context, input tag.CreateTagInput) (domain.Tag, error) {
	return mock.CreateTagFunc(ctx, input)
}

func (mock *tagServiceMock) DeleteTag(ctx context.Context, input tag.DeleteTagInput) error {
	return mock.DeleteTagFunc(ctx, input)
}

var _ authService = &authServiceMock{}

type authServiceMock struct {
	CurrentUserFunc func(ctx context.Context) (*domain.Session, error)
	LogoutFunc      func(ctx context.Context) error
}

func (mock *authServiceMock) CurrentUser(ctx context.Context) (*domain.Session, error) {
	return mock.CurrentUserFunc(ctx)
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	return mock.LogoutFunc(ctx)
}
