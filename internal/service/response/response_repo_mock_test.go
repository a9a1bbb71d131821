package response

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
)

var _ responseRepo = &responseRepoMock{}

type responseRepoMock struct {
	CreateFunc       func(ctx context.Context, formID uuid.UUID, data map[string]any) (*domain.Response, error)
	ListByFormFunc   func(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error)
	CountByFormFunc  func(ctx context.Context, formID uuid.UUID) (int, error)
	CountByFormsFunc func(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]int, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			FormID uuid.UUID
			Data   map[string]any
		}
		ListByForm []struct {
			Ctx    context.Context
			FormID uuid.UUID
		}
		CountByForm []struct {
			Ctx    context.Context
			FormID uuid.UUID
		}
		CountByForms []struct {
			Ctx     context.Context
			FormIDs []uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockListByForm   sync.RWMutex
	lockCountByForm  sync.RWMutex
	lockCountByForms sync.RWMutex
}

func (mock *responseRepoMock) Create(ctx context.Context, formID uuid.UUID, data map[string]any) (*domain.Response, error) {
	if mock.CreateFunc == nil {
		panic("responseRepoMock.CreateFunc: method is nil but responseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
		Data   map[string]any
	}{Ctx: ctx, FormID: formID, Data: data}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, formID, data)
}

func (mock *responseRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
	Data   map[string]any
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *responseRepoMock) ListByForm(ctx context.Context, formID uuid.UUID) ([]*domain.Response, error) {
	if mock.ListByFormFunc == nil {
		panic("responseRepoMock.ListByFormFunc: method is nil but responseRepo.ListByForm was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
	}{Ctx: ctx, FormID: formID}
	mock.lockListByForm.Lock()
	mock.calls.ListByForm = append(mock.calls.ListByForm, callInfo)
	mock.lockListByForm.Unlock()
	return mock.ListByFormFunc(ctx, formID)
}

func (mock *responseRepoMock) ListByFormCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
} {
	mock.lockListByForm.RLock()
	calls := mock.calls.ListByForm
	mock.lockListByForm.RUnlock()
	return calls
}

func (mock *responseRepoMock) CountByForm(ctx context.Context, formID uuid.UUID) (int, error) {
	if mock.CountByFormFunc == nil {
		panic("responseRepoMock.CountByFormFunc: method is nil but responseRepo.CountByForm was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FormID uuid.UUID
	}{Ctx: ctx, FormID: formID}
	mock.lockCountByForm.Lock()
	mock.calls.CountByForm = append(mock.calls.CountByForm, callInfo)
	mock.lockCountByForm.Unlock()
	return mock.CountByFormFunc(ctx, formID)
}

func (mock *responseRepoMock) CountByFormCalls() []struct {
	Ctx    context.Context
	FormID uuid.UUID
} {
	mock.lockCountByForm.RLock()
	calls := mock.calls.CountByForm
	mock.lockCountByForm.RUnlock()
	return calls
}

func (mock *responseRepoMock) CountByForms(ctx context.Context, formIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if mock.CountByFormsFunc == nil {
		panic("responseRepoMock.CountByFormsFunc: method is nil but responseRepo.CountByForms was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		FormIDs []uuid.UUID
	}{Ctx: ctx, FormIDs: formIDs}
	mock.lockCountByForms.Lock()
	mock.calls.CountByForms = append(mock.calls.CountByForms, callInfo)
	mock.lockCountByForms.Unlock()
	return mock.CountByFormsFunc(ctx, formIDs)
}

func (mock *responseRepoMock) CountByFormsCalls() []struct {
	Ctx     context.Context
	FormIDs []uuid.UUID
} {
	mock.lockCountByForms.RLock()
	calls := mock.calls.CountByForms
	mock.lockCountByForms.RUnlock()
	return calls
}
