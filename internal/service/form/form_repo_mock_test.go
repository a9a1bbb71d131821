package form

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
)

var _ formRepo = &formRepoMock{}

type formRepoMock struct {
	CreateFunc  func(ctx context.Context, f *domain.Form) (*domain.Form, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Form, error)
	ListFunc    func(ctx context.Context) ([]*domain.Form, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Form *domain.Form
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *formRepoMock) Create(ctx context.Context, f *domain.Form) (*domain.Form, error) {
	if mock.CreateFunc == nil {
		panic("formRepoMock.CreateFunc: method is nil but formRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Form *domain.Form
	}{Ctx: ctx, Form: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *formRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Form *domain.Form
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *formRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Form, error) {
	if mock.GetByIDFunc == nil {
		panic("formRepoMock.GetByIDFunc: method is nil but formRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *formRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *formRepoMock) List(ctx context.Context) ([]*domain.Form, error) {
	if mock.ListFunc == nil {
		panic("formRepoMock.ListFunc: method is nil but formRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *formRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
