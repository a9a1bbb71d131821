package response

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
)

var _ formRepo = &formRepoMock{}

type formRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Form, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
