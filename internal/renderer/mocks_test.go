package renderer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/quickforms/internal/domain"
	"github.com/heartmarshall/quickforms/internal/service/response"
)

var _ formSource = &formSourceMock{}

type formSourceMock struct {
	GetFormFunc func(ctx context.Context, id uuid.UUID) (*domain.Form, bool, error)

	calls struct {
		GetForm []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetForm sync.RWMutex
}

func (mock *formSourceMock) GetForm(ctx context.Context, id uuid.UUID) (*domain.Form, bool, error) {
	if mock.GetFormFunc == nil {
		panic("formSourceMock.GetFormFunc: method is nil but formSource.GetForm was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetForm.Lock()
	mock.calls.GetForm = append(mock.calls.GetForm, callInfo)
	mock.lockGetForm.Unlock()
	return mock.GetFormFunc(ctx, id)
}

func (mock *formSourceMock) GetFormCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetForm.RLock()
	calls := mock.calls.GetForm
	mock.lockGetForm.RUnlock()
	return calls
}

var _ responseSink = &responseSinkMock{}

type responseSinkMock struct {
	SubmitFunc func(ctx context.Context, input response.SubmitResponseInput) (*domain.Response, error)

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input response.SubmitResponseInput
		}
	}
	lockSubmit sync.RWMutex
}

func (mock *responseSinkMock) Submit(ctx context.Context, input response.SubmitResponseInput) (*domain.Response, error) {
	if mock.SubmitFunc == nil {
		panic("responseSinkMock.SubmitFunc: method is nil but responseSink.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input response.SubmitResponseInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *responseSinkMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input response.SubmitResponseInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
