package usecase

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockProfileUsecase is a testify mock of ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

type MockProfileUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProfileUsecase) EXPECT() *MockProfileUsecase_Expecter {
	return &MockProfileUsecase_Expecter{mock: &_m.Mock}
}

// CreateProfile provides a mock function with given fields: ctx, input
func (_m *MockProfileUsecase) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput) (*usecase.ProfileOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateProfile")
	}

	var r0 *usecase.ProfileOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateProfileInput) (*usecase.ProfileOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateProfileInput) *usecase.ProfileOutput); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ProfileOutput)
	}
	if rf, ok := ret.Get(1).(func(context.Context, *usecase.CreateProfileInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProfileUsecase_CreateProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateProfile'
type MockProfileUsecase_CreateProfile_Call struct {
	*mock.Call
}

// CreateProfile is a helper method to define mock.On call
func (_e *MockProfileUsecase_Expecter) CreateProfile(ctx interface{}, input interface{}) *MockProfileUsecase_CreateProfile_Call {
	return &MockProfileUsecase_CreateProfile_Call{Call: _e.mock.On("CreateProfile", ctx, input)}
}

func (_c *MockProfileUsecase_CreateProfile_Call) Run(run func(ctx context.Context, input *usecase.CreateProfileInput)) *MockProfileUsecase_CreateProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.CreateProfileInput))
	})

	return _c
}

func (_c *MockProfileUsecase_CreateProfile_Call) Return(_a0 *usecase.ProfileOutput, _a1 error) *MockProfileUsecase_CreateProfile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_CreateProfile_Call) RunAndReturn(run func(context.Context, *usecase.CreateProfileInput) (*usecase.ProfileOutput, error)) *MockProfileUsecase_CreateProfile_Call {
	_c.Call.Return(run)

	return _c
}

// GetBadge provides a mock function with given fields: ctx, serviceNumber
func (_m *MockProfileUsecase) GetBadge(ctx context.Context, serviceNumber string) ([]byte, error) {
	ret := _m.Called(ctx, serviceNumber)

	if len(ret) == 0 {
		panic("no return value specified for GetBadge")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]byte, error)); ok {
		return rf(ctx, serviceNumber)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []byte); ok {
		r0 = rf(ctx, serviceNumber)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, serviceNumber)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProfileUsecase_GetBadge_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBadge'
type MockProfileUsecase_GetBadge_Call struct {
	*mock.Call
}

// GetBadge is a helper method to define mock.On call
func (_e *MockProfileUsecase_Expecter) GetBadge(ctx interface{}, serviceNumber interface{}) *MockProfileUsecase_GetBadge_Call {
	return &MockProfileUsecase_GetBadge_Call{Call: _e.mock.On("GetBadge", ctx, serviceNumber)}
}

func (_c *MockProfileUsecase_GetBadge_Call) Run(run func(ctx context.Context, serviceNumber string)) *MockProfileUsecase_GetBadge_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockProfileUsecase_GetBadge_Call) Return(_a0 []byte, _a1 error) *MockProfileUsecase_GetBadge_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_GetBadge_Call) RunAndReturn(run func(context.Context, string) ([]byte, error)) *MockProfileUsecase_GetBadge_Call {
	_c.Call.Return(run)

	return _c
}

// GetProfile provides a mock function with given fields: ctx, serviceNumber
func (_m *MockProfileUsecase) GetProfile(ctx context.Context, serviceNumber string) (*entity.Personnel, error) {
	ret := _m.Called(ctx, serviceNumber)

	if len(ret) == 0 {
		panic("no return value specified for GetProfile")
	}

	var r0 *entity.Personnel
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Personnel, error)); ok {
		return rf(ctx, serviceNumber)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Personnel); ok {
		r0 = rf(ctx, serviceNumber)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Personnel)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, serviceNumber)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProfileUsecase_GetProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProfile'
type MockProfileUsecase_GetProfile_Call struct {
	*mock.Call
}

// GetProfile is a helper method to define mock.On call
func (_e *MockProfileUsecase_Expecter) GetProfile(ctx interface{}, serviceNumber interface{}) *MockProfileUsecase_GetProfile_Call {
	return &MockProfileUsecase_GetProfile_Call{Call: _e.mock.On("GetProfile", ctx, serviceNumber)}
}

func (_c *MockProfileUsecase_GetProfile_Call) Run(run func(ctx context.Context, serviceNumber string)) *MockProfileUsecase_GetProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockProfileUsecase_GetProfile_Call) Return(_a0 *entity.Personnel, _a1 error) *MockProfileUsecase_GetProfile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_GetProfile_Call) RunAndReturn(run func(context.Context, string) (*entity.Personnel, error)) *MockProfileUsecase_GetProfile_Call {
	_c.Call.Return(run)

	return _c
}

// UploadPhoto provides a mock function with given fields: ctx, upload
func (_m *MockProfileUsecase) UploadPhoto(ctx context.Context, upload *service.PhotoUpload) (*usecase.ProfileOutput, error) {
	ret := _m.Called(ctx, upload)

	if len(ret) == 0 {
		panic("no return value specified for UploadPhoto")
	}

	var r0 *usecase.ProfileOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *service.PhotoUpload) (*usecase.ProfileOutput, error)); ok {
		return rf(ctx, upload)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *service.PhotoUpload) *usecase.ProfileOutput); ok {
		r0 = rf(ctx, upload)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.ProfileOutput)
	}
	if rf, ok := ret.Get(1).(func(context.Context, *service.PhotoUpload) error); ok {
		r1 = rf(ctx, upload)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProfileUsecase_UploadPhoto_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UploadPhoto'
type MockProfileUsecase_UploadPhoto_Call struct {
	*mock.Call
}

// UploadPhoto is a helper method to define mock.On call
func (_e *MockProfileUsecase_Expecter) UploadPhoto(ctx interface{}, upload interface{}) *MockProfileUsecase_UploadPhoto_Call {
	return &MockProfileUsecase_UploadPhoto_Call{Call: _e.mock.On("UploadPhoto", ctx, upload)}
}

func (_c *MockProfileUsecase_UploadPhoto_Call) Run(run func(ctx context.Context, upload *service.PhotoUpload)) *MockProfileUsecase_UploadPhoto_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.PhotoUpload))
	})

	return _c
}

func (_c *MockProfileUsecase_UploadPhoto_Call) Return(_a0 *usecase.ProfileOutput, _a1 error) *MockProfileUsecase_UploadPhoto_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockProfileUsecase_UploadPhoto_Call) RunAndReturn(run func(context.Context, *service.PhotoUpload) (*usecase.ProfileOutput, error)) *MockProfileUsecase_UploadPhoto_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockProfileUsecase creates a new instance of MockProfileUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProfileUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileUsecase {
	m := &MockProfileUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
