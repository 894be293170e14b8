package repository

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/domain/repository"

	mock "github.com/stretchr/testify/mock"
)

// MockPersonnelRepository is a testify mock of PersonnelRepository.
type MockPersonnelRepository struct {
	mock.Mock
}

type MockPersonnelRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPersonnelRepository) EXPECT() *MockPersonnelRepository_Expecter {
	return &MockPersonnelRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, personnel
func (_m *MockPersonnelRepository) Create(ctx context.Context, personnel *entity.Personnel) error {
	ret := _m.Called(ctx, personnel)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Personnel) error); ok {
		r0 = rf(ctx, personnel)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPersonnelRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockPersonnelRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockPersonnelRepository_Expecter) Create(ctx interface{}, personnel interface{}) *MockPersonnelRepository_Create_Call {
	return &MockPersonnelRepository_Create_Call{Call: _e.mock.On("Create", ctx, personnel)}
}

func (_c *MockPersonnelRepository_Create_Call) Run(run func(ctx context.Context, personnel *entity.Personnel)) *MockPersonnelRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Personnel))
	})

	return _c
}

func (_c *MockPersonnelRepository_Create_Call) Return(_a0 error) *MockPersonnelRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockPersonnelRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Personnel) error) *MockPersonnelRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// FindByServiceNumber provides a mock function with given fields: ctx, serviceNumber
func (_m *MockPersonnelRepository) FindByServiceNumber(ctx context.Context, serviceNumber string) (*entity.Personnel, error) {
	ret := _m.Called(ctx, serviceNumber)

	if len(ret) == 0 {
		panic("no return value specified for FindByServiceNumber")
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

// MockPersonnelRepository_FindByServiceNumber_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByServiceNumber'
type MockPersonnelRepository_FindByServiceNumber_Call struct {
	*mock.Call
}

// FindByServiceNumber is a helper method to define mock.On call
func (_e *MockPersonnelRepository_Expecter) FindByServiceNumber(ctx interface{}, serviceNumber interface{}) *MockPersonnelRepository_FindByServiceNumber_Call {
	return &MockPersonnelRepository_FindByServiceNumber_Call{Call: _e.mock.On("FindByServiceNumber", ctx, serviceNumber)}
}

func (_c *MockPersonnelRepository_FindByServiceNumber_Call) Run(run func(ctx context.Context, serviceNumber string)) *MockPersonnelRepository_FindByServiceNumber_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockPersonnelRepository_FindByServiceNumber_Call) Return(_a0 *entity.Personnel, _a1 error) *MockPersonnelRepository_FindByServiceNumber_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPersonnelRepository_FindByServiceNumber_Call) RunAndReturn(run func(context.Context, string) (*entity.Personnel, error)) *MockPersonnelRepository_FindByServiceNumber_Call {
	_c.Call.Return(run)

	return _c
}

// SetPhotoPath provides a mock function with given fields: ctx, serviceNumber, photoPath
func (_m *MockPersonnelRepository) SetPhotoPath(ctx context.Context, serviceNumber string, photoPath string) (repository.UpdateResult, error) {
	ret := _m.Called(ctx, serviceNumber, photoPath)

	if len(ret) == 0 {
		panic("no return value specified for SetPhotoPath")
	}

	var r0 repository.UpdateResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (repository.UpdateResult, error)); ok {
		return rf(ctx, serviceNumber, photoPath)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) repository.UpdateResult); ok {
		r0 = rf(ctx, serviceNumber, photoPath)
	} else {
		r0 = ret.Get(0).(repository.UpdateResult)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, serviceNumber, photoPath)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPersonnelRepository_SetPhotoPath_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SetPhotoPath'
type MockPersonnelRepository_SetPhotoPath_Call struct {
	*mock.Call
}

// SetPhotoPath is a helper method to define mock.On call
func (_e *MockPersonnelRepository_Expecter) SetPhotoPath(ctx interface{}, serviceNumber interface{}, photoPath interface{}) *MockPersonnelRepository_SetPhotoPath_Call {
	return &MockPersonnelRepository_SetPhotoPath_Call{Call: _e.mock.On("SetPhotoPath", ctx, serviceNumber, photoPath)}
}

func (_c *MockPersonnelRepository_SetPhotoPath_Call) Run(run func(ctx context.Context, serviceNumber string, photoPath string)) *MockPersonnelRepository_SetPhotoPath_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})

	return _c
}

func (_c *MockPersonnelRepository_SetPhotoPath_Call) Return(_a0 repository.UpdateResult, _a1 error) *MockPersonnelRepository_SetPhotoPath_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPersonnelRepository_SetPhotoPath_Call) RunAndReturn(run func(context.Context, string, string) (repository.UpdateResult, error)) *MockPersonnelRepository_SetPhotoPath_Call {
	_c.Call.Return(run)

	return _c
}

// UpdateProfile provides a mock function with given fields: ctx, serviceNumber, profile
func (_m *MockPersonnelRepository) UpdateProfile(ctx context.Context, serviceNumber string, profile entity.Profile) (repository.UpdateResult, error) {
	ret := _m.Called(ctx, serviceNumber, profile)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProfile")
	}

	var r0 repository.UpdateResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.Profile) (repository.UpdateResult, error)); ok {
		return rf(ctx, serviceNumber, profile)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.Profile) repository.UpdateResult); ok {
		r0 = rf(ctx, serviceNumber, profile)
	} else {
		r0 = ret.Get(0).(repository.UpdateResult)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, entity.Profile) error); ok {
		r1 = rf(ctx, serviceNumber, profile)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPersonnelRepository_UpdateProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProfile'
type MockPersonnelRepository_UpdateProfile_Call struct {
	*mock.Call
}

// UpdateProfile is a helper method to define mock.On call
func (_e *MockPersonnelRepository_Expecter) UpdateProfile(ctx interface{}, serviceNumber interface{}, profile interface{}) *MockPersonnelRepository_UpdateProfile_Call {
	return &MockPersonnelRepository_UpdateProfile_Call{Call: _e.mock.On("UpdateProfile", ctx, serviceNumber, profile)}
}

func (_c *MockPersonnelRepository_UpdateProfile_Call) Run(run func(ctx context.Context, serviceNumber string, profile entity.Profile)) *MockPersonnelRepository_UpdateProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(entity.Profile))
	})

	return _c
}

func (_c *MockPersonnelRepository_UpdateProfile_Call) Return(_a0 repository.UpdateResult, _a1 error) *MockPersonnelRepository_UpdateProfile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPersonnelRepository_UpdateProfile_Call) RunAndReturn(run func(context.Context, string, entity.Profile) (repository.UpdateResult, error)) *MockPersonnelRepository_UpdateProfile_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockPersonnelRepository creates a new instance of MockPersonnelRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPersonnelRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPersonnelRepository {
	m := &MockPersonnelRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
