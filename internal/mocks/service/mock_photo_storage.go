package service

import (
	"context"

	"roster/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockPhotoStorage is a testify mock of PhotoStorage.
type MockPhotoStorage struct {
	mock.Mock
}

type MockPhotoStorage_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPhotoStorage) EXPECT() *MockPhotoStorage_Expecter {
	return &MockPhotoStorage_Expecter{mock: &_m.Mock}
}

// Delete provides a mock function with given fields: ctx, key
func (_m *MockPhotoStorage) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPhotoStorage_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockPhotoStorage_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
func (_e *MockPhotoStorage_Expecter) Delete(ctx interface{}, key interface{}) *MockPhotoStorage_Delete_Call {
	return &MockPhotoStorage_Delete_Call{Call: _e.mock.On("Delete", ctx, key)}
}

func (_c *MockPhotoStorage_Delete_Call) Run(run func(ctx context.Context, key string)) *MockPhotoStorage_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockPhotoStorage_Delete_Call) Return(_a0 error) *MockPhotoStorage_Delete_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockPhotoStorage_Delete_Call) RunAndReturn(run func(context.Context, string) error) *MockPhotoStorage_Delete_Call {
	_c.Call.Return(run)

	return _c
}

// MaxSize provides a mock function with given fields:
func (_m *MockPhotoStorage) MaxSize() int64 {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for MaxSize")
	}

	var r0 int64
	if rf, ok := ret.Get(0).(func() int64); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(int64)
	}

	return r0
}

// MockPhotoStorage_MaxSize_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'MaxSize'
type MockPhotoStorage_MaxSize_Call struct {
	*mock.Call
}

// MaxSize is a helper method to define mock.On call
func (_e *MockPhotoStorage_Expecter) MaxSize() *MockPhotoStorage_MaxSize_Call {
	return &MockPhotoStorage_MaxSize_Call{Call: _e.mock.On("MaxSize")}
}

func (_c *MockPhotoStorage_MaxSize_Call) Run(run func()) *MockPhotoStorage_MaxSize_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockPhotoStorage_MaxSize_Call) Return(_a0 int64) *MockPhotoStorage_MaxSize_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockPhotoStorage_MaxSize_Call) RunAndReturn(run func() int64) *MockPhotoStorage_MaxSize_Call {
	_c.Call.Return(run)

	return _c
}

// Store provides a mock function with given fields: ctx, upload
func (_m *MockPhotoStorage) Store(ctx context.Context, upload *service.PhotoUpload) (string, error) {
	ret := _m.Called(ctx, upload)

	if len(ret) == 0 {
		panic("no return value specified for Store")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *service.PhotoUpload) (string, error)); ok {
		return rf(ctx, upload)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *service.PhotoUpload) string); ok {
		r0 = rf(ctx, upload)
	} else {
		r0 = ret.Get(0).(string)
	}
	if rf, ok := ret.Get(1).(func(context.Context, *service.PhotoUpload) error); ok {
		r1 = rf(ctx, upload)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPhotoStorage_Store_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Store'
type MockPhotoStorage_Store_Call struct {
	*mock.Call
}

// Store is a helper method to define mock.On call
func (_e *MockPhotoStorage_Expecter) Store(ctx interface{}, upload interface{}) *MockPhotoStorage_Store_Call {
	return &MockPhotoStorage_Store_Call{Call: _e.mock.On("Store", ctx, upload)}
}

func (_c *MockPhotoStorage_Store_Call) Run(run func(ctx context.Context, upload *service.PhotoUpload)) *MockPhotoStorage_Store_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*service.PhotoUpload))
	})

	return _c
}

func (_c *MockPhotoStorage_Store_Call) Return(_a0 string, _a1 error) *MockPhotoStorage_Store_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPhotoStorage_Store_Call) RunAndReturn(run func(context.Context, *service.PhotoUpload) (string, error)) *MockPhotoStorage_Store_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockPhotoStorage creates a new instance of MockPhotoStorage. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPhotoStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPhotoStorage {
	m := &MockPhotoStorage{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
