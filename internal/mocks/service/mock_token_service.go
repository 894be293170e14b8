package service

import (
	"roster/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of TokenService.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// Issue provides a mock function with given fields: serviceNumber
func (_m *MockTokenService) Issue(serviceNumber string) (*service.SessionToken, error) {
	ret := _m.Called(serviceNumber)

	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}

	var r0 *service.SessionToken
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*service.SessionToken, error)); ok {
		return rf(serviceNumber)
	}
	if rf, ok := ret.Get(0).(func(string) *service.SessionToken); ok {
		r0 = rf(serviceNumber)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.SessionToken)
	}
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(serviceNumber)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_Issue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Issue'
type MockTokenService_Issue_Call struct {
	*mock.Call
}

// Issue is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) Issue(serviceNumber interface{}) *MockTokenService_Issue_Call {
	return &MockTokenService_Issue_Call{Call: _e.mock.On("Issue", serviceNumber)}
}

func (_c *MockTokenService_Issue_Call) Run(run func(serviceNumber string)) *MockTokenService_Issue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockTokenService_Issue_Call) Return(_a0 *service.SessionToken, _a1 error) *MockTokenService_Issue_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_Issue_Call) RunAndReturn(run func(string) (*service.SessionToken, error)) *MockTokenService_Issue_Call {
	_c.Call.Return(run)

	return _c
}

// Validate provides a mock function with given fields: tokenString
func (_m *MockTokenService) Validate(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	if len(ret) == 0 {
		panic("no return value specified for Validate")
	}

	var r0 *service.Claims
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*service.Claims, error)); ok {
		return rf(tokenString)
	}
	if rf, ok := ret.Get(0).(func(string) *service.Claims); ok {
		r0 = rf(tokenString)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(tokenString)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_Validate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Validate'
type MockTokenService_Validate_Call struct {
	*mock.Call
}

// Validate is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) Validate(tokenString interface{}) *MockTokenService_Validate_Call {
	return &MockTokenService_Validate_Call{Call: _e.mock.On("Validate", tokenString)}
}

func (_c *MockTokenService_Validate_Call) Run(run func(tokenString string)) *MockTokenService_Validate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockTokenService_Validate_Call) Return(_a0 *service.Claims, _a1 error) *MockTokenService_Validate_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_Validate_Call) RunAndReturn(run func(string) (*service.Claims, error)) *MockTokenService_Validate_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
