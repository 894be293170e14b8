package usecase

import (
	"context"

	"roster/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a testify mock of AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

type MockAccountUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountUsecase) EXPECT() *MockAccountUsecase_Expecter {
	return &MockAccountUsecase_Expecter{mock: &_m.Mock}
}

// Login provides a mock function with given fields: ctx, input
func (_m *MockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *usecase.LoginOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.LoginInput) *usecase.LoginOutput); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.LoginOutput)
	}
	if rf, ok := ret.Get(1).(func(context.Context, *usecase.LoginInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUsecase_Login_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Login'
type MockAccountUsecase_Login_Call struct {
	*mock.Call
}

// Login is a helper method to define mock.On call
func (_e *MockAccountUsecase_Expecter) Login(ctx interface{}, input interface{}) *MockAccountUsecase_Login_Call {
	return &MockAccountUsecase_Login_Call{Call: _e.mock.On("Login", ctx, input)}
}

func (_c *MockAccountUsecase_Login_Call) Run(run func(ctx context.Context, input *usecase.LoginInput)) *MockAccountUsecase_Login_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.LoginInput))
	})

	return _c
}

func (_c *MockAccountUsecase_Login_Call) Return(_a0 *usecase.LoginOutput, _a1 error) *MockAccountUsecase_Login_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAccountUsecase_Login_Call) RunAndReturn(run func(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error)) *MockAccountUsecase_Login_Call {
	_c.Call.Return(run)

	return _c
}

// Register provides a mock function with given fields: ctx, input
func (_m *MockAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 *usecase.RegisterOutput
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RegisterInput) (*usecase.RegisterOutput, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.RegisterInput) *usecase.RegisterOutput); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.RegisterOutput)
	}
	if rf, ok := ret.Get(1).(func(context.Context, *usecase.RegisterInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUsecase_Register_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Register'
type MockAccountUsecase_Register_Call struct {
	*mock.Call
}

// Register is a helper method to define mock.On call
func (_e *MockAccountUsecase_Expecter) Register(ctx interface{}, input interface{}) *MockAccountUsecase_Register_Call {
	return &MockAccountUsecase_Register_Call{Call: _e.mock.On("Register", ctx, input)}
}

func (_c *MockAccountUsecase_Register_Call) Run(run func(ctx context.Context, input *usecase.RegisterInput)) *MockAccountUsecase_Register_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.RegisterInput))
	})

	return _c
}

func (_c *MockAccountUsecase_Register_Call) Return(_a0 *usecase.RegisterOutput, _a1 error) *MockAccountUsecase_Register_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockAccountUsecase_Register_Call) RunAndReturn(run func(context.Context, *usecase.RegisterInput) (*usecase.RegisterOutput, error)) *MockAccountUsecase_Register_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockAccountUsecase creates a new instance of MockAccountUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAccountUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
