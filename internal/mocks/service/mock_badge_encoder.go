package service

import (
	mock "github.com/stretchr/testify/mock"
)

// MockBadgeEncoder is a testify mock of BadgeEncoder.
type MockBadgeEncoder struct {
	mock.Mock
}

type MockBadgeEncoder_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBadgeEncoder) EXPECT() *MockBadgeEncoder_Expecter {
	return &MockBadgeEncoder_Expecter{mock: &_m.Mock}
}

// Encode provides a mock function with given fields: serviceNumber
func (_m *MockBadgeEncoder) Encode(serviceNumber string) ([]byte, error) {
	ret := _m.Called(serviceNumber)

	if len(ret) == 0 {
		panic("no return value specified for Encode")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(string) ([]byte, error)); ok {
		return rf(serviceNumber)
	}
	if rf, ok := ret.Get(0).(func(string) []byte); ok {
		r0 = rf(serviceNumber)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(serviceNumber)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockBadgeEncoder_Encode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Encode'
type MockBadgeEncoder_Encode_Call struct {
	*mock.Call
}

// Encode is a helper method to define mock.On call
func (_e *MockBadgeEncoder_Expecter) Encode(serviceNumber interface{}) *MockBadgeEncoder_Encode_Call {
	return &MockBadgeEncoder_Encode_Call{Call: _e.mock.On("Encode", serviceNumber)}
}

func (_c *MockBadgeEncoder_Encode_Call) Run(run func(serviceNumber string)) *MockBadgeEncoder_Encode_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockBadgeEncoder_Encode_Call) Return(_a0 []byte, _a1 error) *MockBadgeEncoder_Encode_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockBadgeEncoder_Encode_Call) RunAndReturn(run func(string) ([]byte, error)) *MockBadgeEncoder_Encode_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockBadgeEncoder creates a new instance of MockBadgeEncoder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockBadgeEncoder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBadgeEncoder {
	m := &MockBadgeEncoder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
