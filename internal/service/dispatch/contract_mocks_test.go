// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
//

// Package dispatch_test is a generated GoMock package.
package dispatch_test

import (
	context "context"
	entities "marketplace/internal/entities"
	dispatch "marketplace/internal/service/dispatch"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockPackageReader is a mock of PackageReader interface.
type MockPackageReader struct {
	ctrl     *gomock.Controller
	recorder *MockPackageReaderMockRecorder
	isgomock struct{}
}

// MockPackageReaderMockRecorder is the mock recorder for MockPackageReader.
type MockPackageReaderMockRecorder struct {
	mock *MockPackageReader
}

// NewMockPackageReader creates a new mock instance.
func NewMockPackageReader(ctrl *gomock.Controller) *MockPackageReader {
	mock := &MockPackageReader{ctrl: ctrl}
	mock.recorder = &MockPackageReaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPackageReader) EXPECT() *MockPackageReaderMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockPackageReader) GetByID(ctx context.Context, id string) (*entities.Package, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*entities.Package)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockPackageReaderMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPackageReader)(nil).GetByID), ctx, id)
}

// MockHandlerFactory is a mock of HandlerFactory interface.
type MockHandlerFactory struct {
	ctrl     *gomock.Controller
	recorder *MockHandlerFactoryMockRecorder
	isgomock struct{}
}

// MockHandlerFactoryMockRecorder is the mock recorder for MockHandlerFactory.
type MockHandlerFactoryMockRecorder struct {
	mock *MockHandlerFactory
}

// NewMockHandlerFactory creates a new mock instance.
func NewMockHandlerFactory(ctrl *gomock.Controller) *MockHandlerFactory {
	mock := &MockHandlerFactory{ctrl: ctrl}
	mock.recorder = &MockHandlerFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHandlerFactory) EXPECT() *MockHandlerFactoryMockRecorder {
	return m.recorder
}

// GetHandler mocks base method.
func (m *MockHandlerFactory) GetHandler(status entities.PackageStatus) (dispatch.ExecuteFn, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHandler", status)
	ret0, _ := ret[0].(dispatch.ExecuteFn)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHandler indicates an expected call of GetHandler.
func (mr *MockHandlerFactoryMockRecorder) GetHandler(status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHandler", reflect.TypeOf((*MockHandlerFactory)(nil).GetHandler), status)
}

// MockSMSSender is a mock of SMSSender interface.
type MockSMSSender struct {
	ctrl     *gomock.Controller
	recorder *MockSMSSenderMockRecorder
	isgomock struct{}
}

// MockSMSSenderMockRecorder is the mock recorder for MockSMSSender.
type MockSMSSenderMockRecorder struct {
	mock *MockSMSSender
}

// NewMockSMSSender creates a new mock instance.
func NewMockSMSSender(ctrl *gomock.Controller) *MockSMSSender {
	mock := &MockSMSSender{ctrl: ctrl}
	mock.recorder = &MockSMSSenderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSMSSender) EXPECT() *MockSMSSenderMockRecorder {
	return m.recorder
}

// Send mocks base method.
func (m *MockSMSSender) Send(ctx context.Context, phone, message string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, phone, message)
	ret0, _ := ret[0].(error)
	return ret0
}

// Send indicates an expected call of Send.
func (mr *MockSMSSenderMockRecorder) Send(ctx, phone, message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockSMSSender)(nil).Send), ctx, phone, message)
}
