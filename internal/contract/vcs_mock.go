package contract

import (
	"time"

	"github.com/huangsam/recap/schema"
	"github.com/stretchr/testify/mock"
)

// MockVcsHandle is an autogenerated mock type for the VcsHandle type.
type MockVcsHandle struct {
	mock.Mock
}

var _ VcsHandle = &MockVcsHandle{} // Compile-time check

// Head implements the contract.VcsHandle interface.
func (m *MockVcsHandle) Head() string {
	ret := m.Called()
	head, _ := ret.Get(0).(string)
	return head
}

// Commits implements the contract.VcsHandle interface.
func (m *MockVcsHandle) Commits(since, until time.Time) ([]schema.Commit, error) {
	ret := m.Called(since, until)
	commits, _ := ret.Get(0).([]schema.Commit)
	return commits, ret.Error(1)
}
