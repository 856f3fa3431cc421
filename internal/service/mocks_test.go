package service

import (
	"github.com/charapedia/charapedia-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCharacterRepository is a mock implementation of CharacterRepository
type MockCharacterRepository struct {
	mock.Mock
}

func (m *MockCharacterRepository) FindByID(id uint64) (*domain.Character, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterRepository) CreatePending(ch *domain.Character, maxPending int64) error {
	args := m.Called(ch, maxPending)
	return args.Error(0)
}

func (m *MockCharacterRepository) CreateRevision(predecessorID uint64, successor *domain.Character, resetStatus bool) (*domain.Character, error) {
	args := m.Called(predecessorID, successor, resetStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterRepository) UpdateStatus(id uint64, from, to domain.CharacterStatus) (bool, error) {
	args := m.Called(id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockCharacterRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCharacterRepository) CountPending(authorID, workID uint64) (int64, error) {
	args := m.Called(authorID, workID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCharacterRepository) ListPending(workID uint64, page, limit int) ([]*domain.Character, int64, error) {
	args := m.Called(workID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Character), args.Get(1).(int64), args.Error(2)
}

func (m *MockCharacterRepository) ListPublishedByWork(workID uint64, page, limit int) ([]*domain.Character, int64, error) {
	args := m.Called(workID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Character), args.Get(1).(int64), args.Error(2)
}

func (m *MockCharacterRepository) History(id uint64) ([]*domain.Character, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Character), args.Error(1)
}

// MockWorkRepository is a mock implementation of WorkRepository
type MockWorkRepository struct {
	mock.Mock
}

func (m *MockWorkRepository) FindByID(id uint64) (*domain.Work, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *MockWorkRepository) Exists(id uint64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkRepository) List(page, limit int) ([]*domain.Work, int64, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Work), args.Get(1).(int64), args.Error(2)
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(n *domain.Notification) (bool, error) {
	args := m.Called(n)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) FindByID(id uint64) (*domain.Notification, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetList(recipientID uint64, offset, limit int) ([]*domain.Notification, int64, error) {
	args := m.Called(recipientID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) GetUnreadCount(recipientID uint64) (int64, error) {
	args := m.Called(recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllAsRead(recipientID uint64) error {
	args := m.Called(recipientID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindByID(id uint64) (*domain.Member, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListAdmins() ([]*domain.Member, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}
