package attendance

import (
	"context"
	"time"

	"github.com/staffhive/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
	"github.com/staffhive/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
	}
}

// Mark implements attendance.AttendanceService. The (user, day) unique
// index arbitrates concurrent marks; there is no pre-check to race against.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, userID string, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day := attendance.NormalizeDate(time.Now().UTC())
	if req.Date != nil {
		parsed, _ := validator.IsValidDate(*req.Date)
		day = attendance.NormalizeDate(parsed)
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:    userID,
		Date:      day,
		Status:    attendance.Status(req.Status),
		Remarks:   req.Remarks,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// ListMine implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMine(ctx context.Context, userID string, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	records, err := a.AttendanceRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return attendance.ToResponseList(records), nil
}

// List implements attendance.AttendanceService. Cross-user attendance is
// hr/admin only; the optional department filter narrows the joined user.
func (a *AttendanceServiceImpl) List(ctx context.Context, actor authz.Actor, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if !authz.Can(actor, authz.ActionListAttendance, authz.Resource{}) {
		return nil, attendance.ErrUnauthorizedAccess
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.Department != nil {
		filtered := records[:0]
		for _, rec := range records {
			if rec.UserDepartment != nil && *rec.UserDepartment == *filter.Department {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	return attendance.ToResponseList(records), nil
}
