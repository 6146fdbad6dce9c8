package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"workcurb/internal/employee"
	"workcurb/internal/events"
	"workcurb/internal/providers/email"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type leaveReviewedMail struct {
	FullName  string
	LeaveType string
	StartDate string
	EndDate   string
	Status    string
}

// errSkip marks messages that can never succeed and are committed anyway.
var errSkip = errors.New("skip message")

func ConsumeLeaveReviewed(
	ctx context.Context,
	reader MessageReader,
	employeeRepo employee.Repository,
	mailer email.Provider,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_reviewed")
	log.Info("leave reviewed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave reviewed consumer stopped")
				return
			}
			log.Error("fetch leave reviewed message failed", zap.Error(err))
			continue
		}

		err = handleLeaveReviewed(ctx, msg.Value, employeeRepo, mailer)
		if err != nil && !errors.Is(err, errSkip) {
			// left uncommitted, redelivered after a rebalance or restart
			log.Error("notify leave reviewed failed", zap.Error(err))
			continue
		}
		if err != nil {
			log.Warn("leave reviewed message skipped", zap.Error(err))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave reviewed message failed", zap.Error(err))
			continue
		}
	}
}

func handleLeaveReviewed(ctx context.Context, value []byte, employeeRepo employee.Repository, mailer email.Provider) error {
	var event events.LeaveReviewedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("%w: decode: %v", errSkip, err)
	}

	emp, err := employeeRepo.FindByIDAndCompany(ctx, event.CompanyID, event.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: employee %s not found", errSkip, event.EmployeeID)
		}
		return err
	}

	subject := fmt.Sprintf("Your leave request was %s", event.Status)
	return mailer.SendTemplate(ctx, []string{emp.Email}, subject, email.TemplateLeaveReviewed, leaveReviewedMail{
		FullName:  emp.FullName,
		LeaveType: event.LeaveType,
		StartDate: event.StartDate,
		EndDate:   event.EndDate,
		Status:    event.Status,
	})
}
