package app

import (
	"workcurb/internal/access"
	"workcurb/internal/attendance"
	"workcurb/internal/billing"
	"workcurb/internal/company"
	"workcurb/internal/config"
	"workcurb/internal/course"
	"workcurb/internal/credential"
	"workcurb/internal/employee"
	"workcurb/internal/leave"
	"workcurb/internal/messaging/kafka"
	"workcurb/internal/notification"
	"workcurb/internal/observability/metrics"
	"workcurb/internal/performance"
	"workcurb/internal/providers/email"
	"workcurb/internal/schedule"
	"workcurb/internal/snapshot"
	"workcurb/internal/ticket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	cfg         config.Config
	db          *gorm.DB
	public      *gin.RouterGroup
	secured     *gin.RouterGroup
	authz       access.Enforcer
	idempotency gin.HandlerFunc
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func registerModules(m modules) {
	db := m.db
	log := m.logger

	mailer := newMailer(m.cfg)

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(db)
	billingRepo := billing.NewRepository(db)
	companyRepo := company.NewRepository(db)
	courseRepo := course.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	leaveRepo := leave.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	performanceRepo := performance.NewRepository(db)
	scheduleRepo := schedule.NewRepository(db)
	ticketRepo := ticket.NewRepository(db)

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo, log)
	billingService := billing.NewService(billingRepo, mailer, m.metrics, log)
	companyService := company.NewService(companyRepo, log)
	courseService := course.NewService(db, courseRepo, outboxRepo, log)
	credentialService := credential.NewService(employeeRepo, log)
	employeeService := employee.NewService(employeeRepo, log)
	leaveService := leave.NewService(db, leaveRepo, outboxRepo, log)
	notificationService := notification.NewService(notificationRepo, employeeRepo, mailer, m.metrics, log)
	performanceService := performance.NewService(performanceRepo, m.cfg.Rating.ScaleMax, log)
	scheduleService := schedule.NewService(db, scheduleRepo, outboxRepo, m.metrics, log)
	ticketService := ticket.NewService(ticketRepo, log)
	snapshotService := snapshot.NewService(snapshot.Readers{
		Profiles:   employeeService,
		Shifts:     scheduleService,
		Attendance: attendanceService,
		Tickets:    ticketService,
		Leave:      leaveService,
		Ratings:    performanceService,
		Courses:    courseService,
		Events:     companyService,
	}, log)

	// --- Routes Registration ---
	credential.RegisterRoutes(m.public, credential.NewHandler(credentialService, log), credential.RateLimit{
		PerSecond: m.cfg.Security.LoginRatePerSec,
		Burst:     m.cfg.Security.LoginBurst,
	})
	billing.RegisterRoutes(m.public, billing.NewHandler(billingService, log), m.idempotency)
	notification.RegisterRoutes(m.public, m.secured, notification.NewHandler(notificationService, log), m.authz, m.idempotency)

	attendance.RegisterRoutes(m.secured, attendance.NewHandler(attendanceService, log), m.authz, m.idempotency)
	company.RegisterRoutes(m.secured, company.NewHandler(companyService, log), m.authz)
	course.RegisterRoutes(m.secured, course.NewHandler(courseService, log), m.authz, m.idempotency)
	employee.RegisterRoutes(m.secured, employee.NewHandler(employeeService, log), m.authz)
	leave.RegisterRoutes(m.secured, leave.NewHandler(leaveService, log), m.authz, m.idempotency)
	performance.RegisterRoutes(m.secured, performance.NewHandler(performanceService, log), m.authz, m.idempotency)
	schedule.RegisterRoutes(m.secured, schedule.NewHandler(scheduleService, log), m.authz, m.idempotency)
	snapshot.RegisterRoutes(m.secured, snapshot.NewHandler(snapshotService, log), m.authz)
	ticket.RegisterRoutes(m.secured, ticket.NewHandler(ticketService, log), m.authz, m.idempotency)
}

func newMailer(cfg config.Config) email.Provider {
	return email.NewFromConfig(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
}
