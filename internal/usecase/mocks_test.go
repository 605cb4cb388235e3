package usecase

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"dental-clinic-service/internal/domain/entity"
	"dental-clinic-service/internal/domain/repository"
	"dental-clinic-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// testDB returns a detached handle good enough for usecases that only pass
// it through to mocked repositories. It carries no connection, so paths
// that open real transactions are covered elsewhere.
func testDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// --- MockPatientRepository ---

var _ repository.PatientRepository = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	CreateFunc            func(db *gorm.DB, patient *entity.Patient) error
	FindByIDAndClinicFunc func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Patient, error)
	FindByClinicFunc      func(db *gorm.DB, clinicID uuid.UUID) ([]entity.Patient, error)
	UpdateFunc            func(db *gorm.DB, patient *entity.Patient) error
	DeleteFunc            func(db *gorm.DB, id, clinicID uuid.UUID) (int64, error)
}

func (m *MockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDAndClinicFunc != nil {
		return m.FindByIDAndClinicFunc(db, id, clinicID)
	}
	return nil, errors.New("FindByIDAndClinicFunc not implemented in mock")
}

func (m *MockPatientRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Patient, error) {
	if m.FindByClinicFunc != nil {
		return m.FindByClinicFunc(db, clinicID)
	}
	return nil, errors.New("FindByClinicFunc not implemented in mock")
}

func (m *MockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, patient)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockPatientRepository) Delete(db *gorm.DB, id, clinicID uuid.UUID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(db, id, clinicID)
	}
	return 0, errors.New("DeleteFunc not implemented in mock")
}

// --- MockUserRepository ---

var _ repository.UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	CreateFunc              func(db *gorm.DB, user *entity.User) error
	FindByIDFunc            func(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmailFunc         func(db *gorm.DB, email string) (*entity.User, error)
	FindByClinicAndRoleFunc func(db *gorm.DB, clinicID uuid.UUID, roleID int) ([]entity.User, error)
	UpdateFunc              func(db *gorm.DB, user *entity.User) error
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(db, email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *MockUserRepository) FindByClinicAndRole(db *gorm.DB, clinicID uuid.UUID, roleID int) ([]entity.User, error) {
	if m.FindByClinicAndRoleFunc != nil {
		return m.FindByClinicAndRoleFunc(db, clinicID, roleID)
	}
	return nil, errors.New("FindByClinicAndRoleFunc not implemented in mock")
}

func (m *MockUserRepository) Update(db *gorm.DB, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, user)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// --- MockDoctorProfileRepository ---

var _ repository.DoctorProfileRepository = (*MockDoctorProfileRepository)(nil)

type MockDoctorProfileRepository struct {
	CreateFunc              func(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserAndClinicFunc func(db *gorm.DB, userID, clinicID uuid.UUID) (*entity.DoctorProfile, error)
	FindByClinicFunc        func(db *gorm.DB, clinicID uuid.UUID) ([]entity.DoctorProfile, error)
	UpdateFunc              func(db *gorm.DB, profile *entity.DoctorProfile) error
}

func (m *MockDoctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, profile)
	}
	return nil
}

func (m *MockDoctorProfileRepository) FindByUserAndClinic(db *gorm.DB, userID, clinicID uuid.UUID) (*entity.DoctorProfile, error) {
	if m.FindByUserAndClinicFunc != nil {
		return m.FindByUserAndClinicFunc(db, userID, clinicID)
	}
	return nil, errors.New("FindByUserAndClinicFunc not implemented in mock")
}

func (m *MockDoctorProfileRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.DoctorProfile, error) {
	if m.FindByClinicFunc != nil {
		return m.FindByClinicFunc(db, clinicID)
	}
	return nil, errors.New("FindByClinicFunc not implemented in mock")
}

func (m *MockDoctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, profile)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// --- MockAppointmentRepository ---

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc                func(db *gorm.DB, appointment *entity.Appointment) error
	FindByIDAndClinicFunc     func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Appointment, error)
	FindByDoctorAndClinicFunc func(db *gorm.DB, doctorID, clinicID uuid.UUID) ([]entity.Appointment, error)
	FindByClinicAndDayFunc    func(db *gorm.DB, clinicID uuid.UUID, dayStart, dayEnd string) ([]entity.Appointment, error)
	UpdateFunc                func(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatusFunc          func(db *gorm.DB, id, clinicID uuid.UUID, status entity.AppointmentStatus) (int64, error)

	CreateCallCount int32
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(db, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Appointment, error) {
	if m.FindByIDAndClinicFunc != nil {
		return m.FindByIDAndClinicFunc(db, id, clinicID)
	}
	return nil, errors.New("FindByIDAndClinicFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindByDoctorAndClinic(db *gorm.DB, doctorID, clinicID uuid.UUID) ([]entity.Appointment, error) {
	if m.FindByDoctorAndClinicFunc != nil {
		return m.FindByDoctorAndClinicFunc(db, doctorID, clinicID)
	}
	return nil, errors.New("FindByDoctorAndClinicFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindByClinicAndDay(db *gorm.DB, clinicID uuid.UUID, dayStart, dayEnd string) ([]entity.Appointment, error) {
	if m.FindByClinicAndDayFunc != nil {
		return m.FindByClinicAndDayFunc(db, clinicID, dayStart, dayEnd)
	}
	return nil, errors.New("FindByClinicAndDayFunc not implemented in mock")
}

func (m *MockAppointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, appointment)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockAppointmentRepository) UpdateStatus(db *gorm.DB, id, clinicID uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(db, id, clinicID, status)
	}
	return 0, errors.New("UpdateStatusFunc not implemented in mock")
}

// --- MockAnamnesisRepository ---

var _ repository.AnamnesisRepository = (*MockAnamnesisRepository)(nil)

type MockAnamnesisRepository struct {
	CreateFunc              func(db *gorm.DB, record *entity.Anamnesis) error
	FindByIDAndClinicFunc   func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Anamnesis, error)
	FindLatestByPatientFunc func(db *gorm.DB, patientID, clinicID uuid.UUID) (*entity.Anamnesis, error)
	FindByPatientFunc       func(db *gorm.DB, patientID, clinicID uuid.UUID) ([]entity.Anamnesis, error)
	UpdateFunc              func(db *gorm.DB, record *entity.Anamnesis) error
}

func (m *MockAnamnesisRepository) Create(db *gorm.DB, record *entity.Anamnesis) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, record)
	}
	return nil
}

func (m *MockAnamnesisRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Anamnesis, error) {
	if m.FindByIDAndClinicFunc != nil {
		return m.FindByIDAndClinicFunc(db, id, clinicID)
	}
	return nil, errors.New("FindByIDAndClinicFunc not implemented in mock")
}

func (m *MockAnamnesisRepository) FindLatestByPatient(db *gorm.DB, patientID, clinicID uuid.UUID) (*entity.Anamnesis, error) {
	if m.FindLatestByPatientFunc != nil {
		return m.FindLatestByPatientFunc(db, patientID, clinicID)
	}
	return nil, errors.New("FindLatestByPatientFunc not implemented in mock")
}

func (m *MockAnamnesisRepository) FindByPatient(db *gorm.DB, patientID, clinicID uuid.UUID) ([]entity.Anamnesis, error) {
	if m.FindByPatientFunc != nil {
		return m.FindByPatientFunc(db, patientID, clinicID)
	}
	return nil, errors.New("FindByPatientFunc not implemented in mock")
}

func (m *MockAnamnesisRepository) Update(db *gorm.DB, record *entity.Anamnesis) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, record)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// --- MockClinicRepository ---

var _ repository.ClinicRepository = (*MockClinicRepository)(nil)

type MockClinicRepository struct {
	CreateFunc      func(db *gorm.DB, clinic *entity.Clinic) error
	FindByIDFunc    func(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error)
	FindByEmailFunc func(db *gorm.DB, email string) (*entity.Clinic, error)
	UpdateFunc      func(db *gorm.DB, clinic *entity.Clinic) error
}

func (m *MockClinicRepository) Create(db *gorm.DB, clinic *entity.Clinic) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, clinic)
	}
	return nil
}

func (m *MockClinicRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockClinicRepository) FindByEmail(db *gorm.DB, email string) (*entity.Clinic, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(db, email)
	}
	return nil, errors.New("FindByEmailFunc not implemented in mock")
}

func (m *MockClinicRepository) Update(db *gorm.DB, clinic *entity.Clinic) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, clinic)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// --- MockPaymentRepository ---

var _ repository.PaymentRepository = (*MockPaymentRepository)(nil)

type MockPaymentRepository struct {
	CreateFunc                func(db *gorm.DB, payment *entity.Payment) error
	FindByIDAndClinicFunc     func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Payment, error)
	FindByClinicFunc          func(db *gorm.DB, clinicID uuid.UUID) ([]entity.Payment, error)
	FindByClinicAndPeriodFunc func(db *gorm.DB, clinicID uuid.UUID, from, to time.Time) ([]entity.Payment, error)
}

func (m *MockPaymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, payment)
	}
	return nil
}

func (m *MockPaymentRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.Payment, error) {
	if m.FindByIDAndClinicFunc != nil {
		return m.FindByIDAndClinicFunc(db, id, clinicID)
	}
	return nil, errors.New("FindByIDAndClinicFunc not implemented in mock")
}

func (m *MockPaymentRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.Payment, error) {
	if m.FindByClinicFunc != nil {
		return m.FindByClinicFunc(db, clinicID)
	}
	return nil, errors.New("FindByClinicFunc not implemented in mock")
}

func (m *MockPaymentRepository) FindByClinicAndPeriod(db *gorm.DB, clinicID uuid.UUID, from, to time.Time) ([]entity.Payment, error) {
	if m.FindByClinicAndPeriodFunc != nil {
		return m.FindByClinicAndPeriodFunc(db, clinicID, from, to)
	}
	return nil, errors.New("FindByClinicAndPeriodFunc not implemented in mock")
}

// --- MockPDFRenderer ---

var _ service.PDFRenderer = (*MockPDFRenderer)(nil)

type MockPDFRenderer struct {
	RenderFunc func(ctx context.Context, html string) ([]byte, error)
}

func (m *MockPDFRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, html)
	}
	return nil, errors.New("RenderFunc not implemented in mock")
}

// --- MockSupportTicketRepository ---

var _ repository.SupportTicketRepository = (*MockSupportTicketRepository)(nil)

type MockSupportTicketRepository struct {
	CreateFunc            func(db *gorm.DB, ticket *entity.SupportTicket) error
	FindByIDAndClinicFunc func(db *gorm.DB, id, clinicID uuid.UUID) (*entity.SupportTicket, error)
	FindByClinicFunc      func(db *gorm.DB, clinicID uuid.UUID) ([]entity.SupportTicket, error)
	UpdateFunc            func(db *gorm.DB, ticket *entity.SupportTicket) error
}

func (m *MockSupportTicketRepository) Create(db *gorm.DB, ticket *entity.SupportTicket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, ticket)
	}
	return nil
}

func (m *MockSupportTicketRepository) FindByIDAndClinic(db *gorm.DB, id, clinicID uuid.UUID) (*entity.SupportTicket, error) {
	if m.FindByIDAndClinicFunc != nil {
		return m.FindByIDAndClinicFunc(db, id, clinicID)
	}
	return nil, errors.New("FindByIDAndClinicFunc not implemented in mock")
}

func (m *MockSupportTicketRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.SupportTicket, error) {
	if m.FindByClinicFunc != nil {
		return m.FindByClinicFunc(db, clinicID)
	}
	return nil, errors.New("FindByClinicFunc not implemented in mock")
}

func (m *MockSupportTicketRepository) Update(db *gorm.DB, ticket *entity.SupportTicket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, ticket)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

// --- MockMailer ---

var _ service.Mailer = (*MockMailer)(nil)

type MockMailer struct {
	SendFunc func(ctx context.Context, to, subject, text, html string) error
}

func (m *MockMailer) Send(ctx context.Context, to, subject, text, html string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, text, html)
	}
	return nil
}

// --- MockAuditRecorder ---

var _ service.AuditRecorder = (*MockAuditRecorder)(nil)

type MockAuditRecorder struct {
	RecordFunc func(clinicID uuid.UUID, userID *uuid.UUID, action, entityName, entityID string, metadata entity.JSON)

	RecordCallCount int32
}

func (m *MockAuditRecorder) Record(clinicID uuid.UUID, userID *uuid.UUID, action, entityName, entityID string, metadata entity.JSON) {
	atomic.AddInt32(&m.RecordCallCount, 1)
	if m.RecordFunc != nil {
		m.RecordFunc(clinicID, userID, action, entityName, entityID, metadata)
	}
}
