package usecase

import (
	"context"
	"errors"
	"html/template"
	"sort"
	"strings"
	"time"

	"dental-clinic-service/internal/converter"
	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/domain/entity"
	"dental-clinic-service/internal/domain/repository"
	"dental-clinic-service/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidPeriod   = errors.New("invalid report period")
	ErrInvalidAmount   = errors.New("payment amount must be positive")
)

type FinancialUsecase interface {
	CreatePayment(ctx context.Context, clinicID, actorID uuid.UUID, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	ListPayments(ctx context.Context, clinicID uuid.UUID) (*dto.PaymentListResponse, error)
	// GetReceiptPDF renders the receipt document of a single payment.
	GetReceiptPDF(ctx context.Context, clinicID uuid.UUID, paymentID uuid.UUID) ([]byte, error)
	// GetReportPDF renders the financial report over [from, to], with totals
	// broken down per payment method and per doctor.
	GetReportPDF(ctx context.Context, clinicID uuid.UUID, from, to string) ([]byte, error)
}

type financialUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	paymentRepo repository.PaymentRepository
	patientRepo repository.PatientRepository
	clinicRepo  repository.ClinicRepository
	renderer    service.PDFRenderer
	audit       service.AuditRecorder
}

func NewFinancialUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	patientRepo repository.PatientRepository,
	clinicRepo repository.ClinicRepository,
	renderer service.PDFRenderer,
	audit service.AuditRecorder,
) FinancialUsecase {
	return &financialUsecase{
		db:          db,
		log:         log,
		paymentRepo: paymentRepo,
		patientRepo: patientRepo,
		clinicRepo:  clinicRepo,
		renderer:    renderer,
		audit:       audit,
	}
}

func (u *financialUsecase) CreatePayment(ctx context.Context, clinicID, actorID uuid.UUID, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByIDAndClinic(db, req.PatientID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	paidAt := time.Now().UTC()
	if req.PaidAt != "" {
		parsed, err := time.Parse("2006-01-02", req.PaidAt)
		if err != nil {
			return nil, ErrInvalidDate
		}
		paidAt = parsed
	}

	payment := &entity.Payment{
		ClinicID:      clinicID,
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Method:        req.Method,
		Description:   req.Description,
		PaidAt:        paidAt,
	}
	if err := u.paymentRepo.Create(db, payment); err != nil {
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	u.audit.Record(clinicID, &actorID, entity.AuditActionPaymentCreate, "payment", payment.ID.String(), entity.JSON{
		"amount": payment.Amount.StringFixed(2),
		"method": payment.Method,
	})

	payment.Patient = *patient
	return converter.PaymentToResponse(payment), nil
}

func (u *financialUsecase) ListPayments(ctx context.Context, clinicID uuid.UUID) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to list payments: %+v", err)
		return nil, err
	}
	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Recibo de Pagamento</title></head>
<body>
<h1>{{.ClinicName}}</h1>
<h2>Recibo de Pagamento</h2>
<table>
<tr><td>Recibo nº</td><td>{{.PaymentID}}</td></tr>
<tr><td>Paciente</td><td>{{.PatientName}}</td></tr>
<tr><td>Valor</td><td>R$ {{.Amount}}</td></tr>
<tr><td>Forma de pagamento</td><td>{{.Method}}</td></tr>
<tr><td>Data do pagamento</td><td>{{.PaidAt}}</td></tr>
{{if .Description}}<tr><td>Descrição</td><td>{{.Description}}</td></tr>{{end}}
</table>
<p>Emitido em {{.IssuedAt}}</p>
</body>
</html>`))

func (u *financialUsecase) GetReceiptPDF(ctx context.Context, clinicID uuid.UUID, paymentID uuid.UUID) ([]byte, error) {
	db := u.db.WithContext(ctx)

	payment, err := u.paymentRepo.FindByIDAndClinic(db, paymentID, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", paymentID, err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	clinic, err := u.clinicRepo.FindByID(db, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %s: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	var html strings.Builder
	err = receiptTemplate.Execute(&html, map[string]string{
		"ClinicName":  clinic.Name,
		"PaymentID":   payment.ID.String(),
		"PatientName": payment.Patient.FullName,
		"Amount":      payment.Amount.StringFixed(2),
		"Method":      payment.Method,
		"Description": payment.Description,
		"PaidAt":      payment.PaidAt.Format("02/01/2006"),
		"IssuedAt":    time.Now().UTC().Format("02/01/2006"),
	})
	if err != nil {
		u.log.Warnf("Failed to render receipt template: %+v", err)
		return nil, err
	}

	return u.renderer.Render(ctx, html.String())
}

// reportRow is one aggregated line of the financial report.
type reportRow struct {
	Label string
	Total string
}

type reportData struct {
	ClinicName string
	From       string
	To         string
	Total      string
	Count      int
	ByMethod   []reportRow
	ByDoctor   []reportRow
	IssuedAt   string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Relatório Financeiro</title></head>
<body>
<h1>{{.ClinicName}}</h1>
<h2>Relatório Financeiro de {{.From}} a {{.To}}</h2>
<p>Total recebido: R$ {{.Total}} ({{.Count}} pagamentos)</p>
<h3>Por forma de pagamento</h3>
<table>
{{range .ByMethod}}<tr><td>{{.Label}}</td><td>R$ {{.Total}}</td></tr>
{{end}}</table>
<h3>Por profissional</h3>
<table>
{{range .ByDoctor}}<tr><td>{{.Label}}</td><td>R$ {{.Total}}</td></tr>
{{end}}</table>
<p>Emitido em {{.IssuedAt}}</p>
</body>
</html>`))

func (u *financialUsecase) GetReportPDF(ctx context.Context, clinicID uuid.UUID, from, to string) ([]byte, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, ErrInvalidPeriod
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, ErrInvalidPeriod
	}
	if toDate.Before(fromDate) {
		return nil, ErrInvalidPeriod
	}
	// Make the upper bound inclusive of the whole day.
	toDate = toDate.Add(24*time.Hour - time.Second)

	db := u.db.WithContext(ctx)

	clinic, err := u.clinicRepo.FindByID(db, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %s: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	payments, err := u.paymentRepo.FindByClinicAndPeriod(db, clinicID, fromDate, toDate)
	if err != nil {
		u.log.Warnf("Failed to list payments for period: %+v", err)
		return nil, err
	}

	total := decimal.Zero
	byMethod := map[string]decimal.Decimal{}
	byDoctor := map[string]decimal.Decimal{}
	for i := range payments {
		p := &payments[i]
		total = total.Add(p.Amount)
		byMethod[p.Method] = byMethod[p.Method].Add(p.Amount)

		doctorName := "Sem profissional"
		if p.Appointment != nil && p.Appointment.Doctor.User.FullName != "" {
			doctorName = p.Appointment.Doctor.User.FullName
		}
		byDoctor[doctorName] = byDoctor[doctorName].Add(p.Amount)
	}

	data := reportData{
		ClinicName: clinic.Name,
		From:       fromDate.Format("02/01/2006"),
		To:         toDate.Format("02/01/2006"),
		Total:      total.StringFixed(2),
		Count:      len(payments),
		ByMethod:   sortedRows(byMethod),
		ByDoctor:   sortedRows(byDoctor),
		IssuedAt:   time.Now().UTC().Format("02/01/2006"),
	}

	var html strings.Builder
	if err := reportTemplate.Execute(&html, data); err != nil {
		u.log.Warnf("Failed to render report template: %+v", err)
		return nil, err
	}

	return u.renderer.Render(ctx, html.String())
}

// sortedRows flattens an aggregation map into rows sorted by label so the
// document layout is stable between renders.
func sortedRows(totals map[string]decimal.Decimal) []reportRow {
	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([]reportRow, len(labels))
	for i, label := range labels {
		rows[i] = reportRow{Label: label, Total: totals[label].StringFixed(2)}
	}
	return rows
}
