package http

import (
	"net/http"

	"dental-clinic-service/internal/delivery/http/handler"
	"dental-clinic-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	clinicHandler       *handler.ClinicHandler
	doctorHandler       *handler.DoctorHandler
	employeeHandler     *handler.EmployeeHandler
	patientHandler      *handler.PatientHandler
	appointmentHandler  *handler.AppointmentHandler
	availabilityHandler *handler.AvailabilityHandler
	anamnesisHandler    *handler.AnamnesisHandler
	odontogramHandler   *handler.OdontogramHandler
	financialHandler    *handler.FinancialHandler
	billingHandler      *handler.BillingHandler
	ticketHandler       *handler.TicketHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	clinicHandler *handler.ClinicHandler,
	doctorHandler *handler.DoctorHandler,
	employeeHandler *handler.EmployeeHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	availabilityHandler *handler.AvailabilityHandler,
	anamnesisHandler *handler.AnamnesisHandler,
	odontogramHandler *handler.OdontogramHandler,
	financialHandler *handler.FinancialHandler,
	billingHandler *handler.BillingHandler,
	ticketHandler *handler.TicketHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		clinicHandler:       clinicHandler,
		doctorHandler:       doctorHandler,
		employeeHandler:     employeeHandler,
		patientHandler:      patientHandler,
		appointmentHandler:  appointmentHandler,
		availabilityHandler: availabilityHandler,
		anamnesisHandler:    anamnesisHandler,
		odontogramHandler:   odontogramHandler,
		financialHandler:    financialHandler,
		billingHandler:      billingHandler,
		ticketHandler:       ticketHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterClinic).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Staff routes: any authenticated clinic member
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	// Patients
	staff.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	staff.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)

	// Appointments and availability
	staff.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	staff.HandleFunc("/appointments", r.appointmentHandler.GetAppointmentsByDay).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	staff.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	staff.HandleFunc("/doctors/{id}/availability", r.availabilityHandler.GetDoctorAvailability).Methods(http.MethodGet)

	// Doctors (read)
	staff.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	staff.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Support tickets
	staff.HandleFunc("/tickets", r.ticketHandler.CreateTicket).Methods(http.MethodPost)
	staff.HandleFunc("/tickets", r.ticketHandler.GetAllTickets).Methods(http.MethodGet)
	staff.HandleFunc("/tickets/{id}/close", r.ticketHandler.CloseTicket).Methods(http.MethodPost)

	// Clinical records: admins and doctors only
	clinical := api.PathPrefix("").Subrouter()
	clinical.Use(r.authMiddleware.Authenticate)
	clinical.Use(middleware.RequireClinicalStaff)
	clinical.HandleFunc("/patients/{id}/anamnesis", r.anamnesisHandler.UpsertAnamnesis).Methods(http.MethodPost)
	clinical.HandleFunc("/patients/{id}/anamnesis", r.anamnesisHandler.GetAnamnesisHistory).Methods(http.MethodGet)
	clinical.HandleFunc("/patients/{id}/odontogram", r.odontogramHandler.CreateSnapshot).Methods(http.MethodPost)
	clinical.HandleFunc("/patients/{id}/odontogram", r.odontogramHandler.GetOdontogramHistory).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Clinic profile
	admin.HandleFunc("/clinic", r.clinicHandler.GetClinic).Methods(http.MethodGet)
	admin.HandleFunc("/clinic", r.clinicHandler.UpdateClinic).Methods(http.MethodPut)

	// Staff management
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeactivateDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/employees", r.employeeHandler.CreateEmployee).Methods(http.MethodPost)
	admin.HandleFunc("/employees", r.employeeHandler.GetAllEmployees).Methods(http.MethodGet)
	admin.HandleFunc("/employees/{id}", r.employeeHandler.GetEmployee).Methods(http.MethodGet)
	admin.HandleFunc("/employees/{id}", r.employeeHandler.UpdateEmployee).Methods(http.MethodPut)
	admin.HandleFunc("/employees/{id}", r.employeeHandler.DeactivateEmployee).Methods(http.MethodDelete)
	admin.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Financials
	admin.HandleFunc("/financials/payments", r.financialHandler.CreatePayment).Methods(http.MethodPost)
	admin.HandleFunc("/financials/payments", r.financialHandler.GetAllPayments).Methods(http.MethodGet)
	admin.HandleFunc("/financials/receipt/{paymentId}", r.financialHandler.GetReceiptPDF).Methods(http.MethodGet)
	admin.HandleFunc("/financials/report", r.financialHandler.GetReportPDF).Methods(http.MethodGet)

	// Subscription billing
	admin.HandleFunc("/billing/checkout", r.billingHandler.CreateCheckout).Methods(http.MethodPost)
	admin.HandleFunc("/billing/cancel", r.billingHandler.CancelSubscription).Methods(http.MethodPost)
	admin.HandleFunc("/billing/resume", r.billingHandler.ResumeSubscription).Methods(http.MethodPost)

	// Audit trail
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetRecentLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
