package http

import (
	"net/http"

	"medifind/internal/delivery/http/handler"
	"medifind/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	sessionHandler     *handler.SessionHandler
	doctorHandler      *handler.DoctorHandler
	reviewHandler      *handler.ReviewHandler
	medicineHandler    *handler.MedicineHandler
	appointmentHandler *handler.AppointmentHandler
	symptomHandler     *handler.SymptomHandler
	sessionMiddleware  *middleware.SessionMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	sessionHandler *handler.SessionHandler,
	doctorHandler *handler.DoctorHandler,
	reviewHandler *handler.ReviewHandler,
	medicineHandler *handler.MedicineHandler,
	appointmentHandler *handler.AppointmentHandler,
	symptomHandler *handler.SymptomHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		sessionHandler:     sessionHandler,
		doctorHandler:      doctorHandler,
		reviewHandler:      reviewHandler,
		medicineHandler:    medicineHandler,
		appointmentHandler: appointmentHandler,
		symptomHandler:     symptomHandler,
		sessionMiddleware:  sessionMiddleware,
		loggingMiddleware:  loggingMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Session routes (public)
	session := api.PathPrefix("/session").Subrouter()
	session.HandleFunc("", r.sessionHandler.GetSession).Methods(http.MethodGet)
	session.HandleFunc("/login", r.sessionHandler.Login).Methods(http.MethodPost)
	session.HandleFunc("/logout", r.sessionHandler.Logout).Methods(http.MethodPost)
	session.HandleFunc("/login-prompt", r.sessionHandler.TriggerLoginPrompt).Methods(http.MethodPost)
	session.HandleFunc("/login-prompt", r.sessionHandler.CloseLoginPrompt).Methods(http.MethodDelete)

	// Session routes (logged in)
	sessionProtected := api.PathPrefix("/session").Subrouter()
	sessionProtected.Use(middleware.RequireSession)
	sessionProtected.HandleFunc("/profile", r.sessionHandler.UpdateProfile).Methods(http.MethodPut)
	sessionProtected.HandleFunc("/health-details", r.sessionHandler.UpdateHealthDetails).Methods(http.MethodPut)
	sessionProtected.HandleFunc("/health-details/skip", r.sessionHandler.SkipHealthDetails).Methods(http.MethodPost)

	// Doctors and reviews. Static segments go before {id}.
	api.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/reviews", r.reviewHandler.GetReviews).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/reviews", r.reviewHandler.CreateReview).Methods(http.MethodPost)

	// Medicines
	api.HandleFunc("/medicines", r.medicineHandler.GetMedicines).Methods(http.MethodGet)
	api.HandleFunc("/medicines/categories", r.medicineHandler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/medicines/{id}", r.medicineHandler.GetMedicine).Methods(http.MethodGet)
	api.HandleFunc("/medicines/{id}/pharmacies/{pharmacyId}/stock", r.medicineHandler.UpdateStock).Methods(http.MethodPut)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.ConfirmAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment).Methods(http.MethodPost)

	// Symptoms
	api.HandleFunc("/symptoms", r.symptomHandler.GetSymptoms).Methods(http.MethodGet)
	api.HandleFunc("/symptoms/specialties", r.symptomHandler.GetSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/symptoms/recommendations", r.symptomHandler.GetRecommendations).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.sessionMiddleware.Inject)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
