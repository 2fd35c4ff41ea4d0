package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fahim-khandakar/explore-elite-server-side/authorization"
	"github.com/fahim-khandakar/explore-elite-server-side/domain"
	application "github.com/fahim-khandakar/explore-elite-server-side/service"
)

type BookingHandler struct {
	service *application.BookingService
	auth    *authorization.Authorizer
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewBookingHandler(service *application.BookingService, auth *authorization.Authorizer, tracer trace.Tracer, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		auth:    auth,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *BookingHandler) Init(router *mux.Router) {
	auth := handler.auth

	router.HandleFunc("/addBooking", handler.Add).Methods("POST")
	router.HandleFunc("/bookings", auth.VerifyToken(handler.GetByEmail)).Methods("GET")
	router.HandleFunc("/bookingCancel/{id}", auth.VerifyToken(handler.Cancel)).Methods("PUT")
	router.HandleFunc("/assignTours", auth.VerifyToken(handler.GetAssigned)).Methods("GET")
	router.HandleFunc("/assignTourCancel/{id}", auth.VerifyToken(handler.Cancel)).Methods("PUT")
	router.HandleFunc("/assignTourAccept/{id}", auth.VerifyToken(handler.Accept)).Methods("PUT")
}

func (handler *BookingHandler) Add(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Add")
	defer span.End()

	var booking domain.Booking
	if err := booking.FromJSON(req.Body); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Add(ctx, &booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.WithError(err).Error("Add booking failed")
		writeInternal(writer)
		return
	}
	jsonResponse(result, writer)
}

func (handler *BookingHandler) GetByEmail(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetByEmail")
	defer span.End()

	email := req.URL.Query().Get("email")
	if email == "" {
		writeMissingEmail(writer)
		return
	}

	identity, _ := authorization.IdentityFromContext(req.Context())
	if email != identity.Email {
		writeForbidden(writer)
		return
	}

	bookings, err := handler.service.GetByEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(bookings, writer)
}

func (handler *BookingHandler) GetAssigned(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.GetAssigned")
	defer span.End()

	email := req.URL.Query().Get("email")
	if email == "" {
		writeMissingEmail(writer)
		return
	}

	identity, _ := authorization.IdentityFromContext(req.Context())
	if email != identity.Email {
		writeForbidden(writer)
		return
	}

	bookings, err := handler.service.GetAssigned(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(bookings, writer)
}

func (handler *BookingHandler) Cancel(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Cancel")
	defer span.End()

	id, ok := parseID(writer, mux.Vars(req)["id"])
	if !ok {
		return
	}

	result, err := handler.service.Cancel(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(result, writer)
}

func (handler *BookingHandler) Accept(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "BookingHandler.Accept")
	defer span.End()

	id, ok := parseID(writer, mux.Vars(req)["id"])
	if !ok {
		return
	}

	result, err := handler.service.Accept(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(result, writer)
}
