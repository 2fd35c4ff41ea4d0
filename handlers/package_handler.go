package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fahim-khandakar/explore-elite-server-side/authorization"
	"github.com/fahim-khandakar/explore-elite-server-side/domain"
	application "github.com/fahim-khandakar/explore-elite-server-side/service"
)

type PackageHandler struct {
	service *application.PackageService
	auth    *authorization.Authorizer
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewPackageHandler(service *application.PackageService, auth *authorization.Authorizer, tracer trace.Tracer, logger *logrus.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		auth:    auth,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *PackageHandler) Init(router *mux.Router) {
	auth := handler.auth

	router.HandleFunc("/addPackage", auth.VerifyToken(auth.RequireAdmin(handler.Add))).Methods("POST")
	router.HandleFunc("/packages", handler.GetAll).Methods("GET")
	router.HandleFunc("/packageDetails/{id}", handler.Details).Methods("GET")
	router.HandleFunc("/byType/{type}", handler.GetByType).Methods("GET")
}

func (handler *PackageHandler) Add(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PackageHandler.Add")
	defer span.End()

	var tourPackage domain.Package
	if err := json.NewDecoder(req.Body).Decode(&tourPackage); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Add(ctx, &tourPackage)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.WithError(err).Error("Add package failed")
		writeInternal(writer)
		return
	}
	jsonResponse(result, writer)
}

func (handler *PackageHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PackageHandler.GetAll")
	defer span.End()

	packages, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(packages, writer)
}

func (handler *PackageHandler) Details(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PackageHandler.Details")
	defer span.End()

	id, ok := parseID(writer, mux.Vars(req)["id"])
	if !ok {
		return
	}

	tourPackage, err := handler.service.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(tourPackage, writer)
}

func (handler *PackageHandler) GetByType(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "PackageHandler.GetByType")
	defer span.End()

	packageType := mux.Vars(req)["type"]

	packages, err := handler.service.GetByType(ctx, packageType)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(packages, writer)
}
