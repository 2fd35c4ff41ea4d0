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

type WishHandler struct {
	service *application.WishService
	auth    *authorization.Authorizer
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewWishHandler(service *application.WishService, auth *authorization.Authorizer, tracer trace.Tracer, logger *logrus.Logger) *WishHandler {
	return &WishHandler{
		service: service,
		auth:    auth,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *WishHandler) Init(router *mux.Router) {
	auth := handler.auth

	router.HandleFunc("/addWish", auth.VerifyToken(handler.Add)).Methods("POST")
	router.HandleFunc("/wishes", auth.VerifyToken(handler.GetByUser)).Methods("GET")
	router.HandleFunc("/deleteWish/{id}", auth.VerifyToken(handler.Delete)).Methods("DELETE")
}

func (handler *WishHandler) Add(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "WishHandler.Add")
	defer span.End()

	var wish domain.Wish
	if err := json.NewDecoder(req.Body).Decode(&wish); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Add(ctx, &wish)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.WithError(err).Error("Add wish failed")
		writeInternal(writer)
		return
	}
	jsonResponse(result, writer)
}

func (handler *WishHandler) GetByUser(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "WishHandler.GetByUser")
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

	wishes, err := handler.service.GetByUser(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(wishes, writer)
}

func (handler *WishHandler) Delete(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "WishHandler.Delete")
	defer span.End()

	id, ok := parseID(writer, mux.Vars(req)["id"])
	if !ok {
		return
	}

	result, err := handler.service.Delete(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(result, writer)
}
