package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fahim-khandakar/explore-elite-server-side/authorization"
	"github.com/fahim-khandakar/explore-elite-server-side/domain"
	errs "github.com/fahim-khandakar/explore-elite-server-side/errors"
	application "github.com/fahim-khandakar/explore-elite-server-side/service"
)

type UserHandler struct {
	service *application.UserService
	auth    *authorization.Authorizer
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewUserHandler(service *application.UserService, auth *authorization.Authorizer, tracer trace.Tracer, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		auth:    auth,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *UserHandler) Init(router *mux.Router) {
	auth := handler.auth

	router.HandleFunc("/", handler.Liveness).Methods("GET")
	router.HandleFunc("/jwt", handler.IssueToken).Methods("POST")
	router.HandleFunc("/users", handler.Register).Methods("POST")
	router.HandleFunc("/users", auth.VerifyToken(handler.GetAll)).Methods("GET")
	router.HandleFunc("/users/guide", handler.GetGuides).Methods("GET")
	router.HandleFunc("/guideDetails/{id}", handler.GuideDetails).Methods("GET")
	router.HandleFunc("/users/makeAdmin/{id}", auth.VerifyToken(auth.RequireAdmin(handler.MakeAdmin))).Methods("PUT")
	router.HandleFunc("/users/makeGuide/{id}", auth.VerifyToken(auth.RequireAdmin(handler.MakeGuide))).Methods("PUT")
	router.HandleFunc("/users/admin/{email}", auth.VerifyToken(handler.CheckAdmin)).Methods("GET")
	router.HandleFunc("/users/guide/{email}", auth.VerifyToken(handler.CheckGuide)).Methods("GET")
}

func (handler *UserHandler) Liveness(writer http.ResponseWriter, req *http.Request) {
	writer.Write([]byte("Explore Elite is running"))
}

// IssueToken signs whatever JSON object the client sends as the token
// claims. Sign-in happens upstream; this endpoint only mints the credential.
func (handler *UserHandler) IssueToken(writer http.ResponseWriter, req *http.Request) {
	_, span := handler.tracer.Start(req.Context(), "UserHandler.IssueToken")
	defer span.End()

	var claims map[string]interface{}
	if err := json.NewDecoder(req.Body).Decode(&claims); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := handler.auth.GenerateToken(claims)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.WithError(err).Error(errs.ErrorToken)
		writer.WriteHeader(http.StatusInternalServerError)
		jsonResponse(map[string]string{"message": errs.ErrorToken}, writer)
		return
	}

	jsonResponse(map[string]string{"token": token}, writer)
}

type alreadyExistResponse struct {
	Message    string      `json:"message"`
	InsertedID interface{} `json:"insertedId"`
}

func (handler *UserHandler) Register(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.Register")
	defer span.End()

	var user domain.User
	if err := json.NewDecoder(req.Body).Decode(&user); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Register(ctx, &user)
	if errors.Is(err, application.ErrUserExists) {
		jsonResponse(alreadyExistResponse{Message: errs.UserAlreadyExist, InsertedID: nil}, writer)
		return
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.WithError(err).Error("Register failed")
		writeInternal(writer)
		return
	}

	jsonResponse(result, writer)
}

func (handler *UserHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.GetAll")
	defer span.End()

	users, err := handler.service.GetAllNonAdmin(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(users, writer)
}

func (handler *UserHandler) GetGuides(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.GetGuides")
	defer span.End()

	guides, err := handler.service.GetGuides(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(guides, writer)
}

func (handler *UserHandler) GuideDetails(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.GuideDetails")
	defer span.End()

	id, ok := parseID(writer, mux.Vars(req)["id"])
	if !ok {
		return
	}

	guide, err := handler.service.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	// A miss answers null with 200, callers treat the empty body as
	// not-found.
	jsonResponse(guide, writer)
}

func (handler *UserHandler) MakeAdmin(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.MakeAdmin")
	defer span.End()

	id, ok := parseID(writer, mux.Vars(req)["id"])
	if !ok {
		return
	}

	result, err := handler.service.MakeAdmin(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(result, writer)
}

func (handler *UserHandler) MakeGuide(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.MakeGuide")
	defer span.End()

	id, ok := parseID(writer, mux.Vars(req)["id"])
	if !ok {
		return
	}

	result, err := handler.service.MakeGuide(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(result, writer)
}

func (handler *UserHandler) CheckAdmin(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.CheckAdmin")
	defer span.End()

	email := mux.Vars(req)["email"]
	identity, _ := authorization.IdentityFromContext(req.Context())
	if email != identity.Email {
		handler.logger.WithFields(logrus.Fields{"param": email, "token": identity.Email}).Warn("Identity mismatch on admin check")
		writeForbidden(writer)
		return
	}

	admin, err := handler.service.IsAdmin(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(map[string]bool{"admin": admin}, writer)
}

func (handler *UserHandler) CheckGuide(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "UserHandler.CheckGuide")
	defer span.End()

	email := mux.Vars(req)["email"]
	identity, _ := authorization.IdentityFromContext(req.Context())
	if email != identity.Email {
		writeForbidden(writer)
		return
	}

	guide, err := handler.service.IsGuide(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(map[string]bool{"guide": guide}, writer)
}
