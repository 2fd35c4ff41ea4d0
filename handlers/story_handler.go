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

type StoryHandler struct {
	service *application.StoryService
	auth    *authorization.Authorizer
	tracer  trace.Tracer
	logger  *logrus.Logger
}

func NewStoryHandler(service *application.StoryService, auth *authorization.Authorizer, tracer trace.Tracer, logger *logrus.Logger) *StoryHandler {
	return &StoryHandler{
		service: service,
		auth:    auth,
		tracer:  tracer,
		logger:  logger,
	}
}

func (handler *StoryHandler) Init(router *mux.Router) {
	router.HandleFunc("/addStory", handler.auth.VerifyToken(handler.Add)).Methods("POST")
	router.HandleFunc("/allStory", handler.GetAll).Methods("GET")
	router.HandleFunc("/storyDetails/{id}", handler.Details).Methods("GET")
}

func (handler *StoryHandler) Add(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "StoryHandler.Add")
	defer span.End()

	var story domain.Story
	if err := json.NewDecoder(req.Body).Decode(&story); err != nil {
		span.SetStatus(codes.Error, err.Error())
		http.Error(writer, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := handler.service.Add(ctx, &story)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		handler.logger.WithError(err).Error("Add story failed")
		writeInternal(writer)
		return
	}
	jsonResponse(result, writer)
}

func (handler *StoryHandler) GetAll(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "StoryHandler.GetAll")
	defer span.End()

	stories, err := handler.service.GetAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(stories, writer)
}

func (handler *StoryHandler) Details(writer http.ResponseWriter, req *http.Request) {
	ctx, span := handler.tracer.Start(req.Context(), "StoryHandler.Details")
	defer span.End()

	id, ok := parseID(writer, mux.Vars(req)["id"])
	if !ok {
		return
	}

	story, err := handler.service.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeInternal(writer)
		return
	}
	jsonResponse(story, writer)
}
