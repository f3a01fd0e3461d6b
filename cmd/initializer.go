package main

import (
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"campusmarket/internal/config"
	"campusmarket/internal/editor"
	"campusmarket/internal/handlers"
	"campusmarket/internal/marketapi"
	"campusmarket/internal/session"
	"campusmarket/utils"
)

type application struct {
	errorLog       *log.Logger
	infoLog        *log.Logger
	sessions       *session.Manager
	sessionHandler *handlers.SessionHandler
	catalogHandler *handlers.CatalogHandler
	editorHandler  *handlers.EditorHandler
	listingHandler *handlers.ListingHandler
	profileHandler *handlers.ProfileHandler
}

func initializeApp(cfg config.Config, rdb *redis.Client, verifier session.Verifier, errorLog, infoLog *log.Logger) (*application, error) {
	api := marketapi.NewClient(&http.Client{Timeout: cfg.APITimeout()}, cfg.MarketAPI.BaseURL)

	storage, err := utils.NewS3Storage(utils.S3Config{
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		return nil, err
	}

	tokens, err := utils.NewManager(cfg.Session.SigningKey)
	if err != nil {
		return nil, err
	}

	var sessionStore session.Store
	var editorStore editor.Store
	if rdb != nil {
		sessionStore = session.NewRedisStore(rdb)
		editorStore = editor.NewRedisStore(rdb, cfg.SessionTTL())
	} else {
		sessionStore = session.NewMemoryStore()
		editorStore = editor.NewMemoryStore()
	}

	sessions := session.NewManager(verifier, sessionStore, tokens, cfg.SessionTTL())
	editorService := &editor.Service{API: api, Store: editorStore, Images: storage}

	return &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		sessions:       sessions,
		sessionHandler: &handlers.SessionHandler{Sessions: sessions},
		catalogHandler: &handlers.CatalogHandler{API: api, Store: editorStore},
		editorHandler:  &handlers.EditorHandler{Editor: editorService},
		listingHandler: &handlers.ListingHandler{API: api, Images: storage},
		profileHandler: &handlers.ProfileHandler{API: api},
	}, nil
}
