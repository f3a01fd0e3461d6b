package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.requireSession)

	mux := pat.New()

	// Session
	mux.Post("/session", standardMiddleware.ThenFunc(app.sessionHandler.SignIn))
	mux.Del("/session", standardMiddleware.ThenFunc(app.sessionHandler.SignOut))
	mux.Get("/session/me", authMiddleware.ThenFunc(app.sessionHandler.Me))

	// Catalog
	mux.Get("/catalog/listings", authMiddleware.ThenFunc(app.catalogHandler.Search))

	// Editor
	mux.Get("/editor/draft", authMiddleware.ThenFunc(app.editorHandler.Draft))
	mux.Post("/editor/tab", authMiddleware.ThenFunc(app.editorHandler.SwitchTab))
	mux.Post("/editor/select", authMiddleware.ThenFunc(app.editorHandler.SelectItem))
	mux.Post("/editor/field", authMiddleware.ThenFunc(app.editorHandler.SetField))
	mux.Post("/editor/submit", authMiddleware.ThenFunc(app.editorHandler.Submit))
	mux.Get("/editor/items/:kind", authMiddleware.ThenFunc(app.editorHandler.Items))

	// Listings
	mux.Get("/items/:kind/:id", authMiddleware.ThenFunc(app.listingHandler.ItemDetails))
	mux.Post("/upload-image", authMiddleware.ThenFunc(app.listingHandler.UploadImage))
	mux.Del("/delete-image/:filename", authMiddleware.ThenFunc(app.listingHandler.DeleteImage))

	// Profile
	mux.Post("/profile/contact-info", authMiddleware.ThenFunc(app.profileHandler.UpdateContactInfo))
	mux.Get("/profile/items", authMiddleware.ThenFunc(app.profileHandler.Items))
	mux.Get("/profile/transactions", authMiddleware.ThenFunc(app.profileHandler.Transactions))

	return standardMiddleware.Then(mux)
}
