package main

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// serverError logs the stack and answers with the shared message envelope.
func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprint(w, `{"message":"internal server error"}`)
}
