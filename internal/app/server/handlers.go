package server

import "net/http"

const (
	contentType  = "text/plain; charset=utf-8"
	notFoundBody = "404 page not found\n"
)

func greetingHandler(greeting string) HandlerFunc {
	return func(Request) Response {
		return Response{StatusCode: http.StatusOK, Body: greeting}
	}
}

func notFoundHandler(Request) Response {
	return Response{StatusCode: http.StatusNotFound, Body: notFoundBody}
}
