package router

import "errors"

var (
	errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")
	errNotFound         = errors.New("there is no endpoint for the path you called")
)
