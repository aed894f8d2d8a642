package router

import "errors"

var (
	errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")
	errNoRoute          = errors.New("there is no endpoint at this path")
)
