package exceptions

import (
	"embrew-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err, keeping the locations of an already wrapped CustomError
// so the log shows the whole path the error travelled.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	var previous *CustomError
	if errors.As(err, &previous) {
		return &CustomError{
			StatusCode:    statusCode,
			ClientMessage: clientMessage,
			DevMessage:    fmt.Sprintf("%s: %s", devMessage, previous.DevMessage),
			Locations:     append([]Location{location}, previous.Locations...),
			cause:         err,
		}
	}

	message := devMessage
	if err != nil {
		message = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    message,
		Locations:     []Location{location},
		cause:         err,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
