package terminal

import (
	"errors"
)

const (
	logFieldErr    = "err"
	logFieldStatus = "status"
)

// StatusError is an error reported with an HTTP status
type StatusError interface {
	error
	StatusCode() int
}

type errorMessage struct {
	error
}

func (e errorMessage) Message() (string, error) {
	return e.Error(), nil
}

func (e errorMessage) Payload() ([]string, map[string]interface{}, error) {
	fields := []string{logFieldErr}
	payload := map[string]interface{}{logFieldErr: e.Error()}

	var statusErr StatusError
	if errors.As(e.error, &statusErr) {
		fields = append(fields, logFieldStatus)
		payload[logFieldStatus] = statusErr.StatusCode()
	}
	return fields, payload, nil
}
