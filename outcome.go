package llamafi

import (
	"encoding/json"

	"github.com/agentstation/llamafi/pkg/endpoints"
	"github.com/agentstation/llamafi/pkg/errors"
)

// Outcome is the result of one call: either a success carrying the JSON body
// exactly as received, or a failure describing the non-200 response.
// Exactly one of Payload and Failure is non-nil.
type Outcome struct {
	operation  endpoints.Operation
	url        string
	statusCode int
	payload    json.RawMessage
	failure    *errors.APIError
}

func succeeded(op endpoints.Operation, url string, body []byte) *Outcome {
	if body == nil {
		body = []byte{}
	}
	return &Outcome{
		operation:  op,
		url:        url,
		statusCode: 200,
		payload:    body,
	}
}

func failed(failure *errors.APIError) *Outcome {
	return &Outcome{
		operation:  endpoints.Operation(failure.Operation),
		url:        failure.Endpoint,
		statusCode: failure.StatusCode,
		failure:    failure,
	}
}

// Operation returns the operation that produced the outcome.
func (o *Outcome) Operation() endpoints.Operation {
	return o.operation
}

// URL returns the fully resolved request URL.
func (o *Outcome) URL() string {
	return o.url
}

// StatusCode returns the HTTP status of the response.
func (o *Outcome) StatusCode() int {
	return o.statusCode
}

// Succeeded reports whether the response status was 200.
func (o *Outcome) Succeeded() bool {
	return o.failure == nil
}

// Payload returns the response body of a successful call, or nil on failure.
func (o *Outcome) Payload() json.RawMessage {
	return o.payload
}

// Failure returns the failure detail, or nil on success.
func (o *Outcome) Failure() *errors.APIError {
	return o.failure
}

// Err returns the failure as an error, or nil on success.
func (o *Outcome) Err() error {
	if o.failure == nil {
		return nil
	}
	return o.failure
}

// Decode unmarshals the payload into v. On a failed outcome it returns the
// failure instead.
func (o *Outcome) Decode(v any) error {
	if o.failure != nil {
		return o.failure
	}
	if err := json.Unmarshal(o.payload, v); err != nil {
		return errors.WrapParse("json", o.url, err)
	}
	return nil
}
