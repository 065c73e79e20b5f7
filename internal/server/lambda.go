package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-life-records/internal/app"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/utils"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

// lambdaServer serves API Gateway proxy events with an http.Handler.
type lambdaServer struct {
	handler http.Handler
	logger  *logger.Logger
}

func newLambdaServer(handler http.Handler, logger *logger.Logger) *lambdaServer {
	return &lambdaServer{handler: handler, logger: logger}
}

// RunServer hands control to the Lambda runtime. It does not return.
func (l *lambdaServer) RunServer() {
	lambda.Start(l.handle)
}

// Shutdown is a no-op: the Lambda runtime owns the process lifecycle.
func (l *lambdaServer) Shutdown() {}

func (l *lambdaServer) handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := requestFromEvent(ctx, event)
	if err != nil {
		l.logger.Err(err).Str("func", "*lambdaServer.handle").Msg("error converting proxy event")
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": utils.ContentTypeJSON},
			Body:       fmt.Sprintf(`{"error":%q}`, app.MsgInvalidProxyEvent),
		}, nil
	}

	w := newProxyResponseWriter()
	l.handler.ServeHTTP(w, req)

	return w.response(), nil
}

// requestFromEvent rebuilds the *http.Request API Gateway received.
func requestFromEvent(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errInvalidEventBody, err)
		}
		body = decoded
	}

	query := url.Values{}
	for k, v := range event.QueryStringParameters {
		query.Set(k, v)
	}
	for k, vs := range event.MultiValueQueryStringParameters {
		query[k] = vs
	}

	u := url.URL{Path: event.Path, RawQuery: query.Encode()}
	if u.Path == "" {
		u.Path = "/"
	}

	req, err := http.NewRequestWithContext(ctx, event.HTTPMethod, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for k, v := range event.Headers {
		req.Header.Set(k, v)
	}
	for k, vs := range event.MultiValueHeaders {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	req.RequestURI = u.RequestURI()
	req.RemoteAddr = event.RequestContext.Identity.SourceIP
	req.Host = req.Header.Get("Host")

	return req, nil
}

// proxyResponseWriter buffers a response for the proxy integration.
type proxyResponseWriter struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func newProxyResponseWriter() *proxyResponseWriter {
	return &proxyResponseWriter{header: http.Header{}}
}

func (w *proxyResponseWriter) Header() http.Header {
	return w.header
}

func (w *proxyResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(b)
}

func (w *proxyResponseWriter) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	w.status = statusCode
}

func (w *proxyResponseWriter) response() events.APIGatewayProxyResponse {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}

	resp := events.APIGatewayProxyResponse{
		StatusCode:        status,
		Headers:           make(map[string]string, len(w.header)),
		MultiValueHeaders: make(map[string][]string, len(w.header)),
	}
	for k, vs := range w.header {
		resp.Headers[k] = strings.Join(vs, ",")
		resp.MultiValueHeaders[k] = vs
	}

	// compressed bodies are not valid UTF-8 text
	if w.header.Get("Content-Encoding") != "" {
		resp.Body = base64.StdEncoding.EncodeToString(w.body.Bytes())
		resp.IsBase64Encoded = true
	} else {
		resp.Body = w.body.String()
	}

	return resp
}
