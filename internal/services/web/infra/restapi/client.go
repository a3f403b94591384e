// Package restapi is the web tier's client for the JavaBite REST backend.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/javabite/internal/platform/timeouts"
	apperrors "github.com/louisbranch/javabite/internal/services/web/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the backend root used when none is configured.
const DefaultBaseURL = "http://localhost:8080/api"

const (
	refreshPath      = "/auth/refresh"
	feedbackPrefix   = "/feedback"
	maxMessageLength = 280
	tracerName       = "github.com/louisbranch/javabite/internal/services/web/infra/restapi"
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *log.Logger
}

// Client issues authenticated JSON requests against the backend.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *log.Logger
	tracer     trace.Tracer
}

// New builds a Client with defaults applied.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("restapi: invalid base url %q", opts.BaseURL)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = timeouts.APIRequest
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL:    base,
		timeout:    timeout,
		httpClient: httpClient,
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

// BaseURL returns the normalized backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one backend call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON encoded when set.
	Body any
	// Form sends a multipart body instead of JSON.
	Form *MultipartForm
	// Anonymous calls never carry a bearer token and never refresh.
	Anonymous bool
}

// MultipartForm is a multipart/form-data body.
type MultipartForm struct {
	Fields []FormField
	Files  []FormFile
}

// FormField is one text part.
type FormField struct {
	Name  string
	Value string
}

// FormFile is one file part.
type FormFile struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

type response struct {
	status int
	header http.Header
	body   []byte
}

type encodedBody struct {
	contentType string
	payload     []byte
}

// Do performs req and decodes a JSON response into out when out is non-nil.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	resp, err := c.execute(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		c.logger.Printf("restapi decode failed method=%s path=%s err=%v", req.Method, req.Path, err)
		return apperrors.E(apperrors.KindUnavailable, "backend returned an unexpected response")
	}
	return nil
}

// Get is Do for GET requests.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

// Download fetches a binary document, such as a PDF receipt.
func (c *Client) Download(ctx context.Context, path string) (Document, error) {
	resp, err := c.execute(ctx, Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return Document{}, err
	}
	doc := Document{
		ContentType: strings.TrimSpace(resp.header.Get("Content-Type")),
		Data:        resp.body,
	}
	if doc.ContentType == "" {
		doc.ContentType = "application/octet-stream"
	}
	if _, params, err := mime.ParseMediaType(resp.header.Get("Content-Disposition")); err == nil {
		doc.Filename = params["filename"]
	}
	return doc, nil
}

func (c *Client) execute(ctx context.Context, req Request) (response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	req.Method = method
	body, err := encodeBody(req)
	if err != nil {
		return response{}, fmt.Errorf("restapi encode %s %s: %w", method, req.Path, err)
	}

	ctx, span := c.tracer.Start(ctx, "restapi "+method+" "+req.Path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", req.Path),
	)

	creds, hasCreds := CredentialsFrom(ctx)
	var tokens Tokens
	if hasCreds && !req.Anonymous {
		tokens = creds.Current()
	}

	resp, err := c.send(ctx, req, body, tokens)
	if err == nil && resp.status == http.StatusUnauthorized && tokens.AccessToken != "" && req.Path != refreshPath {
		span.AddEvent("refresh")
		fresh, refreshErr := c.refresh(ctx, creds, tokens)
		if refreshErr != nil {
			return c.fail(span, req, resp.status, refreshErr)
		}
		resp, err = c.send(ctx, req, body, fresh)
	}
	if err != nil {
		return c.fail(span, req, 0, apperrors.E(apperrors.KindUnavailable, "backend is unavailable"))
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.status))
	if resp.status < 200 || resp.status > 299 {
		return c.fail(span, req, resp.status, apperrors.FromUpstreamStatus(resp.status, upstreamMessage(resp.body)))
	}
	return resp, nil
}

func (c *Client) fail(span trace.Span, req Request, status int, err error) (response, error) {
	c.logger.Printf("restapi request failed method=%s path=%s status=%d err=%v", req.Method, req.Path, status, err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return response{}, err
}

// refresh exchanges the refresh token once per stale access token. Callers
// racing on the same session wait on the credentials lock and reuse the
// token the winner stored.
func (c *Client) refresh(ctx context.Context, creds Credentials, stale Tokens) (Tokens, error) {
	unauthorized := apperrors.EK(apperrors.KindUnauthorized, "error.web.message.session_expired", "session expired")
	creds.Lock()
	defer creds.Unlock()

	current := creds.Current()
	if current.AccessToken != "" && current.AccessToken != stale.AccessToken {
		return current, nil
	}
	if strings.TrimSpace(current.RefreshToken) == "" {
		c.dropCredentials(ctx, creds)
		return Tokens{}, unauthorized
	}

	refreshReq := Request{
		Method:    http.MethodPost,
		Path:      refreshPath,
		Body:      map[string]string{"refreshToken": current.RefreshToken},
		Anonymous: true,
	}
	body, err := encodeBody(refreshReq)
	if err != nil {
		return Tokens{}, fmt.Errorf("restapi encode refresh: %w", err)
	}
	resp, err := c.send(ctx, refreshReq, body, Tokens{})
	if err != nil || resp.status < 200 || resp.status > 299 {
		c.dropCredentials(ctx, creds)
		return Tokens{}, unauthorized
	}
	var refreshed AuthResponse
	if err := json.Unmarshal(resp.body, &refreshed); err != nil || strings.TrimSpace(refreshed.Token) == "" {
		c.dropCredentials(ctx, creds)
		return Tokens{}, unauthorized
	}
	if err := creds.Store(ctx, refreshed); err != nil {
		return Tokens{}, fmt.Errorf("restapi store refreshed tokens: %w", err)
	}
	return creds.Current(), nil
}

func (c *Client) dropCredentials(ctx context.Context, creds Credentials) {
	if err := creds.Clear(ctx); err != nil {
		c.logger.Printf("restapi drop session after failed refresh err=%v", err)
	}
}

func (c *Client) send(ctx context.Context, req Request, body encodedBody, tokens Tokens) (response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body.payload != nil {
		reader = bytes.NewReader(body.payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.endpoint(req), reader)
	if err != nil {
		return response{}, err
	}
	httpReq.Header.Set("Accept", "application/json")
	if body.contentType != "" {
		httpReq.Header.Set("Content-Type", body.contentType)
	}
	if !req.Anonymous && tokens.AccessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	}
	if strings.HasPrefix(req.Path, feedbackPrefix) && tokens.UserID != "" {
		httpReq.Header.Set("X-User-Id", tokens.UserID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return response{}, err
	}
	defer httpResp.Body.Close()
	payload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return response{}, err
	}
	return response{status: httpResp.StatusCode, header: httpResp.Header, body: payload}, nil
}

func (c *Client) endpoint(req Request) string {
	path := req.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := c.baseURL + path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}
	return target
}

func encodeBody(req Request) (encodedBody, error) {
	if req.Form != nil {
		return encodeMultipart(*req.Form)
	}
	if req.Body == nil {
		return encodedBody{}, nil
	}
	payload, err := json.Marshal(req.Body)
	if err != nil {
		return encodedBody{}, err
	}
	return encodedBody{contentType: "application/json", payload: payload}, nil
}

func encodeMultipart(form MultipartForm) (encodedBody, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, field := range form.Fields {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return encodedBody{}, err
		}
	}
	for _, file := range form.Files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
			"name":     file.Field,
			"filename": file.Filename,
		}))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return encodedBody{}, err
		}
		if _, err := part.Write(file.Data); err != nil {
			return encodedBody{}, err
		}
	}
	if err := writer.Close(); err != nil {
		return encodedBody{}, err
	}
	return encodedBody{contentType: writer.FormDataContentType(), payload: buf.Bytes()}, nil
}

// upstreamMessage extracts the backend's explanation from an error body:
// a JSON message or error field, or short plain text.
func upstreamMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}
	if body[0] == '{' {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			if msg := strings.TrimSpace(payload.Message); msg != "" {
				return truncate(msg)
			}
			return truncate(strings.TrimSpace(payload.Error))
		}
		return ""
	}
	if body[0] == '<' || body[0] == '[' {
		return ""
	}
	return truncate(strings.Trim(string(body), "\" \n"))
}

func truncate(value string) string {
	runes := []rune(value)
	if len(runes) <= maxMessageLength {
		return value
	}
	return string(runes[:maxMessageLength])
}
