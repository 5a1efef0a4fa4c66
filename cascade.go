// Copyright 2021 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cascade provides a client for the Cascade portal, the
// customer management api provided by Inty.  All operations map onto
// a single portal endpoint and authenticate with the username and
// password headers the portal expects.
package cascade // import "github.com/jfcote87/cascade"

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"strings"

	"github.com/jfcote87/ctxclient"
)

// DefaultEndpoint is used when a Service does not specify a base url.
const DefaultEndpoint = "https://api.cascadeportal.com"

// AgreementURL is the Microsoft Customer Agreement url sent with
// every mca acceptance.
const AgreementURL = "https://aka.ms/customeragreement"

// Service stores configuration information and provides functions
// for sending requests to the portal.  It is safe for concurrent use.
type Service struct {
	// UserName and Password are sent verbatim on every request via
	// the X-Username and X-Password headers.
	UserName string
	Password string
	// BaseURL replaces DefaultEndpoint when set.
	BaseURL string
	// Log, when set, receives dumps of every outgoing request and its
	// response.  Logging never alters the request.
	Log *log.Logger
	// Set if a unique client is needed.
	HTTPClientFunc ctxclient.Func
}

// AuthenticationConfig provides a format for serializing a Service definition
type AuthenticationConfig struct {
	UserName string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
	Debug    bool   `json:"debug,omitempty"`
}

// A ConfigOption is passed to ServiceFrom... funcs.
// ConfigOptions may be created using the ConfigHTTPClientFunc
// and ConfigLogger funcs.
type ConfigOption interface {
	setValue(*Service)
}

type cfgOption func(*Service)

func (co cfgOption) setValue(sv *Service) {
	co(sv)
}

// ConfigHTTPClientFunc sets the HTTPClientFunc for the Service
// created by the ServiceFrom... funcs
func ConfigHTTPClientFunc(f ctxclient.Func) ConfigOption {
	return cfgOption(func(sv *Service) {
		sv.HTTPClientFunc = f
	})
}

// ConfigLogger sets the request/response dump logger for the Service
// created by the ServiceFrom... funcs
func ConfigLogger(l *log.Logger) ConfigOption {
	return cfgOption(func(sv *Service) {
		sv.Log = l
	})
}

// ServiceFromConfigJSON returns a service from json representation.
// DO NOT make changes to the returned Service.  Create new service
// if necessary.
func ServiceFromConfigJSON(r io.Reader, opts ...ConfigOption) (*Service, error) {
	var cfg AuthenticationConfig
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, err
	}
	return ServiceFromConfig(cfg, opts...)
}

// ServiceFromConfig creates a service from configuration.  Setting
// cfg.Debug attaches a stderr logger to the new Service only; no
// process wide logging state is touched.
//
// DO NOT make changes to the returned Service.  Create new service
// if necessary.
func ServiceFromConfig(cfg AuthenticationConfig, opts ...ConfigOption) (*Service, error) {
	if cfg.UserName == "" || cfg.Password == "" {
		return nil, errors.New("a username and password must be specified")
	}
	sv := &Service{
		UserName: cfg.UserName,
		Password: cfg.Password,
		BaseURL:  cfg.URL,
	}
	if cfg.Debug {
		sv.Log = log.New(os.Stderr, "cascade: ", log.LstdFlags)
	}
	for _, o := range opts {
		o.setValue(sv)
	}
	return sv, nil
}

func (sv *Service) validate(ctx context.Context) error {
	if sv == nil {
		return errors.New("nil Service")
	}
	if sv.UserName == "" || sv.Password == "" {
		return errors.New("UserName/Password is empty")
	}
	if ctx == nil {
		return errors.New("nil context")
	}
	return nil
}

func (sv *Service) endpoint() string {
	if sv.BaseURL == "" {
		return DefaultEndpoint
	}
	return sv.BaseURL
}

// makeRequest creates an *http.Request assigning headers and body for
// sending to the portal
func (sv *Service) makeRequest(method, endpoint string, params url.Values, payload interface{}) (*http.Request, error) {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	u := sv.endpoint() + endpoint
	if len(params) > 0 {
		u = u + "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %v", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Username", sv.UserName)
	req.Header.Set("X-Password", sv.Password)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return req, nil
}

// do sends a single request and decodes a 2xx body into result when
// result is not nil.  A non 2xx status returns a
// *ctxclient.NotSuccess containing the status code and response body.
func (sv *Service) do(ctx context.Context, method, endpoint string, params url.Values, payload, result interface{}) error {
	if err := sv.validate(ctx); err != nil {
		return err
	}
	req, err := sv.makeRequest(method, endpoint, params, payload)
	if err != nil {
		return err
	}
	sv.dumpRequest(req)
	// handle timeouts and non 2xx responses
	res, err := sv.HTTPClientFunc.Do(ctx, req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	sv.dumpResponse(res)

	if result == nil {
		_, err = io.Copy(ioutil.Discard, res.Body)
		return err
	}
	return json.NewDecoder(res.Body).Decode(result)
}

func (sv *Service) get(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	return sv.do(ctx, "GET", endpoint, params, nil, result)
}

func (sv *Service) post(ctx context.Context, endpoint string, payload, result interface{}) error {
	return sv.do(ctx, "POST", endpoint, nil, payload, result)
}

func (sv *Service) delete(ctx context.Context, endpoint string) error {
	return sv.do(ctx, "DELETE", endpoint, nil, nil, nil)
}

func (sv *Service) dumpRequest(req *http.Request) {
	if sv.Log == nil {
		return
	}
	b, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		sv.Log.Printf("dump request: %v", err)
		return
	}
	sv.Log.Printf("request:\n%s", b)
}

func (sv *Service) dumpResponse(res *http.Response) {
	if sv.Log == nil {
		return
	}
	b, err := httputil.DumpResponse(res, true)
	if err != nil {
		sv.Log.Printf("dump response: %v", err)
		return
	}
	sv.Log.Printf("response:\n%s", b)
}
