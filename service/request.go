package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultMaxBodyLen = 1024 * 1024

// request is always scoped to a single http request handled by the server
type request struct {
	file, path string

	ctx context.Context
	w   http.ResponseWriter
	r   *http.Request

	body []byte

	log         *logrus.Entry
	start       time.Time
	rid         uint64 // random request id
	read, wrote int
	err         error
}

func newRequest(w http.ResponseWriter, rq *http.Request, logger *logrus.Logger) request {
	if logger == nil {
		logger = logrus.New()
	}
	rid := rand.Uint64() | 1<<63 // sacrifice one bit of entropy so they always have the same # digits
	ip, port := rq.Header.Get("X-Forwarded-For"), rq.Header.Get("X-Forwarded-Port")
	if ip == "" {
		ip, port, _ = net.SplitHostPort(rq.RemoteAddr)
	}
	r := request{
		path:  rq.URL.Path,
		ctx:   rq.Context(),
		r:     rq,
		w:     w,
		start: time.Now(),
		rid:   rid,
		log:   logger.WithFields(logrus.Fields{"rid": rid, "ip": ip, "port": port}),
	}
	r.log.WithFields(logrus.Fields{
		"method": rq.Method,
		"path":   rq.URL.Path,
		"ref":    rq.Referer(),
		"ua":     rq.UserAgent(),
	}).Debug("request started")
	return r
}

func (r *request) finalize() {
	fields := logrus.Fields{
		"rx":  r.read,
		"tx":  r.wrote,
		"dur": time.Since(r.start),
	}
	if r.err != nil {
		r.log.WithFields(fields).WithError(r.err).Warn("request finished")
		return
	}
	r.log.WithFields(fields).Info("request finished")
}

func (s *request) ok() bool {
	return s.err == nil
}

// Body reads the request body at most once and
// returns it.
func (s *request) Body() []byte {
	if !s.ok() {
		return nil
	}
	if s.body != nil {
		return s.body
	}
	s.body, s.err = ioutil.ReadAll(io.LimitReader(s.r.Body, defaultMaxBodyLen))
	s.read = len(s.body)
	return s.body
}

// PlatformError implements a well-known error response for http clients
// encountering an error when using the service.
type PlatformError struct {
	Ok     bool   `json:"ok"`
	Status int    `json:"status"`
	Rid    uint64 `json:"rid"`
	Msg    string `json:"msg,omitempty"`
	Err    string `json:"err,omitempty"`
}

// String returns the json-formatted platform response
func (p PlatformError) String() string {
	data, _ := json.Marshal(p)
	return string(data)
}

func (s *request) writeerror(msg string, code int, err error) bool {
	p := PlatformError{
		Status: code,
		Rid:    s.rid,
		Msg:    msg,
	}
	if err != nil {
		p.Err = err.Error()
	}
	s.log.WithFields(logrus.Fields{"msg": msg, "code": code}).WithError(err).Info("request failed")
	s.w.Header().Set("Content-Type", "application/json")
	s.w.WriteHeader(code)
	fmt.Fprintln(s.w, p.String())
	return false
}

func (s *request) writebody(data interface{}, mimeType ...string) bool {
	ct := "application/json"
	if len(mimeType) != 0 {
		ct = mimeType[0]
	}
	s.w.Header().Set("Content-Type", ct)
	switch t := data.(type) {
	case []byte:
		s.wrote, s.err = s.w.Write(t)
	case string:
		s.wrote, s.err = s.w.Write([]byte(t))
	default:
		body, err := json.Marshal(t)
		if err != nil {
			s.err = err
			return false
		}
		s.wrote, s.err = s.w.Write(body)
	}
	return s.ok()
}

func (s *request) UnmarshalJSON(body interface{}) (ok bool) {
	data := s.Body()
	if !s.ok() {
		return s.writeerror("reading request body failed", 400, s.err)
	}
	if s.err = json.Unmarshal(data, body); s.err != nil {
		return s.writeerror("decoding request body failed", 400, s.err)
	}
	return true
}

func (s *request) chop() string {
	s.file, s.path = chop(s.path)
	return s.file
}

func chop(p string) (file, next string) {
	p = path.Clean(p)[1:]
	if n := strings.Index(p, "/"); n >= 0 {
		return p[:n], p[n:]
	}
	return p, "/"
}
