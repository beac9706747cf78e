// Package service exposes timecode arithmetic and the editorial event
// store over HTTP.
package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbsinteractive/editmaster/config"
	"github.com/cbsinteractive/editmaster/db"
	"github.com/cbsinteractive/editmaster/edit"
	"github.com/cbsinteractive/editmaster/service/exceptions"
	"github.com/cbsinteractive/editmaster/timecode"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

var ErrStorage = errors.New("storage error")

type Server struct {
	Config      *config.Config
	DB          db.Repository
	logger      *logrus.Logger
	errReporter exceptions.Reporter

	request
}

func NewServer(cfg *config.Config, logger *logrus.Logger, repo db.Repository, reporter exceptions.Reporter) *Server {
	if reporter == nil {
		reporter = &exceptions.NoopReporter{}
	}
	return &Server{Config: cfg, DB: repo, logger: logger, errReporter: reporter}
}

func (s Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.request = newRequest(rw, r, s.logger)
	s.serve()
	s.request.finalize()
}

func (s *Server) serve() bool {
	switch s.chop() {
	case "timecodes":
		return s.serveTimecodes(s.chop())
	case "events":
		return s.serveEvents(s.chop())
	}
	return s.writeerror("bad request path", 404, nil)
}

// Info is the wire form of a timecode, components included.
type Info struct {
	Timecode    string `json:"timecode"`
	FPS         int    `json:"fps"`
	TotalFrames int64  `json:"total_frames"`
	Hours       int    `json:"hours"`
	Minutes     int    `json:"minutes"`
	Seconds     int    `json:"seconds"`
	Frames      int    `json:"frames"`
}

func describe(tc timecode.Timecode) Info {
	return Info{
		Timecode:    tc.String(),
		FPS:         tc.FPS(),
		TotalFrames: tc.TotalFrames(),
		Hours:       tc.Hours(),
		Minutes:     tc.Minutes(),
		Seconds:     tc.Seconds(),
		Frames:      tc.Frames(),
	}
}

type arithRequest struct {
	A      timecode.Timecode `json:"a"`
	B      timecode.Timecode `json:"b"`
	Factor float64           `json:"factor"`
}

func (r arithRequest) eval(op string) (timecode.Timecode, error) {
	switch op {
	case "sum":
		return r.A.Add(r.B), nil
	case "diff":
		return r.A.Sub(r.B)
	case "scale":
		return r.A.Mul(r.Factor)
	}
	return timecode.Timecode{}, errors.New("unknown operation")
}

func (s *Server) serveTimecodes(op string) bool {
	if s.method() != "POST" {
		return s.writeerror("bad method", 405, nil)
	}
	switch op {
	case "parse":
		var in struct {
			Timecode string `json:"timecode"`
			FPS      int    `json:"fps"`
		}
		if !s.request.UnmarshalJSON(&in) {
			return false
		}
		if in.FPS == 0 {
			in.FPS = s.Config.DefaultFPS
		}
		tc, err := timecode.Parse(in.Timecode, in.FPS)
		if err != nil {
			return s.writeerror("parse failed", 400, err)
		}
		return s.writebody(describe(tc))
	case "sum", "diff", "scale":
		var in arithRequest
		if !s.request.UnmarshalJSON(&in) {
			return false
		}
		tc, err := in.eval(op)
		if err != nil {
			return s.writeerror(op+" failed", 400, err)
		}
		return s.writebody(describe(tc))
	}
	return s.writeerror("bad timecode operation", 404, nil)
}

func (s *Server) serveEvents(id string) bool {
	switch s.method() {
	case "POST":
		ev := new(edit.Event)
		if !s.request.UnmarshalJSON(ev) {
			return false
		}
		if id != "" {
			ev.ID = id
		}
		if err := s.putEvent0(ev); err != nil {
			return s.writeerror("put event failed", 400, err)
		}
		return s.writebody(ev)
	case "GET":
		if id == "" {
			evs, err := s.DB.List()
			if err != nil {
				return s.storageerror("list events failed", err)
			}
			return s.writebody(evs)
		}
		ev, err := s.DB.Get(id)
		if err == db.ErrEventNotFound {
			return s.writeerror("event not found", 404, err)
		} else if err != nil {
			return s.storageerror("get event failed", err)
		}
		return s.writebody(ev)
	case "DELETE":
		err := s.DB.Delete(id)
		if err == db.ErrEventNotFound {
			return s.writeerror("event not found", 404, err)
		} else if err != nil {
			return s.storageerror("del event failed", err)
		}
		return s.writebody(map[string]string{"deleted": id})
	}
	return s.writeerror("bad method", 405, nil)
}

func (s *Server) putEvent0(ev *edit.Event) error {
	if ev.ID == "" {
		ev.ID = uuid.Must(uuid.NewV4()).String()
	}
	if ev.Tracks == "" {
		ev.Tracks = edit.DefaultTracks
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	if err := ev.Validate(); err != nil {
		return err
	}
	if err := s.DB.Put(ev); err != nil {
		s.errReporter.ReportException(err)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// storageerror reports the failure to the exception sink before writing
// the client response; storage failures are operational, not caller bugs.
func (s *Server) storageerror(msg string, err error) bool {
	s.errReporter.ReportException(err)
	return s.writeerror(msg, 500, fmt.Errorf("%w: %v", ErrStorage, err))
}

func (s *Server) method() string {
	return s.request.r.Method
}
