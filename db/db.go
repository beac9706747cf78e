// Package db stores editorial events in Redis. Events are kept as JSON
// values under event:<id> keys, with the set of known ids indexed
// separately so they can be listed.
package db

import (
	"encoding/json"
	"net"
	"sort"

	"github.com/cbsinteractive/editmaster/edit"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

var ErrEventNotFound = errors.New("event not found")

const eventSetKey = "events"

// Repository is the storage surface the service depends on.
type Repository interface {
	Put(*edit.Event) error
	Get(id string) (*edit.Event, error)
	Delete(id string) error
	List() ([]*edit.Event, error)
}

type Options struct {
	Addr     string
	DB       int
	Password string
}

func NewClient(opt *Options) (*Client, error) {
	if opt == nil {
		opt = &Options{}
	}
	if opt.Addr == "" {
		opt.Addr = "localhost:6379"
	}
	_, _, err := net.SplitHostPort(opt.Addr)
	if err != nil {
		opt.Addr = net.JoinHostPort(opt.Addr, "6379")
	}
	c := &Client{
		rc: redis.NewClient(&redis.Options{
			Addr:     opt.Addr,
			DB:       opt.DB,
			Password: opt.Password,
		}),
	}
	return c, nil
}

type Client struct {
	rc *redis.Client
}

func eventKey(id string) string { return "event:" + id }

// Put stores the event and indexes its id. The value and the index entry
// are written in one transaction so a listed id always resolves.
func (c *Client) Put(ev *edit.Event) error {
	if ev.ID == "" {
		return errors.New("event id missing")
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = c.rc.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.Set(eventKey(ev.ID), string(data), 0)
		pipe.SAdd(eventSetKey, ev.ID)
		return nil
	})
	return errors.Wrap(err, "saving event")
}

func (c *Client) Get(id string) (*edit.Event, error) {
	val, err := c.rc.Get(eventKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrEventNotFound
	} else if err != nil {
		return nil, err
	}
	ev := new(edit.Event)
	if err := json.Unmarshal([]byte(val), ev); err != nil {
		return nil, errors.Wrap(err, "decoding stored event")
	}
	return ev, nil
}

func (c *Client) Delete(id string) error {
	n, err := c.rc.Del(eventKey(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEventNotFound
	}
	return c.rc.SRem(eventSetKey, id).Err()
}

// List returns all stored events in id order.
func (c *Client) List() ([]*edit.Event, error) {
	ids, err := c.rc.SMembers(eventSetKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	evs := make([]*edit.Event, 0, len(ids))
	for _, id := range ids {
		ev, err := c.Get(id)
		if err == ErrEventNotFound {
			continue
		} else if err != nil {
			return nil, err
		}
		evs = append(evs, ev)
	}
	return evs, nil
}
