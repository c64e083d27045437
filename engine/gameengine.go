package engine

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minaorangina/cardtable/protocol"
)

// DefaultTick is how often the control loop wakes up.
const DefaultTick = 50 * time.Millisecond

var ErrNilTable = errors.New("engine has no table")

// Renderer draws a snapshot of a table.
type Renderer interface {
	Render(protocol.OutboundMessage) error
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(protocol.OutboundMessage) error

func (f RendererFunc) Render(msg protocol.OutboundMessage) error {
	return f(msg)
}

// Engine is the control loop for one table. Each step drains pending
// input, lets the CPU act once its deadline has passed, checks for the end
// of the game and renders. Only the loop touches the table.
type Engine struct {
	table    Table
	inbound  <-chan protocol.InboundMessage
	renderer Renderer
	log      logrus.FieldLogger
	tick     time.Duration
	now      func() time.Time
	quit     bool
}

type EngineOpts struct {
	Table    Table
	Inbound  <-chan protocol.InboundMessage
	Renderer Renderer
	Log      logrus.FieldLogger
	Tick     time.Duration
	Now      func() time.Time // defaults to time.Now
}

// New constructs an Engine
func New(opts EngineOpts) (*Engine, error) {
	if opts.Table == nil {
		return nil, ErrNilTable
	}

	e := &Engine{
		table:    opts.Table,
		inbound:  opts.Inbound,
		renderer: opts.Renderer,
		log:      opts.Log,
		tick:     opts.Tick,
		now:      opts.Now,
	}
	if e.renderer == nil {
		e.renderer = RendererFunc(func(protocol.OutboundMessage) error { return nil })
	}
	if e.log == nil {
		e.log = logrus.StandardLogger()
	}
	if e.tick <= 0 {
		e.tick = DefaultTick
	}
	if e.now == nil {
		e.now = time.Now
	}
	e.log = e.log.WithField("variant", e.table.Variant())

	return e, nil
}

// Run steps the loop every tick until the game ends, the player quits, the
// input closes or ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Info("table started")
	if err := e.renderer.Render(e.table.Snapshot()); err != nil {
		return err
	}

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := e.Step()
			if err != nil {
				return err
			}
			if done {
				e.log.WithField("over", e.table.Over()).Info("table finished")
				return nil
			}
		}
	}
}

// Step runs one iteration of the loop without blocking. done is true once
// there is nothing more to play.
func (e *Engine) Step() (done bool, err error) {
	changed := false
	var rejection error

	// drain input
drain:
	for !e.quit && !e.table.Over() {
		select {
		case msg, ok := <-e.inbound:
			if !ok || msg.Command == protocol.Quit {
				e.quit = true
				break drain
			}
			if err := e.table.Handle(msg, e.now()); err != nil {
				e.log.WithFields(logrus.Fields{"cmd": msg.Command, "error": err}).Debug("command rejected")
				rejection = err
			}
			changed = true
		default:
			break drain
		}
	}

	if !e.quit && !e.table.Over() && e.table.Tick(e.now()) {
		e.log.Debug("cpu acted")
		changed = true
	}

	over := e.table.Over()
	if changed || over {
		snapshot := e.table.Snapshot()
		if rejection != nil {
			snapshot.Error = rejection.Error()
		}
		if err := e.renderer.Render(snapshot); err != nil {
			return true, err
		}
	}

	return e.quit || over, nil
}
