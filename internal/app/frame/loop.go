package frame

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"homestead/internal/app/ports"
	"homestead/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

var (
	ErrStopped   = errors.New("frame loop stopped")
	ErrQueueFull = errors.New("frame command queue full")
)

type Config struct {
	TileSize  int
	Interval  time.Duration
	QueueSize int
}

func DefaultConfig() Config {
	return Config{
		TileSize:  32,
		Interval:  100 * time.Millisecond,
		QueueSize: 256,
	}
}

type Stats struct {
	Frame   uint64
	Applied int
	Failed  int
	Skipped int
}

const (
	cmdPending int32 = iota
	cmdRunning
	cmdCancelled
)

type command struct {
	id    uuid.UUID
	ctx   context.Context
	fn    func(*world.World) error
	done  chan error
	state atomic.Int32
}

// claim moves a pending command to running. It fails once the caller has
// given up on it.
func (c *command) claim() bool {
	return c.state.CompareAndSwap(cmdPending, cmdRunning)
}

// abandon marks a pending command cancelled. It fails once the loop has
// started running it.
func (c *command) abandon() bool {
	return c.state.CompareAndSwap(cmdPending, cmdCancelled)
}

// Loop owns a World. Every read and write of that World runs on the loop,
// between frames, in submission order.
type Loop struct {
	world    *world.World
	renderer ports.Renderer
	cfg      Config

	queue    chan *command
	frame    atomic.Uint64
	stopped  chan struct{}
	stopOnce sync.Once
}

func New(w *world.World, r ports.Renderer, cfg Config) *Loop {
	def := DefaultConfig()
	if cfg.TileSize <= 0 {
		cfg.TileSize = def.TileSize
	}
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}
	return &Loop{
		world:    w,
		renderer: r,
		cfg:      cfg,
		queue:    make(chan *command, cfg.QueueSize),
		stopped:  make(chan struct{}),
	}
}

func (l *Loop) TileSize() int {
	return l.cfg.TileSize
}

func (l *Loop) Frame() uint64 {
	return l.frame.Load()
}

// Do queues fn for the next frame and waits for its result. A command whose
// ctx ends before the loop reaches it never runs; once it has started, Do
// waits for it, so an error from Do always means fn left the World alone or
// fn itself failed.
func (l *Loop) Do(ctx context.Context, fn func(*world.World) error) error {
	cmd := &command{id: uuid.New(), ctx: ctx, fn: fn, done: make(chan error, 1)}
	select {
	case l.queue <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopped:
		return ErrStopped
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		if cmd.abandon() {
			hlog.Debugf("command %s abandoned before frame: %v", cmd.id, ctx.Err())
			return ctx.Err()
		}
		return <-cmd.done
	case <-l.stopped:
		if cmd.abandon() {
			return ErrStopped
		}
		return <-cmd.done
	}
}

// Submit queues fn without waiting and returns its command id. Failures are
// logged under that id.
func (l *Loop) Submit(fn func(*world.World) error) (uuid.UUID, error) {
	select {
	case <-l.stopped:
		return uuid.Nil, ErrStopped
	default:
	}
	cmd := &command{id: uuid.New(), ctx: context.Background(), fn: fn}
	select {
	case l.queue <- cmd:
		return cmd.id, nil
	default:
		return uuid.Nil, ErrQueueFull
	}
}

// Step runs one frame: drain queued commands, then render. Only the loop
// owner may call it.
func (l *Loop) Step() (Stats, error) {
	stats := Stats{Frame: l.frame.Add(1)}
drain:
	for i := 0; i < l.cfg.QueueSize; i++ {
		select {
		case cmd := <-l.queue:
			l.apply(cmd, &stats)
		default:
			break drain
		}
	}
	return stats, l.render(stats.Frame)
}

// Run steps the loop every Interval until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stop()

	ticker := time.NewTicker(l.cfg.Interval)
	defer ticker.Stop()

	hlog.Infof("frame loop started: world=%dx%d interval=%s", l.world.Size(), l.world.Size(), l.cfg.Interval)
	for {
		select {
		case <-ctx.Done():
			hlog.Infof("frame loop stopped at frame %d", l.Frame())
			return nil
		case <-ticker.C:
			stats, err := l.Step()
			if err != nil {
				hlog.Warnf("frame %d render failed: %v", stats.Frame, err)
			}
		}
	}
}

func (l *Loop) apply(cmd *command, stats *Stats) {
	if err := cmd.ctx.Err(); err != nil {
		if cmd.abandon() && cmd.done != nil {
			cmd.done <- err
		}
		stats.Skipped++
		return
	}
	if !cmd.claim() {
		stats.Skipped++
		return
	}
	err := cmd.fn(l.world)
	if err != nil {
		stats.Failed++
		if cmd.done == nil {
			hlog.Warnf("command %s failed: %v", cmd.id, err)
		}
	} else {
		stats.Applied++
	}
	if cmd.done != nil {
		cmd.done <- err
	}
}

func (l *Loop) stop() {
	l.stopOnce.Do(func() { close(l.stopped) })
}

func (l *Loop) render(frame uint64) error {
	if l.renderer == nil {
		return nil
	}
	l.renderer.BeginFrame(frame, l.world.Size())
	for _, t := range l.world.Terrain() {
		l.renderer.DrawTerrain(t, l.cfg.TileSize)
	}
	for _, t := range l.world.Tiles() {
		l.renderer.DrawStructure(t, l.cfg.TileSize)
	}
	return l.renderer.EndFrame()
}
