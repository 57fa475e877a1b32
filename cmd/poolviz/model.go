package main

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dontscrewme/memory-pool/internal/memregion"
	"github.com/dontscrewme/memory-pool/pool"
)

const (
	minInterval = 10 * time.Millisecond
	maxInterval = 2 * time.Second
)

type config struct {
	blockSize int
	numBlocks int
	seed      int64
}

func defaultConfig() config {
	return config{
		blockSize: 64,
		numBlocks: 512,
		seed:      1,
	}
}

// model is the poolviz TUI state: one pool, one seeded workload, and the
// playback controls around them.
type model struct {
	cfg  config
	keys KeyMap

	pool *pool.Pool
	rng  *rand.Rand
	live []int // offsets of live allocations
	step int   // workload steps applied so far

	paused   bool
	interval time.Duration

	width  int
	height int
}

// tickMsg advances the workload by one step.
type tickMsg time.Time

func newModel(cfg config) (*model, error) {
	p, err := pool.New(memregion.Heap(cfg.blockSize*cfg.numBlocks), cfg.blockSize, cfg.numBlocks)
	if err != nil {
		return nil, err
	}
	return &model{
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		pool:     p,
		rng:      rand.New(rand.NewSource(cfg.seed)),
		live:     make([]int, 0, cfg.numBlocks),
		interval: 100 * time.Millisecond,
	}, nil
}

func (m *model) Init() tea.Cmd {
	return m.tick()
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// advance applies one random workload step: two-thirds allocations of
// 1-8 blocks, one-third frees of a random live run. Failed allocations
// (capacity or fragmentation) are normal under pressure and simply
// counted by the pool's own stats.
func (m *model) advance() {
	m.step++
	if m.rng.Intn(3) < 2 || len(m.live) == 0 {
		size := 1 + m.rng.Intn(m.cfg.blockSize*8)
		if off, _, err := m.pool.Alloc(size); err == nil {
			m.live = append(m.live, off)
		}
		return
	}
	i := m.rng.Intn(len(m.live))
	m.pool.Free(m.live[i])
	m.live[i] = m.live[len(m.live)-1]
	m.live = m.live[:len(m.live)-1]
}

// reset rebuilds the pool and restarts the workload from the seed.
func (m *model) reset() error {
	if err := m.pool.Close(); err != nil {
		return err
	}
	p, err := pool.New(
		memregion.Heap(m.cfg.blockSize*m.cfg.numBlocks),
		m.cfg.blockSize, m.cfg.numBlocks,
	)
	if err != nil {
		return err
	}
	m.pool = p
	m.rng = rand.New(rand.NewSource(m.cfg.seed))
	m.live = m.live[:0]
	m.step = 0
	return nil
}
