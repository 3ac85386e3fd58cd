package stats

import "sync"

// Cache memoizes N50 per assembly path for the lifetime of a run. N50 is a
// pure function of the file contents but costs a full read and parse, so
// each path is computed at most once and the result reused.
type Cache struct {
	mu      sync.Mutex
	n50     map[string]int
	compute func(string) (int, error)
}

// NewCache returns an empty run-scoped cache.
func NewCache() *Cache {
	return &Cache{
		n50:     make(map[string]int),
		compute: N50,
	}
}

// Get returns the memoized N50 for the assembly, computing it on first
// access. Safe for concurrent use; distinct paths may be computed in
// parallel.
func (c *Cache) Get(path string) (int, error) {
	c.mu.Lock()
	if n, ok := c.n50[path]; ok {
		c.mu.Unlock()
		return n, nil
	}
	c.mu.Unlock()

	n, err := c.compute(path)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.n50[path] = n
	c.mu.Unlock()
	return n, nil
}

// Warm computes the N50 of every path with a fixed-size worker pool, so a
// later Get is a map lookup. The first error encountered is returned after
// all workers finish.
func (c *Cache) Warm(paths []string, threads int) error {
	if threads < 1 {
		threads = 1
	}

	jobs := make(chan string)
	errc := make(chan error, 1)
	var wg sync.WaitGroup

	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				if _, err := c.Get(p); err != nil {
					select {
					case errc <- err:
					default:
					}
				}
			}
		}()
	}

	for _, p := range paths {
		jobs <- p
	}
	close(jobs)
	wg.Wait()

	select {
	case err := <-errc:
		return err
	default:
		return nil
	}
}
