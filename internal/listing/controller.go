// Package listing holds the state of a blog listing page: the fetched data, the
// user's filters and the load-more cursor, re-deriving the visible posts on every change.
package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anonto42/car-blog/backend/internal/catalog"
	"github.com/anonto42/car-blog/backend/internal/debounce"
	"github.com/anonto42/car-blog/backend/internal/feed"
	"github.com/anonto42/car-blog/backend/internal/media"
	"github.com/anonto42/car-blog/backend/internal/models"
	"github.com/anonto42/car-blog/backend/internal/repositories"
	"github.com/anonto42/car-blog/backend/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Status is the top-level state of a listing
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

const (
	noPostsMessage    = "No blog posts available"
	loadFailedMessage = "Failed to load blog posts. Please try again."
)

var (
	ErrNoPosts         = errors.New("no blog posts available")
	ErrLoadPanicked    = errors.New("listing load panicked")
	ErrUnknownCategory = errors.New("unknown category")
)

// Options tune a Controller
type Options struct {
	PageSize       int
	UserPrefetch   int
	SearchDebounce time.Duration
	BrandButtons   int
	ImageDomains   []string
}

// DefaultOptions mirrors the listing page: 20 per page, authors for the first 20 posts,
// 300ms search debounce and ten brand buttons.
func DefaultOptions() Options {
	return Options{
		PageSize:       20,
		UserPrefetch:   20,
		SearchDebounce: 300 * time.Millisecond,
		BrandButtons:   10,
	}
}

// Patch changes several filters at once. Nil fields are left untouched.
type Patch struct {
	Search        *string
	Category      *string
	Brand         *string
	AvailableOnly *bool
}

type dataset struct {
	posts  []models.Post
	cars   []models.Car
	brands []string
	users  map[int]models.User
}

// Controller owns the state of one listing page
type Controller struct {
	mu        sync.RWMutex
	posts     repositories.PostRepository
	users     repositories.UserRepository
	cars      repositories.CarRepository
	log       *logger.Logger
	opts      Options
	debouncer *debounce.Debouncer

	status         Status
	errMsg         string
	data           dataset
	views          []models.PostView
	categoryCounts map[string]int
	brandCounts    map[string]int

	searchInput string
	filters     Filters
	filtered    []models.PostView
	visible     int
}

// NewController creates a new Controller in the loading state
func NewController(
	posts repositories.PostRepository,
	users repositories.UserRepository,
	cars repositories.CarRepository,
	log *logger.Logger,
	opts Options,
) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultOptions().PageSize
	}
	if log == nil {
		log = logger.StandardLogger()
	}
	return &Controller{
		posts:     posts,
		users:     users,
		cars:      cars,
		log:       log,
		opts:      opts,
		debouncer: debounce.New(opts.SearchDebounce),
		status:    StatusLoading,
		filters:   DefaultFilters(),
		visible:   opts.PageSize,
	}
}

// Load fetches posts, cars and brands concurrently, then the authors of the first posts.
// The controller ends up ready, or in the error state with no posts when no posts came back or the load failed.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.status = StatusLoading
	c.errMsg = ""
	c.mu.Unlock()

	data, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.status = StatusError
		c.errMsg = loadFailedMessage
		if errors.Is(err, ErrNoPosts) {
			c.errMsg = noPostsMessage
		}
		c.log.Errorf(ctx, "Failed to load blog listing: %v", err)
		c.clearLocked()
		return err
	}

	c.data = data
	c.derive()
	c.recompute()
	c.status = StatusReady
	return nil
}

// clearLocked drops the previous load so an error state shows no posts. Caller holds mu.
func (c *Controller) clearLocked() {
	c.data = dataset{}
	c.views = nil
	c.categoryCounts = nil
	c.brandCounts = nil
	c.filtered = nil
}

// Retry reloads the listing after an error
func (c *Controller) Retry(ctx context.Context) error {
	return c.Load(ctx)
}

func (c *Controller) fetch(ctx context.Context) (dataset, error) {
	var d dataset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(guard(func() error {
		d.posts = c.posts.ListPosts(gctx)
		return nil
	}))
	g.Go(guard(func() error {
		d.cars = c.cars.ListCars(gctx)
		return nil
	}))
	g.Go(guard(func() error {
		d.brands = c.cars.ListBrands(gctx)
		return nil
	}))
	if err := g.Wait(); err != nil {
		return d, err
	}

	if len(d.posts) == 0 {
		return d, ErrNoPosts
	}

	users, err := c.fetchUsers(ctx, d.posts)
	if err != nil {
		return d, err
	}
	d.users = users
	d.brands = withAll(d.brands)
	return d, nil
}

// fetchUsers looks up the authors of the first UserPrefetch posts, one request per distinct author
func (c *Controller) fetchUsers(ctx context.Context, posts []models.Post) (map[int]models.User, error) {
	limit := min(c.opts.UserPrefetch, len(posts))

	var ids []int
	seen := make(map[int]struct{})
	for _, p := range posts[:max(limit, 0)] {
		if _, ok := seen[p.UserID]; ok {
			continue
		}
		seen[p.UserID] = struct{}{}
		ids = append(ids, p.UserID)
	}

	found := make([]*models.User, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(guard(func() error {
			found[i] = c.users.GetUser(gctx, id)
			return nil
		}))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	users := make(map[int]models.User, len(ids))
	for i, u := range found {
		if u != nil {
			users[ids[i]] = *u
		}
	}
	return users, nil
}

// guard turns a panic in fn into an error so a joint wait fails instead of crashing
func guard(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrLoadPanicked, r)
			}
		}()
		return fn()
	}
}

func withAll(brands []string) []string {
	if len(brands) > 0 && brands[0] == string(catalog.All) {
		return brands
	}
	return append([]string{string(catalog.All)}, brands...)
}

// derive rebuilds the views and counts. They depend only on the fetched data. Caller holds mu.
func (c *Controller) derive() {
	groups := catalog.Categorize(c.data.cars)
	views := feed.Attach(c.data.posts, c.data.cars, groups)
	for i := range views {
		v := &views[i]
		if u, ok := c.data.users[v.UserID]; ok {
			v.Author = &u
		}
		v.Image = media.Filter(media.CarImage(v.Car, v.ID), c.opts.ImageDomains)
		v.Avatar = media.Filter(media.UserAvatar(v.Author), c.opts.ImageDomains)
	}

	c.views = views
	c.categoryCounts = feed.CountCategories(views, catalog.Names())
	c.brandCounts = feed.CountBrands(views, c.data.brands)
}

// recompute re-derives the filtered list. Caller holds mu.
func (c *Controller) recompute() {
	c.filtered = Apply(c.views, c.filters)
}

// SetSearch records the raw search input; it is applied once the debounce window passes
func (c *Controller) SetSearch(term string) {
	_ = c.Update(Patch{Search: &term})
}

// SetCategory selects a category; All clears the category filter
func (c *Controller) SetCategory(category string) error {
	return c.Update(Patch{Category: &category})
}

// SetBrand selects a brand; All clears the brand filter
func (c *Controller) SetBrand(brand string) {
	_ = c.Update(Patch{Brand: &brand})
}

// SetAvailableOnly toggles the availability filter
func (c *Controller) SetAvailableOnly(only bool) {
	_ = c.Update(Patch{AvailableOnly: &only})
}

// Update applies p with a single recomputation. The search term is debounced.
// The load-more count is kept as is.
func (c *Controller) Update(p Patch) error {
	if p.Category != nil && !catalog.Valid(*p.Category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, *p.Category)
	}

	c.mu.Lock()
	changed := false
	if p.Category != nil && *p.Category != c.filters.Category {
		c.filters.Category = *p.Category
		changed = true
	}
	if p.Brand != nil && *p.Brand != c.filters.Brand {
		c.filters.Brand = *p.Brand
		changed = true
	}
	if p.AvailableOnly != nil && *p.AvailableOnly != c.filters.AvailableOnly {
		c.filters.AvailableOnly = *p.AvailableOnly
		changed = true
	}
	if changed {
		c.recompute()
	}
	if p.Search != nil {
		c.searchInput = *p.Search
	}
	c.mu.Unlock()

	if p.Search != nil {
		term := *p.Search
		if c.opts.SearchDebounce <= 0 {
			c.applySearch(term)
		} else {
			c.debouncer.Call(func() { c.applySearch(term) })
		}
	}
	return nil
}

func (c *Controller) applySearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filters.Search == term {
		return
	}
	c.filters.Search = term
	c.recompute()
}

// FlushSearch applies a pending search term right away
func (c *Controller) FlushSearch() bool {
	return c.debouncer.Flush()
}

// LoadMore shows another page of posts without fetching
func (c *Controller) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible += c.opts.PageSize
}

// Close drops any pending search
func (c *Controller) Close() {
	c.debouncer.Stop()
}

// Status returns the current state
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Snapshot returns the current page as plain data
func (c *Controller) Snapshot() View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	shown := min(c.visible, len(c.filtered))
	posts := make([]models.PostView, shown)
	copy(posts, c.filtered[:shown])

	return View{
		Status:         c.status,
		Error:          c.errMsg,
		Heading:        Heading(c.filters),
		SearchInput:    c.searchInput,
		Filters:        c.filters,
		Posts:          posts,
		Shown:          shown,
		Total:          len(c.filtered),
		Visible:        c.visible,
		HasMore:        c.visible < len(c.filtered),
		Categories:     catalog.Names(),
		Brands:         c.brandOptions(),
		CategoryCounts: copyCounts(c.categoryCounts),
		BrandCounts:    copyCounts(c.brandCounts),
	}
}

// brandOptions returns All and the first BrandButtons brands. Caller holds mu.
func (c *Controller) brandOptions() []string {
	brands := c.data.brands
	if n := c.opts.BrandButtons + 1; c.opts.BrandButtons > 0 && len(brands) > n {
		brands = brands[:n]
	}
	out := make([]string, len(brands))
	copy(out, brands)
	return out
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
